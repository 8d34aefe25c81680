package contract

import (
	"context"

	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Booking, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Booking, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	NumberExists(ctx context.Context, number string) (bool, error)

	// ReplaceTravelers deletes every traveler of bookingId and inserts travelers.
	ReplaceTravelers(ctx context.Context, bookingId uuid.UUID, travelers []*entity.BookingTraveler) error
	FindTravelers(ctx context.Context, bookingId uuid.UUID) ([]*entity.BookingTraveler, error)

	SumTotalPrice(ctx context.Context, specs ...specification.Specification) (decimal.Decimal, error)
	GroupByStatus(ctx context.Context, specs ...specification.Specification) ([]Aggregate, error)
}

type QuickBookingRepository interface {
	Create(ctx context.Context, qb *entity.QuickBooking) error
	Update(ctx context.Context, qb *entity.QuickBooking) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QuickBooking, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QuickBooking, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	NumberExists(ctx context.Context, number string) (bool, error)

	// MarkConverted flips the conversion flag only if it is still unset and
	// reports whether a row changed.
	MarkConverted(ctx context.Context, id uuid.UUID, bookingId uuid.UUID) (bool, error)
	SumBudget(ctx context.Context, specs ...specification.Specification) (decimal.Decimal, error)
}
