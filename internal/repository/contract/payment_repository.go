package contract

import (
	"context"
	"time"

	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BulkTransition describes a guarded status flip over many payments.
type BulkTransition struct {
	IDs         []uuid.UUID
	From        string
	To          string
	ProcessedBy uuid.UUID
	ProcessedAt time.Time
	Notes       string
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	Update(ctx context.Context, payment *entity.Payment) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Payment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Payment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SumAmount(ctx context.Context, specs ...specification.Specification) (decimal.Decimal, error)
	GroupBy(ctx context.Context, column string, specs ...specification.Specification) ([]Aggregate, error)
	// BulkTransition updates only rows currently in From and returns how many changed.
	BulkTransition(ctx context.Context, t BulkTransition, specs ...specification.Specification) (int64, error)
}
