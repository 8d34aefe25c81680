package implementation

import (
	"context"
	"errors"

	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/mapper"
	"travel-backoffice-be/internal/model"
	"travel-backoffice-be/internal/repository/contract"
	"travel-backoffice-be/internal/repository/scope"
	"travel-backoffice-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BookingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BookingMapper
}

func NewBookingRepository(db *gorm.DB) contract.BookingRepository {
	return &BookingRepositoryImpl{
		db:     db,
		mapper: mapper.NewBookingMapper(),
	}
}

func (r *BookingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Create inserts the booking together with its travelers.
func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *entity.Booking) error {
	if booking.Id == uuid.Nil {
		booking.Id = uuid.New()
	}
	travelers := booking.Travelers

	m := r.mapper.ToModel(booking)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*booking = *r.mapper.ToEntity(m)

	if err := r.ReplaceTravelers(ctx, booking.Id, travelers); err != nil {
		return err
	}
	booking.Travelers = travelers
	return nil
}

func (r *BookingRepositoryImpl) Update(ctx context.Context, booking *entity.Booking) error {
	travelers := booking.Travelers
	m := r.mapper.ToModel(booking)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*booking = *r.mapper.ToEntity(m)
	booking.Travelers = travelers
	return nil
}

func (r *BookingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("booking_id = ?", id).Delete(&model.BookingTraveler{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&model.Booking{}).Error
}

func (r *BookingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Booking, error) {
	var m model.Booking
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	booking := r.mapper.ToEntity(&m)
	travelers, err := r.FindTravelers(ctx, booking.Id)
	if err != nil {
		return nil, err
	}
	booking.Travelers = travelers
	return booking, nil
}

// FindAll returns bookings without travelers.
func (r *BookingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Booking, error) {
	var models []*model.Booking
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *BookingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Booking{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookingRepositoryImpl) NumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("booking_number = ?", number).
		Count(&count).Error
	return count > 0, err
}

func (r *BookingRepositoryImpl) ReplaceTravelers(ctx context.Context, bookingId uuid.UUID, travelers []*entity.BookingTraveler) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("booking_id = ?", bookingId).Delete(&model.BookingTraveler{}).Error; err != nil {
		return err
	}
	if len(travelers) == 0 {
		return nil
	}

	models := make([]*model.BookingTraveler, 0, len(travelers))
	for _, t := range travelers {
		if t.Id == uuid.Nil {
			t.Id = uuid.New()
		}
		t.BookingId = bookingId
		models = append(models, r.mapper.TravelerToModel(t))
	}
	if err := db.Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*travelers[i] = *r.mapper.TravelerToEntity(m)
	}
	return nil
}

func (r *BookingRepositoryImpl) FindTravelers(ctx context.Context, bookingId uuid.UUID) ([]*entity.BookingTraveler, error) {
	var models []*model.BookingTraveler
	err := r.db.WithContext(ctx).
		Scopes(scope.OrderByCreatedAsc).
		Where("booking_id = ?", bookingId).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]*entity.BookingTraveler, 0, len(models))
	for _, m := range models {
		out = append(out, r.mapper.TravelerToEntity(m))
	}
	return out, nil
}

func (r *BookingRepositoryImpl) SumTotalPrice(ctx context.Context, specs ...specification.Specification) (decimal.Decimal, error) {
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Booking{}), specs...)
	return sumColumn(query, "total_price")
}

func (r *BookingRepositoryImpl) GroupByStatus(ctx context.Context, specs ...specification.Specification) ([]contract.Aggregate, error) {
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Booking{}), specs...)
	return groupColumn(query, "status", "total_price")
}

// Quick bookings

type QuickBookingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BookingMapper
}

func NewQuickBookingRepository(db *gorm.DB) contract.QuickBookingRepository {
	return &QuickBookingRepositoryImpl{
		db:     db,
		mapper: mapper.NewBookingMapper(),
	}
}

func (r *QuickBookingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *QuickBookingRepositoryImpl) Create(ctx context.Context, qb *entity.QuickBooking) error {
	if qb.Id == uuid.Nil {
		qb.Id = uuid.New()
	}
	m := r.mapper.QuickToModel(qb)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*qb = *r.mapper.QuickToEntity(m)
	return nil
}

func (r *QuickBookingRepositoryImpl) Update(ctx context.Context, qb *entity.QuickBooking) error {
	m := r.mapper.QuickToModel(qb)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*qb = *r.mapper.QuickToEntity(m)
	return nil
}

func (r *QuickBookingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.QuickBooking{}).Error
}

func (r *QuickBookingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QuickBooking, error) {
	var m model.QuickBooking
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.QuickToEntity(&m), nil
}

func (r *QuickBookingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QuickBooking, error) {
	var models []*model.QuickBooking
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.QuickToEntities(models), nil
}

func (r *QuickBookingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.QuickBooking{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *QuickBookingRepositoryImpl) NumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.QuickBooking{}).
		Where("qb_number = ?", number).
		Count(&count).Error
	return count > 0, err
}

func (r *QuickBookingRepositoryImpl) MarkConverted(ctx context.Context, id uuid.UUID, bookingId uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.QuickBooking{}).
		Where("id = ? AND is_converted_to_full_booking = ?", id, false).
		Updates(map[string]interface{}{
			"is_converted_to_full_booking": true,
			"converted_booking_id":         bookingId,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *QuickBookingRepositoryImpl) SumBudget(ctx context.Context, specs ...specification.Specification) (decimal.Decimal, error) {
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.QuickBooking{}), specs...)
	return sumColumn(query, "budget")
}
