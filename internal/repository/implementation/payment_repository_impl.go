package implementation

import (
	"context"
	"errors"

	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/mapper"
	"travel-backoffice-be/internal/model"
	"travel-backoffice-be/internal/repository/contract"
	"travel-backoffice-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PaymentMapper
}

func NewPaymentRepository(db *gorm.DB) contract.PaymentRepository {
	return &PaymentRepositoryImpl{
		db:     db,
		mapper: mapper.NewPaymentMapper(),
	}
}

func (r *PaymentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.Id == uuid.Nil {
		payment.Id = uuid.New()
	}
	m := r.mapper.ToModel(payment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*payment = *r.mapper.ToEntity(m)
	return nil
}

func (r *PaymentRepositoryImpl) Update(ctx context.Context, payment *entity.Payment) error {
	m := r.mapper.ToModel(payment)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*payment = *r.mapper.ToEntity(m)
	return nil
}

func (r *PaymentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Payment, error) {
	var m model.Payment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PaymentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Payment, error) {
	var models []*model.Payment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PaymentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Payment{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PaymentRepositoryImpl) SumAmount(ctx context.Context, specs ...specification.Specification) (decimal.Decimal, error) {
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Payment{}), specs...)
	return sumColumn(query, "payment_amount")
}

func (r *PaymentRepositoryImpl) GroupBy(ctx context.Context, column string, specs ...specification.Specification) ([]contract.Aggregate, error) {
	if err := allowedColumn(column, "status", "payment_mode"); err != nil {
		return nil, err
	}
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Payment{}), specs...)
	return groupColumn(query, column, "payment_amount")
}

func (r *PaymentRepositoryImpl) BulkTransition(ctx context.Context, t contract.BulkTransition, specs ...specification.Specification) (int64, error) {
	if len(t.IDs) == 0 {
		return 0, nil
	}
	values := map[string]interface{}{
		"status":       t.To,
		"processed_by": t.ProcessedBy,
		"processed_at": t.ProcessedAt,
	}
	if t.Notes != "" {
		values["notes"] = t.Notes
	}
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Payment{}), specs...)
	res := query.
		Where("id IN ? AND status = ?", t.IDs, t.From).
		Updates(values)
	return res.RowsAffected, res.Error
}
