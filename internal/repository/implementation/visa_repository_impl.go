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
	"gorm.io/gorm"
)

type VisaRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VisaMapper
}

func NewVisaRepository(db *gorm.DB) contract.VisaRepository {
	return &VisaRepositoryImpl{
		db:     db,
		mapper: mapper.NewVisaMapper(),
	}
}

func (r *VisaRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VisaRepositoryImpl) Create(ctx context.Context, app *entity.VisaApplication) error {
	if app.Id == uuid.Nil {
		app.Id = uuid.New()
	}
	m := r.mapper.ToModel(app)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*app = *r.mapper.ToEntity(m)
	return nil
}

func (r *VisaRepositoryImpl) Update(ctx context.Context, app *entity.VisaApplication) error {
	m := r.mapper.ToModel(app)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*app = *r.mapper.ToEntity(m)
	return nil
}

func (r *VisaRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("visa_application_id = ?", id).Delete(&model.VisaDocument{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&model.VisaApplication{}).Error
}

func (r *VisaRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VisaApplication, error) {
	var m model.VisaApplication
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *VisaRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VisaApplication, error) {
	var models []*model.VisaApplication
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *VisaRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.VisaApplication{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *VisaRepositoryImpl) NumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.VisaApplication{}).
		Where("application_number = ?", number).
		Count(&count).Error
	return count > 0, err
}

func (r *VisaRepositoryImpl) GroupBy(ctx context.Context, column string, specs ...specification.Specification) ([]contract.Aggregate, error) {
	if err := allowedColumn(column, "status", "visa_type"); err != nil {
		return nil, err
	}
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.VisaApplication{}), specs...)
	return groupColumn(query, column, "total_fee")
}

// Documents

func (r *VisaRepositoryImpl) CreateDocument(ctx context.Context, doc *entity.VisaDocument) error {
	if doc.Id == uuid.Nil {
		doc.Id = uuid.New()
	}
	m := r.mapper.DocumentToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.DocumentToEntity(m)
	return nil
}

func (r *VisaRepositoryImpl) UpdateDocument(ctx context.Context, doc *entity.VisaDocument) error {
	m := r.mapper.DocumentToModel(doc)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.DocumentToEntity(m)
	return nil
}

func (r *VisaRepositoryImpl) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VisaDocument{}).Error
}

func (r *VisaRepositoryImpl) FindDocument(ctx context.Context, applicationId, documentId uuid.UUID) (*entity.VisaDocument, error) {
	var m model.VisaDocument
	err := r.db.WithContext(ctx).
		Where("id = ? AND visa_application_id = ?", documentId, applicationId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DocumentToEntity(&m), nil
}

func (r *VisaRepositoryImpl) FindDocuments(ctx context.Context, applicationId uuid.UUID) ([]*entity.VisaDocument, error) {
	var models []*model.VisaDocument
	err := r.db.WithContext(ctx).
		Scopes(scope.OrderByCreatedAsc).
		Where("visa_application_id = ?", applicationId).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]*entity.VisaDocument, 0, len(models))
	for _, m := range models {
		out = append(out, r.mapper.DocumentToEntity(m))
	}
	return out, nil
}
