package implementation

import (
	"context"
	"errors"
	"time"

	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/mapper"
	"travel-backoffice-be/internal/model"
	"travel-backoffice-be/internal/repository/contract"
	"travel-backoffice-be/internal/repository/scope"
	"travel-backoffice-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func applySpecs(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func countOf(ctx context.Context, db *gorm.DB, m interface{}, specs ...specification.Specification) (int64, error) {
	var count int64
	if err := applySpecs(db.WithContext(ctx).Model(m), specs...).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// API keys

type APIKeyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EnquiryMapper
}

func NewAPIKeyRepository(db *gorm.DB) contract.APIKeyRepository {
	return &APIKeyRepositoryImpl{db: db, mapper: mapper.NewEnquiryMapper()}
}

func (r *APIKeyRepositoryImpl) Create(ctx context.Context, key *entity.APIKey) error {
	if key.Id == uuid.Nil {
		key.Id = uuid.New()
	}
	m := r.mapper.APIKeyToModel(key)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*key = *r.mapper.APIKeyToEntity(m)
	return nil
}

func (r *APIKeyRepositoryImpl) Update(ctx context.Context, key *entity.APIKey) error {
	m := r.mapper.APIKeyToModel(key)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*key = *r.mapper.APIKeyToEntity(m)
	return nil
}

func (r *APIKeyRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.APIKey{}).Error
}

func (r *APIKeyRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.APIKey, error) {
	var m model.APIKey
	if err := applySpecs(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.APIKeyToEntity(&m), nil
}

func (r *APIKeyRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.APIKey, error) {
	var models []*model.APIKey
	if err := applySpecs(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.APIKey, 0, len(models))
	for _, m := range models {
		out = append(out, r.mapper.APIKeyToEntity(m))
	}
	return out, nil
}

func (r *APIKeyRepositoryImpl) TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.APIKey{}).
		Where("id = ?", id).
		Update("last_used", at).Error
}

// Contact submissions

type ContactRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EnquiryMapper
}

func NewContactRepository(db *gorm.DB) contract.ContactRepository {
	return &ContactRepositoryImpl{db: db, mapper: mapper.NewEnquiryMapper()}
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, contact *entity.ContactUs) error {
	if contact.Id == uuid.Nil {
		contact.Id = uuid.New()
	}
	m := r.mapper.ContactToModel(contact)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*contact = *r.mapper.ContactToEntity(m)
	return nil
}

func (r *ContactRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ContactUs{}).Error
}

func (r *ContactRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ContactUs, error) {
	var m model.ContactUs
	if err := applySpecs(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ContactToEntity(&m), nil
}

func (r *ContactRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactUs, error) {
	var models []*model.ContactUs
	if err := applySpecs(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.ContactUs, 0, len(models))
	for _, m := range models {
		out = append(out, r.mapper.ContactToEntity(m))
	}
	return out, nil
}

func (r *ContactRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return countOf(ctx, r.db, &model.ContactUs{}, specs...)
}

// Enquiries

type EnquiryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EnquiryMapper
}

func NewEnquiryRepository(db *gorm.DB) contract.EnquiryRepository {
	return &EnquiryRepositoryImpl{db: db, mapper: mapper.NewEnquiryMapper()}
}

func (r *EnquiryRepositoryImpl) Create(ctx context.Context, enquiry *entity.Enquiry) error {
	if enquiry.Id == uuid.Nil {
		enquiry.Id = uuid.New()
	}
	m := r.mapper.EnquiryToModel(enquiry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*enquiry = *r.mapper.EnquiryToEntity(m)
	return nil
}

func (r *EnquiryRepositoryImpl) Update(ctx context.Context, enquiry *entity.Enquiry) error {
	m := r.mapper.EnquiryToModel(enquiry)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*enquiry = *r.mapper.EnquiryToEntity(m)
	return nil
}

func (r *EnquiryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Enquiry{}).Error
}

func (r *EnquiryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Enquiry, error) {
	var m model.Enquiry
	if err := applySpecs(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.EnquiryToEntity(&m), nil
}

func (r *EnquiryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Enquiry, error) {
	var models []*model.Enquiry
	if err := applySpecs(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.Enquiry, 0, len(models))
	for _, m := range models {
		out = append(out, r.mapper.EnquiryToEntity(m))
	}
	return out, nil
}

func (r *EnquiryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return countOf(ctx, r.db, &model.Enquiry{}, specs...)
}

// CRM leads

type LeadRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EnquiryMapper
}

func NewLeadRepository(db *gorm.DB) contract.LeadRepository {
	return &LeadRepositoryImpl{db: db, mapper: mapper.NewEnquiryMapper()}
}

func (r *LeadRepositoryImpl) Create(ctx context.Context, lead *entity.Lead) error {
	if lead.Id == uuid.Nil {
		lead.Id = uuid.New()
	}
	m := r.mapper.LeadToModel(lead)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*lead = *r.mapper.LeadToEntity(m)
	return nil
}

func (r *LeadRepositoryImpl) Update(ctx context.Context, lead *entity.Lead) error {
	history := lead.History
	m := r.mapper.LeadToModel(lead)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*lead = *r.mapper.LeadToEntity(m)
	lead.History = history
	return nil
}

func (r *LeadRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("lead_id = ?", id).Delete(&model.LeadNote{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&model.Lead{}).Error
}

func (r *LeadRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lead, error) {
	var m model.Lead
	if err := applySpecs(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	lead := r.mapper.LeadToEntity(&m)
	notes, err := r.FindNotes(ctx, lead.Id)
	if err != nil {
		return nil, err
	}
	lead.History = notes
	return lead, nil
}

func (r *LeadRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lead, error) {
	var models []*model.Lead
	if err := applySpecs(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.Lead, 0, len(models))
	for _, m := range models {
		out = append(out, r.mapper.LeadToEntity(m))
	}
	return out, nil
}

func (r *LeadRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return countOf(ctx, r.db, &model.Lead{}, specs...)
}

func (r *LeadRepositoryImpl) AddNote(ctx context.Context, note *entity.LeadNote) error {
	if note.Id == uuid.Nil {
		note.Id = uuid.New()
	}
	m := r.mapper.LeadNoteToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.LeadNoteToEntity(m)
	return nil
}

func (r *LeadRepositoryImpl) FindNotes(ctx context.Context, leadId uuid.UUID) ([]*entity.LeadNote, error) {
	var models []*model.LeadNote
	err := r.db.WithContext(ctx).
		Scopes(scope.OrderByCreatedAsc).
		Where("lead_id = ?", leadId).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]*entity.LeadNote, 0, len(models))
	for _, m := range models {
		out = append(out, r.mapper.LeadNoteToEntity(m))
	}
	return out, nil
}
