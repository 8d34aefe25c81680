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
	"gorm.io/gorm"
)

type PackageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewPackageRepository(db *gorm.DB) contract.PackageRepository {
	return &PackageRepositoryImpl{db: db, mapper: mapper.NewCatalogMapper()}
}

func (r *PackageRepositoryImpl) Create(ctx context.Context, pkg *entity.Package) error {
	if pkg.Id == uuid.Nil {
		pkg.Id = uuid.New()
	}
	m := r.mapper.PackageToModel(pkg)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*pkg = *r.mapper.PackageToEntity(m)
	return nil
}

func (r *PackageRepositoryImpl) Update(ctx context.Context, pkg *entity.Package) error {
	m := r.mapper.PackageToModel(pkg)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*pkg = *r.mapper.PackageToEntity(m)
	return nil
}

func (r *PackageRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Package{}).Error
}

func (r *PackageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Package, error) {
	var m model.Package
	if err := applySpecs(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PackageToEntity(&m), nil
}

func (r *PackageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Package, error) {
	var models []*model.Package
	if err := applySpecs(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.Package, 0, len(models))
	for _, m := range models {
		out = append(out, r.mapper.PackageToEntity(m))
	}
	return out, nil
}

func (r *PackageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return countOf(ctx, r.db, &model.Package{}, specs...)
}

// Posters

type PosterRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewPosterRepository(db *gorm.DB) contract.PosterRepository {
	return &PosterRepositoryImpl{db: db, mapper: mapper.NewCatalogMapper()}
}

func (r *PosterRepositoryImpl) CreateTemplate(ctx context.Context, tpl *entity.PosterTemplate) error {
	if tpl.Id == uuid.Nil {
		tpl.Id = uuid.New()
	}
	m := r.mapper.TemplateToModel(tpl)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tpl = *r.mapper.TemplateToEntity(m)
	return nil
}

func (r *PosterRepositoryImpl) UpdateTemplate(ctx context.Context, tpl *entity.PosterTemplate) error {
	m := r.mapper.TemplateToModel(tpl)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*tpl = *r.mapper.TemplateToEntity(m)
	return nil
}

func (r *PosterRepositoryImpl) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PosterTemplate{}).Error
}

func (r *PosterRepositoryImpl) FindTemplate(ctx context.Context, specs ...specification.Specification) (*entity.PosterTemplate, error) {
	var m model.PosterTemplate
	if err := applySpecs(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TemplateToEntity(&m), nil
}

func (r *PosterRepositoryImpl) FindTemplates(ctx context.Context, specs ...specification.Specification) ([]*entity.PosterTemplate, error) {
	var models []*model.PosterTemplate
	if err := applySpecs(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.PosterTemplate, 0, len(models))
	for _, m := range models {
		out = append(out, r.mapper.TemplateToEntity(m))
	}
	return out, nil
}

func (r *PosterRepositoryImpl) CreatePoster(ctx context.Context, poster *entity.PackagePoster) error {
	if poster.Id == uuid.Nil {
		poster.Id = uuid.New()
	}
	m := r.mapper.PosterToModel(poster)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*poster = *r.mapper.PosterToEntity(m)
	return nil
}

func (r *PosterRepositoryImpl) DeletePoster(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PackagePoster{}).Error
}

func (r *PosterRepositoryImpl) FindPoster(ctx context.Context, specs ...specification.Specification) (*entity.PackagePoster, error) {
	var m model.PackagePoster
	if err := applySpecs(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PosterToEntity(&m), nil
}

func (r *PosterRepositoryImpl) FindPosters(ctx context.Context, specs ...specification.Specification) ([]*entity.PackagePoster, error) {
	var models []*model.PackagePoster
	if err := applySpecs(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.PackagePoster, 0, len(models))
	for _, m := range models {
		out = append(out, r.mapper.PosterToEntity(m))
	}
	return out, nil
}

// Platform sales leads

type PlatformLeadRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewPlatformLeadRepository(db *gorm.DB) contract.PlatformLeadRepository {
	return &PlatformLeadRepositoryImpl{db: db, mapper: mapper.NewCatalogMapper()}
}

func (r *PlatformLeadRepositoryImpl) CreateDemo(ctx context.Context, req *entity.PlatformDemoRequest) error {
	if req.Id == uuid.Nil {
		req.Id = uuid.New()
	}
	m := r.mapper.DemoToModel(req)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*req = *r.mapper.DemoToEntity(m)
	return nil
}

func (r *PlatformLeadRepositoryImpl) FindDemos(ctx context.Context, specs ...specification.Specification) ([]*entity.PlatformDemoRequest, error) {
	var models []*model.PlatformDemoRequest
	if err := applySpecs(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.PlatformDemoRequest, 0, len(models))
	for _, m := range models {
		out = append(out, r.mapper.DemoToEntity(m))
	}
	return out, nil
}

func (r *PlatformLeadRepositoryImpl) CreateService(ctx context.Context, req *entity.PlatformServiceRequest) error {
	if req.Id == uuid.Nil {
		req.Id = uuid.New()
	}
	m := r.mapper.ServiceToModel(req)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*req = *r.mapper.ServiceToEntity(m)
	return nil
}

func (r *PlatformLeadRepositoryImpl) FindServices(ctx context.Context, specs ...specification.Specification) ([]*entity.PlatformServiceRequest, error) {
	var models []*model.PlatformServiceRequest
	if err := applySpecs(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.PlatformServiceRequest, 0, len(models))
	for _, m := range models {
		out = append(out, r.mapper.ServiceToEntity(m))
	}
	return out, nil
}
