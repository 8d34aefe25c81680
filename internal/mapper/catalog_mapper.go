package mapper

import (
	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) PackageToEntity(p *model.Package) *entity.Package {
	if p == nil {
		return nil
	}
	return &entity.Package{
		Id:            p.Id,
		Name:          p.Name,
		Description:   p.Description,
		PackageType:   entity.PackageType(p.PackageType),
		Destination:   p.Destination,
		DurationDays:  p.DurationDays,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		Image:         p.Image,
		IsActive:      p.IsActive,
		CreatedBy:     p.CreatedBy,
		AssignedTo:    p.AssignedTo,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (m *CatalogMapper) PackageToModel(p *entity.Package) *model.Package {
	if p == nil {
		return nil
	}
	return &model.Package{
		Id:            p.Id,
		Name:          p.Name,
		Description:   p.Description,
		PackageType:   string(p.PackageType),
		Destination:   p.Destination,
		DurationDays:  p.DurationDays,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		Image:         p.Image,
		IsActive:      p.IsActive,
		CreatedBy:     p.CreatedBy,
		AssignedTo:    p.AssignedTo,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (m *CatalogMapper) TemplateToEntity(t *model.PosterTemplate) *entity.PosterTemplate {
	if t == nil {
		return nil
	}
	return &entity.PosterTemplate{
		Id:              t.Id,
		Name:            t.Name,
		TemplateType:    entity.PosterType(t.TemplateType),
		BackgroundImage: t.BackgroundImage,
		IsActive:        t.IsActive,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func (m *CatalogMapper) TemplateToModel(t *entity.PosterTemplate) *model.PosterTemplate {
	if t == nil {
		return nil
	}
	return &model.PosterTemplate{
		Id:              t.Id,
		Name:            t.Name,
		TemplateType:    string(t.TemplateType),
		BackgroundImage: t.BackgroundImage,
		IsActive:        t.IsActive,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func (m *CatalogMapper) PosterToEntity(p *model.PackagePoster) *entity.PackagePoster {
	if p == nil {
		return nil
	}
	return &entity.PackagePoster{
		Id:           p.Id,
		UserId:       p.UserId,
		PackageName:  p.PackageName,
		PackageType:  entity.PosterType(p.PackageType),
		Price:        p.Price,
		TemplateId:   p.TemplateId,
		PosterPngKey: p.PosterPngKey,
		PosterJpgKey: p.PosterJpgKey,
		PosterPdfKey: p.PosterPdfKey,
		CreatedAt:    p.CreatedAt,
	}
}

func (m *CatalogMapper) PosterToModel(p *entity.PackagePoster) *model.PackagePoster {
	if p == nil {
		return nil
	}
	return &model.PackagePoster{
		Id:           p.Id,
		UserId:       p.UserId,
		PackageName:  p.PackageName,
		PackageType:  string(p.PackageType),
		Price:        p.Price,
		TemplateId:   p.TemplateId,
		PosterPngKey: p.PosterPngKey,
		PosterJpgKey: p.PosterJpgKey,
		PosterPdfKey: p.PosterPdfKey,
		CreatedAt:    p.CreatedAt,
	}
}

func (m *CatalogMapper) DemoToEntity(d *model.PlatformDemoRequest) *entity.PlatformDemoRequest {
	return &entity.PlatformDemoRequest{
		Id:           d.Id,
		SelectedDate: fromDate(d.SelectedDate),
		SelectedTime: d.SelectedTime,
		Name:         d.Name,
		Email:        d.Email,
		Phone:        d.Phone,
		BusinessPlan: entity.BusinessPlan(d.BusinessPlan),
		CreatedAt:    d.CreatedAt,
	}
}

func (m *CatalogMapper) DemoToModel(d *entity.PlatformDemoRequest) *model.PlatformDemoRequest {
	return &model.PlatformDemoRequest{
		Id:           d.Id,
		SelectedDate: toDate(d.SelectedDate),
		SelectedTime: d.SelectedTime,
		Name:         d.Name,
		Email:        d.Email,
		Phone:        d.Phone,
		BusinessPlan: string(d.BusinessPlan),
		CreatedAt:    d.CreatedAt,
	}
}

func (m *CatalogMapper) ServiceToEntity(s *model.PlatformServiceRequest) *entity.PlatformServiceRequest {
	return &entity.PlatformServiceRequest{
		Id:           s.Id,
		FirstName:    s.FirstName,
		LastName:     s.LastName,
		Email:        s.Email,
		Phone:        s.Phone,
		BusinessPlan: entity.BusinessPlan(s.BusinessPlan),
		CreatedAt:    s.CreatedAt,
	}
}

func (m *CatalogMapper) ServiceToModel(s *entity.PlatformServiceRequest) *model.PlatformServiceRequest {
	return &model.PlatformServiceRequest{
		Id:           s.Id,
		FirstName:    s.FirstName,
		LastName:     s.LastName,
		Email:        s.Email,
		Phone:        s.Phone,
		BusinessPlan: string(s.BusinessPlan),
		CreatedAt:    s.CreatedAt,
	}
}
