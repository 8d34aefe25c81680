package contract

import (
	"context"

	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.Package) error
	Update(ctx context.Context, pkg *entity.Package) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Package, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Package, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type PosterRepository interface {
	CreateTemplate(ctx context.Context, tpl *entity.PosterTemplate) error
	UpdateTemplate(ctx context.Context, tpl *entity.PosterTemplate) error
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
	FindTemplate(ctx context.Context, specs ...specification.Specification) (*entity.PosterTemplate, error)
	FindTemplates(ctx context.Context, specs ...specification.Specification) ([]*entity.PosterTemplate, error)

	CreatePoster(ctx context.Context, poster *entity.PackagePoster) error
	DeletePoster(ctx context.Context, id uuid.UUID) error
	FindPoster(ctx context.Context, specs ...specification.Specification) (*entity.PackagePoster, error)
	FindPosters(ctx context.Context, specs ...specification.Specification) ([]*entity.PackagePoster, error)
}

type PlatformLeadRepository interface {
	CreateDemo(ctx context.Context, req *entity.PlatformDemoRequest) error
	FindDemos(ctx context.Context, specs ...specification.Specification) ([]*entity.PlatformDemoRequest, error)
	CreateService(ctx context.Context, req *entity.PlatformServiceRequest) error
	FindServices(ctx context.Context, specs ...specification.Specification) ([]*entity.PlatformServiceRequest, error)
}
