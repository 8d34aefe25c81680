package service

import (
	"context"
	"strings"

	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/pkg/logger"
	"travel-backoffice-be/internal/pkg/metrics"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/internal/repository/specification"
	"travel-backoffice-be/internal/repository/unitofwork"
	"travel-backoffice-be/pkg/access"
	"travel-backoffice-be/pkg/labels"
	"travel-backoffice-be/pkg/storage"

	"github.com/google/uuid"
)

const packageModule = "PackageService"

var packageTypes = []entity.PackageType{
	entity.PackageClassicHajj, entity.PackageDeluxeHajj, entity.PackageLuxuryHajj,
	entity.PackageClassicUmrah, entity.PackageDeluxeUmrah, entity.PackageLuxuryUmrah,
	entity.PackageRamadan20Days, entity.PackageRamadan18Days, entity.PackageRamadanFullMonth,
}

type IPackageService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.PackageRequest) (*dto.PackageResponse, error)
	Update(ctx context.Context, userId, packageId uuid.UUID, req *dto.PackageRequest) (*dto.PackageResponse, error)
	Delete(ctx context.Context, userId, packageId uuid.UUID) error
	Get(ctx context.Context, userId, packageId uuid.UUID) (*dto.PackageResponse, error)
	List(ctx context.Context, userId uuid.UUID, q *dto.PackageListQuery) (*serverutils.PageData[dto.PackageResponse], error)
	UploadImage(ctx context.Context, userId, packageId uuid.UUID, file *dto.UploadedFile) (*dto.PackageResponse, error)

	// External catalog for an API key owner; active packages only.
	ListForKey(ctx context.Context, key *entity.APIKey, q *dto.PackageListQuery) (*serverutils.PageData[dto.PackageResponse], error)
	GetForKey(ctx context.Context, key *entity.APIKey, packageId uuid.UUID) (*dto.PackageResponse, error)

	Types() []labels.Choice
}

type packageService struct {
	uowFactory unitofwork.RepositoryFactory
	files      storage.Storage
	metrics    *metrics.Metrics
	log        logger.ILogger
}

func NewPackageService(uowFactory unitofwork.RepositoryFactory, files storage.Storage, m *metrics.Metrics, log logger.ILogger) IPackageService {
	return &packageService{
		uowFactory: uowFactory,
		files:      files,
		metrics:    m,
		log:        log,
	}
}

func packageVisible(user *entity.User) specification.Specification {
	return specification.CatalogVisible{Scope: access.ResolveCatalog(user.Viewer())}
}

func toPackageResponse(p *entity.Package, files storage.Storage) dto.PackageResponse {
	return dto.PackageResponse{
		Id:             p.Id,
		Name:           p.Name,
		Description:    p.Description,
		PackageType:    string(p.PackageType),
		PackageLabel:   labels.Label(string(p.PackageType)),
		Destination:    p.Destination,
		DurationDays:   p.DurationDays,
		Price:          p.Price,
		DiscountPrice:  p.DiscountPrice,
		EffectivePrice: p.EffectivePrice(),
		Image:          fileURL(files, p.Image),
		IsActive:       p.IsActive,
		CreatedBy:      p.CreatedBy,
		AssignedTo:     p.AssignedTo,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (s *packageService) applyRequest(ctx context.Context, uow unitofwork.UnitOfWork, p *entity.Package, req *dto.PackageRequest) error {
	if req.DiscountPrice.IsPositive() && req.DiscountPrice.GreaterThan(req.Price) {
		return serverutils.NewFieldError("discount_price", "Discount price cannot exceed price.")
	}
	if req.AssignedTo != nil {
		assignee, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *req.AssignedTo})
		if err != nil {
			return err
		}
		if assignee == nil {
			return serverutils.NewFieldError("assigned_to", "User does not exist.")
		}
	}

	p.Name = strings.TrimSpace(req.Name)
	p.Description = req.Description
	p.PackageType = entity.PackageType(req.PackageType)
	p.Destination = strings.TrimSpace(req.Destination)
	p.DurationDays = req.DurationDays
	p.Price = req.Price
	p.DiscountPrice = req.DiscountPrice
	p.AssignedTo = req.AssignedTo
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	return nil
}

func (s *packageService) Create(ctx context.Context, userId uuid.UUID, req *dto.PackageRequest) (*dto.PackageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if user.Role == access.RoleFreelancer {
		return nil, serverutils.NewForbiddenError("Freelancers cannot create packages")
	}

	pkg := &entity.Package{IsActive: true, CreatedBy: user.Id}
	if err := s.applyRequest(ctx, uow, pkg, req); err != nil {
		return nil, err
	}
	if err := uow.PackageRepository().Create(ctx, pkg); err != nil {
		return nil, err
	}

	s.metrics.EntityCreated("package")
	s.log.Info(packageModule, "Package created", map[string]interface{}{
		"package_id": pkg.Id.String(),
		"created_by": user.Id.String(),
	})
	res := toPackageResponse(pkg, s.files)
	return &res, nil
}

func (s *packageService) findPackage(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, packageId uuid.UUID) (*entity.Package, error) {
	pkg, err := uow.PackageRepository().FindOne(ctx, specification.ByID{ID: packageId}, packageVisible(user))
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, serverutils.NewNotFoundError("Package not found")
	}
	return pkg, nil
}

// findEditable returns a package the caller may change: its author or a
// superadmin. Assignees only read.
func (s *packageService) findEditable(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, packageId uuid.UUID) (*entity.Package, error) {
	pkg, err := s.findPackage(ctx, uow, user, packageId)
	if err != nil {
		return nil, err
	}
	if !user.Role.IsSuperAdmin() && pkg.CreatedBy != user.Id {
		return nil, serverutils.NewForbiddenError("Only the package creator can modify it")
	}
	return pkg, nil
}

func (s *packageService) Update(ctx context.Context, userId, packageId uuid.UUID, req *dto.PackageRequest) (*dto.PackageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	pkg, err := s.findEditable(ctx, uow, user, packageId)
	if err != nil {
		return nil, err
	}
	if err := s.applyRequest(ctx, uow, pkg, req); err != nil {
		return nil, err
	}
	if err := uow.PackageRepository().Update(ctx, pkg); err != nil {
		return nil, err
	}
	res := toPackageResponse(pkg, s.files)
	return &res, nil
}

func (s *packageService) Delete(ctx context.Context, userId, packageId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return err
	}
	pkg, err := s.findEditable(ctx, uow, user, packageId)
	if err != nil {
		return err
	}
	if err := uow.PackageRepository().Delete(ctx, pkg.Id); err != nil {
		return err
	}
	discardFile(ctx, s.files, s.log, packageModule, pkg.Image)
	s.log.Info(packageModule, "Package deleted", map[string]interface{}{"package_id": pkg.Id.String()})
	return nil
}

func (s *packageService) Get(ctx context.Context, userId, packageId uuid.UUID) (*dto.PackageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	pkg, err := s.findPackage(ctx, uow, user, packageId)
	if err != nil {
		return nil, err
	}
	res := toPackageResponse(pkg, s.files)
	return &res, nil
}

func (s *packageService) list(ctx context.Context, uow unitofwork.UnitOfWork, visible specification.Specification, q *dto.PackageListQuery, activeOnly bool) (*serverutils.PageData[dto.PackageResponse], error) {
	filters := []specification.Specification{visible}
	if activeOnly || q.ActiveOnly {
		filters = append(filters, specification.ActiveOnly{})
	}
	if q.PackageType != "" {
		filters = append(filters, specification.Filter("package_type", strings.ToLower(q.PackageType)))
	}
	if q.Search != "" {
		filters = append(filters, specification.TextSearch{Fields: []string{"name", "destination", "description"}, Query: q.Search})
	}

	repo := uow.PackageRepository()
	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}
	page, size, paging := pageSpecs(q.PageQuery)
	pkgs, err := repo.FindAll(ctx, append(filters, paging...)...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.PackageResponse, 0, len(pkgs))
	for _, p := range pkgs {
		items = append(items, toPackageResponse(p, s.files))
	}
	return &serverutils.PageData[dto.PackageResponse]{Items: items, TotalCount: total, Page: page, PageSize: size}, nil
}

func (s *packageService) List(ctx context.Context, userId uuid.UUID, q *dto.PackageListQuery) (*serverutils.PageData[dto.PackageResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, uow, packageVisible(user), q, false)
}

func (s *packageService) UploadImage(ctx context.Context, userId, packageId uuid.UUID, file *dto.UploadedFile) (*dto.PackageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	pkg, err := s.findEditable(ctx, uow, user, packageId)
	if err != nil {
		return nil, err
	}

	key, err := storeUpload(ctx, s.files, "packages", file)
	if err != nil {
		return nil, err
	}
	previous := pkg.Image
	pkg.Image = &key
	if err := uow.PackageRepository().Update(ctx, pkg); err != nil {
		discardFile(ctx, s.files, s.log, packageModule, &key)
		return nil, err
	}
	discardFile(ctx, s.files, s.log, packageModule, previous)

	res := toPackageResponse(pkg, s.files)
	return &res, nil
}

func (s *packageService) keyOwner(ctx context.Context, uow unitofwork.UnitOfWork, key *entity.APIKey) (*entity.User, error) {
	owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: key.UserId})
	if err != nil {
		return nil, err
	}
	if owner == nil || !owner.IsActive {
		return nil, serverutils.NewUnauthorizedError("Invalid API key")
	}
	return owner, nil
}

func (s *packageService) ListForKey(ctx context.Context, key *entity.APIKey, q *dto.PackageListQuery) (*serverutils.PageData[dto.PackageResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	owner, err := s.keyOwner(ctx, uow, key)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, uow, packageVisible(owner), q, true)
}

func (s *packageService) GetForKey(ctx context.Context, key *entity.APIKey, packageId uuid.UUID) (*dto.PackageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	owner, err := s.keyOwner(ctx, uow, key)
	if err != nil {
		return nil, err
	}
	pkg, err := uow.PackageRepository().FindOne(ctx, specification.ByID{ID: packageId}, packageVisible(owner), specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, serverutils.NewNotFoundError("Package not found")
	}
	res := toPackageResponse(pkg, s.files)
	return &res, nil
}

func (s *packageService) Types() []labels.Choice {
	return labels.Choices(packageTypes)
}
