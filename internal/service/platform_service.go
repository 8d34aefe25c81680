package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/pkg/logger"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/internal/repository/specification"
	"travel-backoffice-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const platformModule = "PlatformService"

// IPlatformService records leads from the marketing site. Intake is guarded
// by a shared secret instead of a user session.
type IPlatformService interface {
	VerifySecret(secret string) error
	CreateDemo(ctx context.Context, req *dto.PlatformDemoRequest) (*dto.PlatformDemoResponse, error)
	CreateServiceRequest(ctx context.Context, req *dto.PlatformServiceRequest) (*dto.PlatformServiceResponse, error)
	ListDemos(ctx context.Context, userId uuid.UUID) ([]dto.PlatformDemoResponse, error)
	ListServiceRequests(ctx context.Context, userId uuid.UUID) ([]dto.PlatformServiceResponse, error)
}

type platformService struct {
	uowFactory unitofwork.RepositoryFactory
	secret     string
	log        logger.ILogger
}

func NewPlatformService(uowFactory unitofwork.RepositoryFactory, secret string, log logger.ILogger) IPlatformService {
	return &platformService{uowFactory: uowFactory, secret: secret, log: log}
}

func toDemoResponse(d *entity.PlatformDemoRequest) dto.PlatformDemoResponse {
	return dto.PlatformDemoResponse{
		Id:           d.Id,
		SelectedDate: d.SelectedDate.Format(dto.DateLayout),
		SelectedTime: d.SelectedTime,
		Name:         d.Name,
		Email:        d.Email,
		Phone:        d.Phone,
		BusinessPlan: string(d.BusinessPlan),
		CreatedAt:    d.CreatedAt,
	}
}

func toServiceRequestResponse(r *entity.PlatformServiceRequest) dto.PlatformServiceResponse {
	return dto.PlatformServiceResponse{
		Id:           r.Id,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		BusinessPlan: string(r.BusinessPlan),
		CreatedAt:    r.CreatedAt,
	}
}

// VerifySecret fails closed when no secret is configured.
func (s *platformService) VerifySecret(secret string) error {
	if s.secret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(s.secret)) != 1 {
		return serverutils.NewUnauthorizedError("Invalid secret key")
	}
	return nil
}

func (s *platformService) CreateDemo(ctx context.Context, req *dto.PlatformDemoRequest) (*dto.PlatformDemoResponse, error) {
	date, err := parseDate("selected_date", req.SelectedDate)
	if err != nil {
		return nil, err
	}
	demo := &entity.PlatformDemoRequest{
		SelectedDate: date,
		SelectedTime: req.SelectedTime,
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		BusinessPlan: entity.BusinessPlan(req.BusinessPlan),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PlatformLeadRepository().CreateDemo(ctx, demo); err != nil {
		return nil, err
	}
	s.log.Info(platformModule, "Demo request received", map[string]interface{}{
		"demo_id":       demo.Id.String(),
		"business_plan": req.BusinessPlan,
	})
	res := toDemoResponse(demo)
	return &res, nil
}

func (s *platformService) CreateServiceRequest(ctx context.Context, req *dto.PlatformServiceRequest) (*dto.PlatformServiceResponse, error) {
	sr := &entity.PlatformServiceRequest{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        normalizeEmail(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		BusinessPlan: entity.BusinessPlan(req.BusinessPlan),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PlatformLeadRepository().CreateService(ctx, sr); err != nil {
		return nil, err
	}
	s.log.Info(platformModule, "Service request received", map[string]interface{}{
		"request_id":    sr.Id.String(),
		"business_plan": req.BusinessPlan,
	})
	res := toServiceRequestResponse(sr)
	return &res, nil
}

func (s *platformService) ListDemos(ctx context.Context, userId uuid.UUID) ([]dto.PlatformDemoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if err := requireSuperAdmin(user); err != nil {
		return nil, err
	}
	demos, err := uow.PlatformLeadRepository().FindDemos(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}
	res := make([]dto.PlatformDemoResponse, 0, len(demos))
	for _, d := range demos {
		res = append(res, toDemoResponse(d))
	}
	return res, nil
}

func (s *platformService) ListServiceRequests(ctx context.Context, userId uuid.UUID) ([]dto.PlatformServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if err := requireSuperAdmin(user); err != nil {
		return nil, err
	}
	reqs, err := uow.PlatformLeadRepository().FindServices(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}
	res := make([]dto.PlatformServiceResponse, 0, len(reqs))
	for _, r := range reqs {
		res = append(res, toServiceRequestResponse(r))
	}
	return res, nil
}
