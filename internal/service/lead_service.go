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

	"github.com/google/uuid"
)

const leadModule = "LeadService"

type ILeadService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.LeadRequest) (*dto.LeadResponse, error)
	Update(ctx context.Context, userId, leadId uuid.UUID, req *dto.LeadRequest) (*dto.LeadResponse, error)
	Delete(ctx context.Context, userId, leadId uuid.UUID) error
	Get(ctx context.Context, userId, leadId uuid.UUID) (*dto.LeadResponse, error)
	List(ctx context.Context, userId uuid.UUID, q *dto.LeadListQuery) (*serverutils.PageData[dto.LeadResponse], error)
	UpdateStatus(ctx context.Context, userId, leadId uuid.UUID, req *dto.LeadStatusRequest) (*dto.LeadResponse, error)
	Statuses() []labels.Choice
}

type leadService struct {
	uowFactory unitofwork.RepositoryFactory
	metrics    *metrics.Metrics
	log        logger.ILogger
}

func NewLeadService(uowFactory unitofwork.RepositoryFactory, m *metrics.Metrics, log logger.ILogger) ILeadService {
	return &leadService{
		uowFactory: uowFactory,
		metrics:    m,
		log:        log,
	}
}

func leadVisible(user *entity.User) specification.Specification {
	return specification.Accessible{Scope: access.Resolve(user.Viewer()), Column: "user_id"}
}

func toLeadResponse(l *entity.Lead) dto.LeadResponse {
	res := dto.LeadResponse{
		Id:           l.Id,
		UserId:       l.UserId,
		Name:         l.Name,
		MobileNumber: l.MobileNumber,
		Email:        l.Email,
		Status:       string(l.Status),
		StatusLabel:  labels.Label(string(l.Status)),
		Notes:        l.Notes,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
	for _, n := range l.History {
		res.History = append(res.History, dto.LeadNoteResponse{Id: n.Id, Note: n.Note, CreatedAt: n.CreatedAt})
	}
	return res
}

func (s *leadService) Create(ctx context.Context, userId uuid.UUID, req *dto.LeadRequest) (*dto.LeadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	status := entity.LeadNew
	if req.Status != "" {
		status = entity.LeadStatus(req.Status)
	}
	lead := &entity.Lead{
		UserId:       user.Id,
		Name:         strings.TrimSpace(req.Name),
		MobileNumber: strings.TrimSpace(req.MobileNumber),
		Email:        normalizeEmail(req.Email),
		Status:       status,
		Notes:        req.Notes,
	}
	if err := uow.LeadRepository().Create(ctx, lead); err != nil {
		return nil, err
	}

	s.metrics.EntityCreated("lead")
	s.log.Info(leadModule, "Lead created", map[string]interface{}{
		"lead_id": lead.Id.String(),
		"user_id": user.Id.String(),
	})
	res := toLeadResponse(lead)
	return &res, nil
}

func (s *leadService) findLead(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, leadId uuid.UUID) (*entity.Lead, error) {
	lead, err := uow.LeadRepository().FindOne(ctx, specification.ByID{ID: leadId}, leadVisible(user))
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, serverutils.NewNotFoundError("Lead not found")
	}
	return lead, nil
}

func (s *leadService) Update(ctx context.Context, userId, leadId uuid.UUID, req *dto.LeadRequest) (*dto.LeadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	lead, err := s.findLead(ctx, uow, user, leadId)
	if err != nil {
		return nil, err
	}

	lead.Name = strings.TrimSpace(req.Name)
	lead.MobileNumber = strings.TrimSpace(req.MobileNumber)
	lead.Email = normalizeEmail(req.Email)
	lead.Notes = req.Notes
	if req.Status != "" {
		lead.Status = entity.LeadStatus(req.Status)
	}
	if err := uow.LeadRepository().Update(ctx, lead); err != nil {
		return nil, err
	}
	res := toLeadResponse(lead)
	return &res, nil
}

func (s *leadService) Delete(ctx context.Context, userId, leadId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return err
	}
	lead, err := s.findLead(ctx, uow, user, leadId)
	if err != nil {
		return err
	}
	if err := uow.LeadRepository().Delete(ctx, lead.Id); err != nil {
		return err
	}
	s.log.Info(leadModule, "Lead deleted", map[string]interface{}{"lead_id": lead.Id.String()})
	return nil
}

func (s *leadService) Get(ctx context.Context, userId, leadId uuid.UUID) (*dto.LeadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	lead, err := s.findLead(ctx, uow, user, leadId)
	if err != nil {
		return nil, err
	}
	lead.History, err = uow.LeadRepository().FindNotes(ctx, lead.Id)
	if err != nil {
		return nil, err
	}
	res := toLeadResponse(lead)
	return &res, nil
}

func (s *leadService) List(ctx context.Context, userId uuid.UUID, q *dto.LeadListQuery) (*serverutils.PageData[dto.LeadResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	filters := []specification.Specification{leadVisible(user)}
	if q.Status != "" {
		filters = append(filters, specification.ByStatus{Status: strings.ToUpper(q.Status)})
	}
	if q.Search != "" {
		filters = append(filters, specification.TextSearch{Fields: []string{"name", "mobile_number", "email"}, Query: q.Search})
	}

	repo := uow.LeadRepository()
	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}
	page, size, paging := pageSpecs(q.PageQuery)
	leads, err := repo.FindAll(ctx, append(filters, paging...)...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		items = append(items, toLeadResponse(l))
	}
	return &serverutils.PageData[dto.LeadResponse]{Items: items, TotalCount: total, Page: page, PageSize: size}, nil
}

// UpdateStatus moves the lead and appends a history note in one transaction.
// Leads have no transition table: any status may follow any other.
func (s *leadService) UpdateStatus(ctx context.Context, userId, leadId uuid.UUID, req *dto.LeadStatusRequest) (*dto.LeadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	lead, err := s.findLead(ctx, uow, user, leadId)
	if err != nil {
		return nil, err
	}
	from, to := lead.Status, entity.LeadStatus(req.Status)
	lead.Status = to
	if err := uow.LeadRepository().Update(ctx, lead); err != nil {
		return nil, err
	}

	note := strings.TrimSpace(req.Note)
	if note == "" {
		note = "Status changed from " + labels.Label(string(from)) + " to " + labels.Label(string(to))
	}
	if err := uow.LeadRepository().AddNote(ctx, &entity.LeadNote{LeadId: lead.Id, Note: note}); err != nil {
		return nil, err
	}
	history, err := uow.LeadRepository().FindNotes(ctx, lead.Id)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	lead.History = history

	s.metrics.Transition("lead", string(from), string(to))
	s.log.Info(leadModule, "Lead status changed", map[string]interface{}{
		"lead_id": lead.Id.String(),
		"from":    string(from),
		"to":      string(to),
	})
	res := toLeadResponse(lead)
	return &res, nil
}

func (s *leadService) Statuses() []labels.Choice {
	return labels.Choices(entity.LeadStatuses)
}
