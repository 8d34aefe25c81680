package service

import (
	"context"
	"strings"
	"time"

	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/pkg/logger"
	"travel-backoffice-be/internal/pkg/metrics"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/internal/repository/contract"
	"travel-backoffice-be/internal/repository/specification"
	"travel-backoffice-be/internal/repository/unitofwork"
	"travel-backoffice-be/pkg/access"
	"travel-backoffice-be/pkg/events"
	"travel-backoffice-be/pkg/labels"
	"travel-backoffice-be/pkg/lifecycle"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const paymentModule = "PaymentService"

const recentPayments = 10

type IPaymentService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.PaymentRequest) (*dto.PaymentResponse, error)
	List(ctx context.Context, userId uuid.UUID, q *dto.PaymentListQuery) (*serverutils.PageData[dto.PaymentResponse], error)
	Get(ctx context.Context, userId, paymentId uuid.UUID) (*dto.PaymentResponse, error)
	MyHistory(ctx context.Context, userId uuid.UUID, q *dto.PaymentListQuery) (*serverutils.PageData[dto.PaymentResponse], error)

	UpdateStatus(ctx context.Context, userId, paymentId uuid.UUID, req *dto.PaymentStatusRequest) (*dto.PaymentResponse, error)
	BulkUpdateStatus(ctx context.Context, userId uuid.UUID, req *dto.BulkPaymentStatusRequest) (*dto.BulkPaymentStatusResponse, error)

	Dashboard(ctx context.Context, userId uuid.UUID) (*dto.PaymentDashboardResponse, error)
	Modes() []labels.Choice
	Statuses() []labels.Choice
}

type paymentService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  events.Publisher
	metrics    *metrics.Metrics
	log        logger.ILogger
	now        func() time.Time
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	publisher events.Publisher,
	m *metrics.Metrics,
	log logger.ILogger,
) IPaymentService {
	return &paymentService{
		uowFactory: uowFactory,
		publisher:  publisher,
		metrics:    m,
		log:        log,
		now:        time.Now,
	}
}

func paymentVisible(user *entity.User) specification.Specification {
	return specification.Accessible{Scope: access.Resolve(user.Viewer()), Column: "paid_by"}
}

func toPaymentResponse(p *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		Id:               p.Id,
		PaymentAmount:    p.PaymentAmount,
		PaymentMode:      string(p.PaymentMode),
		PaymentModeLabel: labels.Label(string(p.PaymentMode)),
		NoOfTravelers:    p.NoOfTravelers,
		ReferenceNumber:  p.ReferenceNumber,
		Status:           string(p.Status),
		StatusLabel:      labels.Label(string(p.Status)),
		Notes:            p.Notes,
		PaidBy:           p.PaidBy,
		ProcessedBy:      p.ProcessedBy,
		ProcessedAt:      p.ProcessedAt,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toAggregateRows(aggs []contract.Aggregate) []dto.AggregateRow {
	rows := make([]dto.AggregateRow, 0, len(aggs))
	for _, a := range aggs {
		rows = append(rows, dto.AggregateRow{
			Key:   a.Key,
			Label: labels.Label(a.Key),
			Count: a.Count,
			Total: a.Total.StringFixed(2),
		})
	}
	return rows
}

// Create records a payment in process. Any authenticated role may do this.
func (s *paymentService) Create(ctx context.Context, userId uuid.UUID, req *dto.PaymentRequest) (*dto.PaymentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	payment := &entity.Payment{
		PaymentAmount:   req.PaymentAmount,
		PaymentMode:     entity.PaymentMode(req.PaymentMode),
		NoOfTravelers:   req.NoOfTravelers,
		ReferenceNumber: strings.TrimSpace(req.ReferenceNumber),
		Status:          lifecycle.Payment.Initial(),
		Notes:           req.Notes,
		PaidBy:          user.Id,
	}
	if err := uow.PaymentRepository().Create(ctx, payment); err != nil {
		return nil, err
	}

	s.metrics.EntityCreated("payment")
	s.log.Info(paymentModule, "Payment recorded", map[string]interface{}{
		"payment_id": payment.Id.String(),
		"amount":     payment.PaymentAmount.String(),
		"mode":       string(payment.PaymentMode),
		"paid_by":    user.Id.String(),
	})
	publishEvent(ctx, s.publisher, s.log, paymentModule, events.New(events.PaymentCreated, map[string]interface{}{
		"payment_id": payment.Id.String(),
		"amount":     payment.PaymentAmount.String(),
	}))

	res := toPaymentResponse(payment)
	return &res, nil
}

func (s *paymentService) list(ctx context.Context, uow unitofwork.UnitOfWork, q *dto.PaymentListQuery, filters []specification.Specification) (*serverutils.PageData[dto.PaymentResponse], error) {
	if q.Status != "" {
		filters = append(filters, specification.ByStatus{Status: strings.ToLower(q.Status)})
	}
	if q.PaymentMode != "" {
		filters = append(filters, specification.Filter("payment_mode", strings.ToLower(q.PaymentMode)))
	}
	if q.Search != "" {
		filters = append(filters, specification.TextSearch{Fields: []string{"reference_number", "notes"}, Query: q.Search})
	}

	repo := uow.PaymentRepository()
	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}
	page, size, paging := pageSpecs(q.PageQuery)
	payments, err := repo.FindAll(ctx, append(filters, paging...)...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		items = append(items, toPaymentResponse(p))
	}
	return &serverutils.PageData[dto.PaymentResponse]{Items: items, TotalCount: total, Page: page, PageSize: size}, nil
}

func (s *paymentService) List(ctx context.Context, userId uuid.UUID, q *dto.PaymentListQuery) (*serverutils.PageData[dto.PaymentResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, uow, q, []specification.Specification{paymentVisible(user)})
}

// MyHistory is the caller's accessible set; for a superadmin it is limited
// to payments the superadmin recorded.
func (s *paymentService) MyHistory(ctx context.Context, userId uuid.UUID, q *dto.PaymentListQuery) (*serverutils.PageData[dto.PaymentResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	filter := paymentVisible(user)
	if user.Role.IsSuperAdmin() {
		filter = specification.Filter("paid_by", user.Id)
	}
	return s.list(ctx, uow, q, []specification.Specification{filter})
}

func (s *paymentService) findPayment(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, paymentId uuid.UUID) (*entity.Payment, error) {
	payment, err := uow.PaymentRepository().FindOne(ctx, specification.ByID{ID: paymentId}, paymentVisible(user))
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, serverutils.NewNotFoundError("Payment not found")
	}
	return payment, nil
}

func (s *paymentService) Get(ctx context.Context, userId, paymentId uuid.UUID) (*dto.PaymentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	payment, err := s.findPayment(ctx, uow, user, paymentId)
	if err != nil {
		return nil, err
	}
	res := toPaymentResponse(payment)
	return &res, nil
}

func (s *paymentService) UpdateStatus(ctx context.Context, userId, paymentId uuid.UUID, req *dto.PaymentStatusRequest) (*dto.PaymentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if err := requireSuperAdmin(user); err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	payment, err := s.findPayment(ctx, uow, user, paymentId)
	if err != nil {
		return nil, err
	}
	from, to := payment.Status, lifecycle.State(req.Status)
	if err := lifecycle.Payment.Transition(from, to); err != nil {
		return nil, transitionFailure(err)
	}

	now := s.now()
	processedBy := user.Id
	payment.Status = to
	payment.ProcessedBy = &processedBy
	payment.ProcessedAt = &now
	if req.Notes != "" {
		payment.Notes = req.Notes
	}
	if err := uow.PaymentRepository().Update(ctx, payment); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.metrics.Transition("payment", string(from), string(to))
	s.log.Info(paymentModule, "Payment status changed", map[string]interface{}{
		"payment_id": payment.Id.String(),
		"from":       string(from),
		"to":         string(to),
		"by":         user.Id.String(),
	})
	publishEvent(ctx, s.publisher, s.log, paymentModule, events.New(events.PaymentStatusChanged, map[string]interface{}{
		"payment_id": payment.Id.String(),
		"from":       string(from),
		"to":         string(to),
	}))

	res := toPaymentResponse(payment)
	return &res, nil
}

// BulkUpdateStatus flips every listed payment that is still in process.
// Rows in any other state are skipped and not counted.
func (s *paymentService) BulkUpdateStatus(ctx context.Context, userId uuid.UUID, req *dto.BulkPaymentStatusRequest) (*dto.BulkPaymentStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if err := requireSuperAdmin(user); err != nil {
		return nil, err
	}

	to := lifecycle.State(req.Status)
	if err := lifecycle.Payment.Transition(lifecycle.PaymentInProcess, to); err != nil {
		return nil, transitionFailure(err)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	updated, err := uow.PaymentRepository().BulkTransition(ctx, contract.BulkTransition{
		IDs:         req.PaymentIds,
		From:        string(lifecycle.PaymentInProcess),
		To:          string(to),
		ProcessedBy: user.Id,
		ProcessedAt: s.now(),
		Notes:       req.Notes,
	})
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	for i := int64(0); i < updated; i++ {
		s.metrics.Transition("payment", string(lifecycle.PaymentInProcess), string(to))
	}
	s.log.Info(paymentModule, "Bulk payment status update", map[string]interface{}{
		"requested": len(req.PaymentIds),
		"updated":   updated,
		"to":        string(to),
		"by":        user.Id.String(),
	})
	publishEvent(ctx, s.publisher, s.log, paymentModule, events.New(events.PaymentStatusChanged, map[string]interface{}{
		"bulk":    true,
		"to":      string(to),
		"updated": updated,
	}))

	return &dto.BulkPaymentStatusResponse{Requested: len(req.PaymentIds), Updated: updated}, nil
}

func (s *paymentService) Dashboard(ctx context.Context, userId uuid.UUID) (*dto.PaymentDashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	visible := paymentVisible(user)
	repo := uow.PaymentRepository()

	byStatus, err := repo.GroupBy(ctx, "status", visible)
	if err != nil {
		return nil, err
	}
	byMode, err := repo.GroupBy(ctx, "payment_mode", visible)
	if err != nil {
		return nil, err
	}

	now := s.now()
	thisMonth := specification.CreatedBetween{From: monthStart(now), To: monthStart(now).AddDate(0, 1, 0)}
	monthCount, err := repo.Count(ctx, visible, thisMonth)
	if err != nil {
		return nil, err
	}
	monthAmount, err := repo.SumAmount(ctx, visible, thisMonth)
	if err != nil {
		return nil, err
	}

	recent, err := repo.FindAll(ctx, visible,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: recentPayments},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.PaymentDashboardResponse{
		TotalAmount:     decimal.Zero,
		ThisMonthCount:  monthCount,
		ThisMonthAmount: monthAmount,
		ByStatus:        toAggregateRows(byStatus),
		ByMode:          toAggregateRows(byMode),
		Recent:          make([]dto.PaymentResponse, 0, len(recent)),
	}
	for _, agg := range byStatus {
		res.TotalCount += agg.Count
		res.TotalAmount = res.TotalAmount.Add(agg.Total)
	}
	for _, p := range recent {
		res.Recent = append(res.Recent, toPaymentResponse(p))
	}
	return res, nil
}

func (s *paymentService) Modes() []labels.Choice {
	return labels.Choices(entity.PaymentModes)
}

func (s *paymentService) Statuses() []labels.Choice {
	return labels.Choices(entity.PaymentStatuses)
}
