package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/pkg/logger"
	"travel-backoffice-be/internal/pkg/metrics"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/internal/repository/specification"
	"travel-backoffice-be/internal/repository/unitofwork"
	"travel-backoffice-be/pkg/access"
	"travel-backoffice-be/pkg/events"
	"travel-backoffice-be/pkg/lifecycle"
	"travel-backoffice-be/pkg/numbering"
	"travel-backoffice-be/pkg/printing"
	"travel-backoffice-be/pkg/storage"

	"github.com/google/uuid"
)

const quickBookingModule = "QuickBookingService"

type IQuickBookingService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.QuickBookingRequest) (*dto.QuickBookingResponse, error)
	Update(ctx context.Context, userId, qbId uuid.UUID, req *dto.QuickBookingRequest) (*dto.QuickBookingResponse, error)
	Delete(ctx context.Context, userId, qbId uuid.UUID) error
	Get(ctx context.Context, userId, qbId uuid.UUID) (*dto.QuickBookingResponse, error)
	List(ctx context.Context, userId uuid.UUID, q *dto.QuickBookingListQuery) (*serverutils.PageData[dto.QuickBookingResponse], error)
	Receipt(ctx context.Context, userId, qbId uuid.UUID) (*dto.FileResponse, error)

	// Convert promotes the quick booking into a full booking. overrides is
	// the raw JSON body; its fields are laid over the values copied from the
	// quick booking.
	Convert(ctx context.Context, userId, qbId uuid.UUID, overrides []byte) (*dto.ConvertQuickBookingResponse, error)
}

type quickBookingService struct {
	uowFactory unitofwork.RepositoryFactory
	documents  IDocumentService
	files      storage.Storage
	publisher  events.Publisher
	metrics    *metrics.Metrics
	log        logger.ILogger
}

func NewQuickBookingService(
	uowFactory unitofwork.RepositoryFactory,
	documents IDocumentService,
	files storage.Storage,
	publisher events.Publisher,
	m *metrics.Metrics,
	log logger.ILogger,
) IQuickBookingService {
	return &quickBookingService{
		uowFactory: uowFactory,
		documents:  documents,
		files:      files,
		publisher:  publisher,
		metrics:    m,
		log:        log,
	}
}

func quickBookingVisible(user *entity.User) specification.Specification {
	return specification.Accessible{Scope: access.Resolve(user.Viewer()), Column: "created_by"}
}

func applyQuickBookingRequest(qb *entity.QuickBooking, req *dto.QuickBookingRequest) error {
	if req.Budget != nil && req.Payment != nil && req.Payment.GreaterThan(*req.Budget) {
		return serverutils.NewFieldError("payment", "Payment cannot exceed budget.")
	}

	qb.FirstName = req.FirstName
	qb.LastName = req.LastName
	qb.Email = normalizeEmail(req.Email)
	qb.Mobile = req.Mobile
	qb.TravelMonth = req.TravelMonth
	qb.Destination = req.Destination
	qb.NumberOfTravelers = req.NumberOfTravelers
	qb.Budget = req.Budget
	qb.PreferredPayment = entity.PreferredPayment(req.PreferredPayment)
	qb.Payment = req.Payment
	qb.Recalculate()
	return nil
}

func toQuickBookingResponse(qb *entity.QuickBooking) dto.QuickBookingResponse {
	return dto.QuickBookingResponse{
		Id:                       qb.Id,
		QbNumber:                 qb.QbNumber,
		FirstName:                qb.FirstName,
		LastName:                 qb.LastName,
		Email:                    qb.Email,
		Mobile:                   qb.Mobile,
		TravelMonth:              qb.TravelMonth,
		Destination:              qb.Destination,
		NumberOfTravelers:        qb.NumberOfTravelers,
		Budget:                   qb.Budget,
		PreferredPayment:         string(qb.PreferredPayment),
		Payment:                  qb.Payment,
		Dues:                     qb.Dues,
		TotalAmount:              qb.TotalAmount(),
		PaymentStatus:            qb.PaymentStatus(),
		IsConvertedToFullBooking: qb.IsConvertedToFullBooking,
		ConvertedBooking:         qb.ConvertedBookingId,
		CreatedBy:                qb.CreatedBy,
		CreatedAt:                qb.CreatedAt,
		UpdatedAt:                qb.UpdatedAt,
	}
}

func (s *quickBookingService) findQuickBooking(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, qbId uuid.UUID) (*entity.QuickBooking, error) {
	qb, err := uow.QuickBookingRepository().FindOne(ctx, specification.ByID{ID: qbId}, quickBookingVisible(user))
	if err != nil {
		return nil, err
	}
	if qb == nil {
		return nil, serverutils.NewNotFoundError("Quick booking not found")
	}
	return qb, nil
}

func (s *quickBookingService) Create(ctx context.Context, userId uuid.UUID, req *dto.QuickBookingRequest) (*dto.QuickBookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	qb := &entity.QuickBooking{CreatedBy: user.Id}
	if err := applyQuickBookingRequest(qb, req); err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.QuickBookingRepository()
	qb.QbNumber, err = allocateNumber(ctx, numbering.PrefixQuickBooking, repo.NumberExists)
	if err != nil {
		return nil, err
	}
	if err := repo.Create(ctx, qb); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.metrics.EntityCreated("quick_booking")
	s.log.Info(quickBookingModule, "Quick booking created", map[string]interface{}{
		"qb_number":  qb.QbNumber,
		"created_by": user.Id.String(),
	})
	publishEvent(ctx, s.publisher, s.log, quickBookingModule, events.New(events.QuickBookingCreated, map[string]interface{}{
		"quick_booking_id": qb.Id.String(),
		"qb_number":        qb.QbNumber,
	}))

	res := toQuickBookingResponse(qb)
	return &res, nil
}

func convertedError() error {
	return serverutils.NewValidationError("Converted quick bookings cannot be modified", nil)
}

func (s *quickBookingService) Update(ctx context.Context, userId, qbId uuid.UUID, req *dto.QuickBookingRequest) (*dto.QuickBookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	qb, err := s.findQuickBooking(ctx, uow, user, qbId)
	if err != nil {
		return nil, err
	}
	if qb.IsConvertedToFullBooking {
		return nil, convertedError()
	}
	if err := applyQuickBookingRequest(qb, req); err != nil {
		return nil, err
	}
	if err := uow.QuickBookingRepository().Update(ctx, qb); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	res := toQuickBookingResponse(qb)
	return &res, nil
}

func (s *quickBookingService) Delete(ctx context.Context, userId, qbId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	qb, err := s.findQuickBooking(ctx, uow, user, qbId)
	if err != nil {
		return err
	}
	if qb.IsConvertedToFullBooking {
		return convertedError()
	}
	if err := uow.QuickBookingRepository().Delete(ctx, qb.Id); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *quickBookingService) Get(ctx context.Context, userId, qbId uuid.UUID) (*dto.QuickBookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	qb, err := s.findQuickBooking(ctx, uow, user, qbId)
	if err != nil {
		return nil, err
	}
	res := toQuickBookingResponse(qb)
	return &res, nil
}

func (s *quickBookingService) List(ctx context.Context, userId uuid.UUID, q *dto.QuickBookingListQuery) (*serverutils.PageData[dto.QuickBookingResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	filters := []specification.Specification{quickBookingVisible(user)}
	if q.Converted != nil {
		filters = append(filters, specification.Filter("is_converted_to_full_booking", *q.Converted))
	}
	if q.Search != "" {
		filters = append(filters, specification.TextSearch{
			Fields: []string{"qb_number", "first_name", "last_name", "email", "mobile", "destination"},
			Query:  q.Search,
		})
	}

	repo := uow.QuickBookingRepository()
	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}
	page, size, paging := pageSpecs(q.PageQuery)
	rows, err := repo.FindAll(ctx, append(filters, paging...)...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.QuickBookingResponse, 0, len(rows))
	for _, qb := range rows {
		items = append(items, toQuickBookingResponse(qb))
	}
	return &serverutils.PageData[dto.QuickBookingResponse]{Items: items, TotalCount: total, Page: page, PageSize: size}, nil
}

func (s *quickBookingService) Receipt(ctx context.Context, userId, qbId uuid.UUID) (*dto.FileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	qb, err := s.findQuickBooking(ctx, uow, user, qbId)
	if err != nil {
		return nil, err
	}

	owner := user
	if qb.CreatedBy != user.Id {
		found, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: qb.CreatedBy})
		if err != nil {
			return nil, err
		}
		if found != nil {
			owner = found
		}
	}

	data, err := s.documents.PDF(ctx, "quick_booking_receipt", printing.TemplateQuickBookingReceipt, printing.QuickBookingReceipt{
		Company:          companyFor(owner, s.files),
		Number:           qb.QbNumber,
		CustomerName:     strings.TrimSpace(qb.FirstName + " " + qb.LastName),
		Email:            qb.Email,
		Mobile:           qb.Mobile,
		TravelMonth:      qb.TravelMonth,
		Destination:      qb.Destination,
		Travelers:        qb.NumberOfTravelers,
		PreferredPayment: string(qb.PreferredPayment),
		Budget:           decimalOrZero(qb.Budget),
		Payment:          qb.PaidAmount(),
		Dues:             qb.Dues,
		Total:            qb.TotalAmount(),
		PaymentStatus:    qb.PaymentStatus(),
		Converted:        qb.IsConvertedToFullBooking,
		CreatedAt:        qb.CreatedAt,
		IssuedAt:         time.Now(),
	})
	if err != nil {
		return nil, err
	}
	return pdfFile(fmt.Sprintf("quick_booking_%s.pdf", qb.QbNumber), data), nil
}

// conversionRequest reads the caller's booking fields, then pins the
// customer identity and traveler counts to qb. Children and infants are zero.
func conversionRequest(qb *entity.QuickBooking, overrides []byte) (*dto.BookingRequest, error) {
	req := &dto.BookingRequest{}
	if len(bytes.TrimSpace(overrides)) > 0 {
		if err := json.Unmarshal(overrides, req); err != nil {
			return nil, serverutils.NewValidationError("Invalid request body", nil)
		}
	}
	req.FirstName = qb.FirstName
	req.LastName = qb.LastName
	req.Email = qb.Email
	req.MobileNo = qb.Mobile
	req.TravelMonth = qb.TravelMonth
	req.TotalAdults = qb.NumberOfTravelers
	req.TotalChildren = 0
	req.TotalInfants = 0
	return req, nil
}

func (s *quickBookingService) Convert(ctx context.Context, userId, qbId uuid.UUID, overrides []byte) (*dto.ConvertQuickBookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	qb, err := s.findQuickBooking(ctx, uow, user, qbId)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.QuickBookingConversion.Transition(qb.State(), lifecycle.QuickBookingConverted); err != nil {
		return nil, serverutils.NewConflictError("Quick booking is already converted to a full booking")
	}

	req, err := conversionRequest(qb, overrides)
	if err != nil {
		return nil, err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}

	booking, err := createBooking(ctx, uow, user, req)
	if err != nil {
		return nil, err
	}

	changed, err := uow.QuickBookingRepository().MarkConverted(ctx, qb.Id, booking.Id)
	if err != nil {
		return nil, err
	}
	if !changed {
		// a concurrent conversion won; the booking above is rolled back
		return nil, serverutils.NewConflictError("Quick booking is already converted to a full booking")
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.metrics.EntityCreated("booking")
	s.metrics.Transition("quick_booking", string(lifecycle.QuickBookingOpen), string(lifecycle.QuickBookingConverted))
	s.log.Info(quickBookingModule, "Quick booking converted", map[string]interface{}{
		"qb_number":      qb.QbNumber,
		"booking_number": booking.BookingNumber,
		"by":             user.Id.String(),
	})
	publishEvent(ctx, s.publisher, s.log, quickBookingModule, events.New(events.QuickBookingConverted, map[string]interface{}{
		"quick_booking_id": qb.Id.String(),
		"booking_id":       booking.Id.String(),
		"booking_number":   booking.BookingNumber,
	}))

	return &dto.ConvertQuickBookingResponse{
		Message:       "Quick booking converted to full booking successfully",
		BookingId:     booking.Id,
		BookingNumber: booking.BookingNumber,
	}, nil
}
