package service

import (
	"context"
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

const bookingModule = "BookingService"

type IBookingService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.BookingRequest) (*dto.BookingResponse, error)
	Update(ctx context.Context, userId, bookingId uuid.UUID, req *dto.BookingRequest) (*dto.BookingResponse, error)
	Delete(ctx context.Context, userId, bookingId uuid.UUID) error
	Get(ctx context.Context, userId, bookingId uuid.UUID) (*dto.BookingResponse, error)
	List(ctx context.Context, userId uuid.UUID, q *dto.BookingListQuery) (*serverutils.PageData[dto.BookingResponse], error)

	Confirm(ctx context.Context, userId, bookingId uuid.UUID) (*dto.BookingResponse, error)
	Cancel(ctx context.Context, userId, bookingId uuid.UUID) (*dto.BookingResponse, error)
	Complete(ctx context.Context, userId, bookingId uuid.UUID) (*dto.BookingResponse, error)

	Receipt(ctx context.Context, userId, bookingId uuid.UUID) (*dto.FileResponse, error)
}

type bookingService struct {
	uowFactory unitofwork.RepositoryFactory
	documents  IDocumentService
	files      storage.Storage
	publisher  events.Publisher
	metrics    *metrics.Metrics
	log        logger.ILogger
}

func NewBookingService(
	uowFactory unitofwork.RepositoryFactory,
	documents IDocumentService,
	files storage.Storage,
	publisher events.Publisher,
	m *metrics.Metrics,
	log logger.ILogger,
) IBookingService {
	return &bookingService{
		uowFactory: uowFactory,
		documents:  documents,
		files:      files,
		publisher:  publisher,
		metrics:    m,
		log:        log,
	}
}

func bookingVisible(user *entity.User) specification.Specification {
	return specification.Accessible{Scope: access.Resolve(user.Viewer()), Column: "created_by"}
}

// applyBookingRequest copies the base inputs onto b and recomputes every
// derived amount. Travelers are replaced only when the request carries them.
func applyBookingRequest(b *entity.Booking, req *dto.BookingRequest) {
	b.FirstName = req.FirstName
	b.LastName = req.LastName
	b.Email = normalizeEmail(req.Email)
	b.MobileNo = req.MobileNo
	b.PassportNo = req.PassportNo
	b.PlaceOfIssue = req.PlaceOfIssue
	b.Address = req.Address
	b.TravelMonth = req.TravelMonth
	b.DepartureCity = req.DepartureCity
	b.PackageName = req.PackageName
	b.PackageDays = req.PackageDays
	b.RoomSharing = entity.RoomSharing(req.RoomSharing)
	b.Flight = req.Flight
	b.SpecialRequest = req.SpecialRequest
	b.AdultPrice = req.AdultPrice
	b.ChildPrice = req.ChildPrice
	b.InfantPrice = req.InfantPrice
	b.TotalAdults = req.TotalAdults
	b.TotalChildren = req.TotalChildren
	b.TotalInfants = req.TotalInfants
	b.DiscountPercentage = req.DiscountPercentage
	b.AdvancePayment = req.AdvancePayment
	b.PaymentType = entity.BookingPaymentType(req.PaymentType)
	b.Remarks = req.Remarks

	if req.Travelers != nil {
		travelers := make([]*entity.BookingTraveler, 0, len(req.Travelers))
		for _, t := range req.Travelers {
			travelers = append(travelers, &entity.BookingTraveler{
				TravelerType:   entity.TravelerType(t.TravelerType),
				Name:           t.Name,
				Age:            t.Age,
				Gender:         t.Gender,
				PassportNumber: t.PassportNumber,
			})
		}
		b.Travelers = travelers
	}

	b.Recalculate()
}

// createBooking inserts a new pending booking owned by owner. It runs on
// whatever transaction uow currently holds.
func createBooking(ctx context.Context, uow unitofwork.UnitOfWork, owner *entity.User, req *dto.BookingRequest) (*entity.Booking, error) {
	repo := uow.BookingRepository()
	number, err := allocateNumber(ctx, numbering.PrefixBooking, repo.NumberExists)
	if err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		Id:            uuid.New(),
		BookingNumber: number,
		Status:        lifecycle.Booking.Initial(),
		CreatedBy:     owner.Id,
	}
	applyBookingRequest(booking, req)
	if booking.Travelers == nil {
		booking.Travelers = []*entity.BookingTraveler{}
	}

	if err := repo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func toBookingResponse(b *entity.Booking) dto.BookingResponse {
	res := dto.BookingResponse{
		Id:                 b.Id,
		BookingNumber:      b.BookingNumber,
		FirstName:          b.FirstName,
		LastName:           b.LastName,
		Email:              b.Email,
		MobileNo:           b.MobileNo,
		PassportNo:         b.PassportNo,
		PlaceOfIssue:       b.PlaceOfIssue,
		Address:            b.Address,
		TravelMonth:        b.TravelMonth,
		DepartureCity:      b.DepartureCity,
		PackageName:        b.PackageName,
		PackageDays:        b.PackageDays,
		RoomSharing:        string(b.RoomSharing),
		Flight:             b.Flight,
		SpecialRequest:     b.SpecialRequest,
		AdultPrice:         b.AdultPrice,
		ChildPrice:         b.ChildPrice,
		InfantPrice:        b.InfantPrice,
		TotalAdults:        b.TotalAdults,
		TotalChildren:      b.TotalChildren,
		TotalInfants:       b.TotalInfants,
		TotalAdultPrice:    b.TotalAdultPrice,
		TotalChildPrice:    b.TotalChildPrice,
		TotalInfantPrice:   b.TotalInfantPrice,
		Subtotal:           b.Subtotal(),
		DiscountPercentage: b.DiscountPercentage,
		DiscountAmount:     b.DiscountAmount,
		TotalPrice:         b.TotalPrice,
		AdvancePayment:     b.AdvancePayment,
		PayableAmount:      b.PayableAmount,
		Balance:            b.Balance,
		PaymentType:        string(b.PaymentType),
		Status:             string(b.Status),
		Remarks:            b.Remarks,
		CreatedBy:          b.CreatedBy,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
	for _, t := range b.Travelers {
		res.Travelers = append(res.Travelers, dto.TravelerResponse{
			Id:             t.Id,
			TravelerType:   string(t.TravelerType),
			Name:           t.Name,
			Age:            t.Age,
			Gender:         t.Gender,
			PassportNumber: t.PassportNumber,
		})
	}
	return res
}

func (s *bookingService) Create(ctx context.Context, userId uuid.UUID, req *dto.BookingRequest) (*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	booking, err := createBooking(ctx, uow, user, req)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.metrics.EntityCreated("booking")
	s.log.Info(bookingModule, "Booking created", map[string]interface{}{
		"booking_number": booking.BookingNumber,
		"created_by":     user.Id.String(),
		"total_price":    booking.TotalPrice.String(),
	})
	publishEvent(ctx, s.publisher, s.log, bookingModule, events.New(events.BookingCreated, map[string]interface{}{
		"booking_id":     booking.Id.String(),
		"booking_number": booking.BookingNumber,
		"created_by":     user.Id.String(),
	}))

	res := toBookingResponse(booking)
	return &res, nil
}

// findBooking returns the booking only when it is in user's accessible set.
func (s *bookingService) findBooking(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, bookingId uuid.UUID) (*entity.Booking, error) {
	booking, err := uow.BookingRepository().FindOne(ctx, specification.ByID{ID: bookingId}, bookingVisible(user))
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, serverutils.NewNotFoundError("Booking not found")
	}
	return booking, nil
}

func lockedBookingError(b *entity.Booking) error {
	return serverutils.NewValidationError(fmt.Sprintf("Booking is %s and can no longer be modified", b.Status), nil)
}

func (s *bookingService) Update(ctx context.Context, userId, bookingId uuid.UUID, req *dto.BookingRequest) (*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	booking, err := s.findBooking(ctx, uow, user, bookingId)
	if err != nil {
		return nil, err
	}
	if booking.Locked() {
		return nil, lockedBookingError(booking)
	}

	replaceTravelers := req.Travelers != nil
	applyBookingRequest(booking, req)

	repo := uow.BookingRepository()
	if err := repo.Update(ctx, booking); err != nil {
		return nil, err
	}
	if replaceTravelers {
		if err := repo.ReplaceTravelers(ctx, booking.Id, booking.Travelers); err != nil {
			return nil, err
		}
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.log.Info(bookingModule, "Booking updated", map[string]interface{}{
		"booking_number":     booking.BookingNumber,
		"travelers_replaced": replaceTravelers,
	})
	res := toBookingResponse(booking)
	return &res, nil
}

func (s *bookingService) Delete(ctx context.Context, userId, bookingId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	booking, err := s.findBooking(ctx, uow, user, bookingId)
	if err != nil {
		return err
	}
	if booking.Locked() {
		return lockedBookingError(booking)
	}
	if err := uow.BookingRepository().Delete(ctx, booking.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.log.Info(bookingModule, "Booking deleted", map[string]interface{}{"booking_number": booking.BookingNumber, "by": user.Id.String()})
	return nil
}

func (s *bookingService) Get(ctx context.Context, userId, bookingId uuid.UUID) (*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	booking, err := s.findBooking(ctx, uow, user, bookingId)
	if err != nil {
		return nil, err
	}
	res := toBookingResponse(booking)
	return &res, nil
}

func (s *bookingService) List(ctx context.Context, userId uuid.UUID, q *dto.BookingListQuery) (*serverutils.PageData[dto.BookingResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	filters := []specification.Specification{bookingVisible(user)}
	if q.Status != "" {
		filters = append(filters, specification.ByStatus{Status: strings.ToLower(q.Status)})
	}
	if q.Search != "" {
		filters = append(filters, specification.TextSearch{
			Fields: []string{"booking_number", "first_name", "last_name", "email", "mobile_no"},
			Query:  q.Search,
		})
	}

	repo := uow.BookingRepository()
	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}
	page, size, paging := pageSpecs(q.PageQuery)
	bookings, err := repo.FindAll(ctx, append(filters, paging...)...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, toBookingResponse(b))
	}
	return &serverutils.PageData[dto.BookingResponse]{Items: items, TotalCount: total, Page: page, PageSize: size}, nil
}

func (s *bookingService) Confirm(ctx context.Context, userId, bookingId uuid.UUID) (*dto.BookingResponse, error) {
	return s.transition(ctx, userId, bookingId, lifecycle.BookingConfirmed)
}

func (s *bookingService) Cancel(ctx context.Context, userId, bookingId uuid.UUID) (*dto.BookingResponse, error) {
	return s.transition(ctx, userId, bookingId, lifecycle.BookingCancelled)
}

func (s *bookingService) Complete(ctx context.Context, userId, bookingId uuid.UUID) (*dto.BookingResponse, error) {
	return s.transition(ctx, userId, bookingId, lifecycle.BookingCompleted)
}

// transition uses the same visibility guard as Get and List.
func (s *bookingService) transition(ctx context.Context, userId, bookingId uuid.UUID, to lifecycle.State) (*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	booking, err := s.findBooking(ctx, uow, user, bookingId)
	if err != nil {
		return nil, err
	}
	from := booking.Status
	if err := lifecycle.Booking.Transition(from, to); err != nil {
		return nil, transitionFailure(err)
	}

	booking.Status = to
	if err := uow.BookingRepository().Update(ctx, booking); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.metrics.Transition("booking", string(from), string(to))
	s.log.Info(bookingModule, "Booking status changed", map[string]interface{}{
		"booking_number": booking.BookingNumber,
		"from":           string(from),
		"to":             string(to),
		"by":             user.Id.String(),
	})
	publishEvent(ctx, s.publisher, s.log, bookingModule, events.New(events.BookingStatusChanged, map[string]interface{}{
		"booking_id":     booking.Id.String(),
		"booking_number": booking.BookingNumber,
		"from":           string(from),
		"to":             string(to),
	}))

	res := toBookingResponse(booking)
	return &res, nil
}

func (s *bookingService) Receipt(ctx context.Context, userId, bookingId uuid.UUID) (*dto.FileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	booking, err := s.findBooking(ctx, uow, user, bookingId)
	if err != nil {
		return nil, err
	}

	owner := user
	if booking.CreatedBy != user.Id {
		found, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: booking.CreatedBy})
		if err != nil {
			return nil, err
		}
		if found != nil {
			owner = found
		}
	}

	data, err := s.documents.PDF(ctx, "booking_receipt", printing.TemplateBookingReceipt, bookingReceipt(booking, companyFor(owner, s.files)))
	if err != nil {
		return nil, err
	}
	return pdfFile(fmt.Sprintf("booking_%s.pdf", booking.BookingNumber), data), nil
}

func bookingReceipt(b *entity.Booking, company printing.Company) printing.BookingReceipt {
	lines := []printing.PriceLine{
		{Label: "Adults", Quantity: b.TotalAdults, UnitPrice: b.AdultPrice, Amount: b.TotalAdultPrice},
	}
	if b.TotalChildren > 0 {
		lines = append(lines, printing.PriceLine{Label: "Children", Quantity: b.TotalChildren, UnitPrice: b.ChildPrice, Amount: b.TotalChildPrice})
	}
	if b.TotalInfants > 0 {
		lines = append(lines, printing.PriceLine{Label: "Infants", Quantity: b.TotalInfants, UnitPrice: b.InfantPrice, Amount: b.TotalInfantPrice})
	}

	travelers := make([]printing.Traveler, 0, len(b.Travelers))
	for _, t := range b.Travelers {
		travelers = append(travelers, printing.Traveler{
			Type:           string(t.TravelerType),
			Name:           t.Name,
			Age:            t.Age,
			Gender:         t.Gender,
			PassportNumber: t.PassportNumber,
		})
	}

	return printing.BookingReceipt{
		Company:            company,
		Number:             b.BookingNumber,
		Status:             string(b.Status),
		CustomerName:       strings.TrimSpace(b.FirstName + " " + b.LastName),
		Email:              b.Email,
		Mobile:             b.MobileNo,
		PassportNo:         b.PassportNo,
		Address:            b.Address,
		TravelMonth:        b.TravelMonth,
		DepartureCity:      b.DepartureCity,
		PackageName:        b.PackageName,
		PackageDays:        b.PackageDays,
		RoomSharing:        string(b.RoomSharing),
		Flight:             b.Flight,
		PaymentType:        string(b.PaymentType),
		Lines:              lines,
		Subtotal:           b.Subtotal(),
		DiscountPercentage: b.DiscountPercentage,
		DiscountAmount:     b.DiscountAmount,
		TotalPrice:         b.TotalPrice,
		AdvancePayment:     b.AdvancePayment,
		Balance:            b.Balance,
		Travelers:          travelers,
		Remarks:            b.Remarks,
		BookedAt:           b.CreatedAt,
		IssuedAt:           time.Now(),
	}
}
