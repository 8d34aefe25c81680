package service

import (
	"context"
	"time"

	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/repository/specification"
	"travel-backoffice-be/internal/repository/unitofwork"
	"travel-backoffice-be/pkg/lifecycle"

	"github.com/google/uuid"
)

type IDashboardService interface {
	Stats(ctx context.Context, userId uuid.UUID) (*dto.DashboardStatsResponse, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
	now        func() time.Time
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory) IDashboardService {
	return &dashboardService{uowFactory: uowFactory, now: time.Now}
}

// Stats aggregates every module over the caller's accessible set.
func (s *dashboardService) Stats(ctx context.Context, userId uuid.UUID) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	now := s.now()
	res := &dto.DashboardStatsResponse{}

	bookings := uow.BookingRepository()
	bv := bookingVisible(user)
	if res.Bookings.Total, err = bookings.Count(ctx, bv); err != nil {
		return nil, err
	}
	if res.Bookings.TotalValue, err = bookings.SumTotalPrice(ctx, bv); err != nil {
		return nil, err
	}
	thisMonth := specification.CreatedBetween{From: monthStart(now), To: monthStart(now).AddDate(0, 1, 0)}
	if res.Bookings.ThisMonth, err = bookings.Count(ctx, bv, thisMonth); err != nil {
		return nil, err
	}
	today := specification.CreatedBetween{From: dayStart(now), To: dayStart(now).AddDate(0, 0, 1)}
	if res.Bookings.Today, err = bookings.Count(ctx, bv, today); err != nil {
		return nil, err
	}
	byStatus, err := bookings.GroupByStatus(ctx, bv)
	if err != nil {
		return nil, err
	}
	res.Bookings.ByStatus = make(map[string]int64, len(byStatus))
	for _, agg := range byStatus {
		res.Bookings.ByStatus[agg.Key] = agg.Count
	}

	qbs := uow.QuickBookingRepository()
	qv := quickBookingVisible(user)
	if res.QuickBookings.Total, err = qbs.Count(ctx, qv); err != nil {
		return nil, err
	}
	if res.QuickBookings.TotalBudget, err = qbs.SumBudget(ctx, qv); err != nil {
		return nil, err
	}
	if res.QuickBookings.Converted, err = qbs.Count(ctx, qv, specification.Filter("is_converted_to_full_booking", true)); err != nil {
		return nil, err
	}

	visas := uow.VisaRepository()
	vv := visaVisible(user)
	if res.Visas.Total, err = visas.Count(ctx, vv); err != nil {
		return nil, err
	}
	for _, st := range []lifecycle.State{lifecycle.VisaSubmitted, lifecycle.VisaUnderReview} {
		n, err := visas.Count(ctx, vv, specification.ByStatus{Status: string(st)})
		if err != nil {
			return nil, err
		}
		res.Visas.PendingReview += n
	}

	payments := uow.PaymentRepository()
	pv := paymentVisible(user)
	inProcess := specification.ByStatus{Status: string(lifecycle.PaymentInProcess)}
	if res.Payments.InProcessAmount, err = payments.SumAmount(ctx, pv, inProcess); err != nil {
		return nil, err
	}
	if res.Payments.InProcessCount, err = payments.Count(ctx, pv, inProcess); err != nil {
		return nil, err
	}
	if res.Payments.CompletedAmount, err = payments.SumAmount(ctx, pv, specification.ByStatus{Status: string(lifecycle.PaymentCompleted)}); err != nil {
		return nil, err
	}

	if res.Contacts, err = uow.ContactRepository().Count(ctx, contactVisible(user)); err != nil {
		return nil, err
	}
	if res.Enquiries, err = uow.EnquiryRepository().Count(ctx, enquiryVisible(user)); err != nil {
		return nil, err
	}
	if res.Leads, err = uow.LeadRepository().Count(ctx, leadVisible(user)); err != nil {
		return nil, err
	}
	return res, nil
}
