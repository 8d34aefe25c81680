package entity

import (
	"time"

	"travel-backoffice-be/pkg/lifecycle"
	"travel-backoffice-be/pkg/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomSharing string

const (
	RoomSingle RoomSharing = "single"
	RoomDouble RoomSharing = "double"
	RoomTriple RoomSharing = "triple"
	RoomQuad   RoomSharing = "quad"
)

type BookingPaymentType string

const (
	BookingPaymentCash       BookingPaymentType = "cash"
	BookingPaymentCard       BookingPaymentType = "card"
	BookingPaymentUPI        BookingPaymentType = "upi"
	BookingPaymentNetBanking BookingPaymentType = "net_banking"
	BookingPaymentCheque     BookingPaymentType = "cheque"
)

type TravelerType string

const (
	TravelerAdult  TravelerType = "adult"
	TravelerChild  TravelerType = "child"
	TravelerInfant TravelerType = "infant"
)

type Booking struct {
	Id                 uuid.UUID
	BookingNumber      string
	FirstName          string
	LastName           string
	Email              string
	MobileNo           string
	PassportNo         string
	PlaceOfIssue       string
	Address            string
	TravelMonth        string
	DepartureCity      string
	PackageName        string
	PackageDays        int
	RoomSharing        RoomSharing
	Flight             string
	SpecialRequest     string
	AdultPrice         decimal.Decimal
	ChildPrice         decimal.Decimal
	InfantPrice        decimal.Decimal
	TotalAdults        int
	TotalChildren      int
	TotalInfants       int
	TotalAdultPrice    decimal.Decimal
	TotalChildPrice    decimal.Decimal
	TotalInfantPrice   decimal.Decimal
	DiscountPercentage decimal.Decimal
	DiscountAmount     decimal.Decimal
	TotalPrice         decimal.Decimal
	AdvancePayment     decimal.Decimal
	PayableAmount      decimal.Decimal
	Balance            decimal.Decimal
	PaymentType        BookingPaymentType
	Status             lifecycle.State
	Remarks            string
	CreatedBy          uuid.UUID
	Travelers          []*BookingTraveler
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Recalculate overwrites every derived amount from the base inputs.
func (b *Booking) Recalculate() {
	t := pricing.Booking(pricing.BookingInput{
		AdultPrice:         b.AdultPrice,
		ChildPrice:         b.ChildPrice,
		InfantPrice:        b.InfantPrice,
		TotalAdults:        b.TotalAdults,
		TotalChildren:      b.TotalChildren,
		TotalInfants:       b.TotalInfants,
		DiscountPercentage: b.DiscountPercentage,
		AdvancePayment:     b.AdvancePayment,
	})
	b.TotalAdultPrice = t.TotalAdultPrice
	b.TotalChildPrice = t.TotalChildPrice
	b.TotalInfantPrice = t.TotalInfantPrice
	b.DiscountAmount = t.DiscountAmount
	b.TotalPrice = t.TotalPrice
	b.PayableAmount = t.PayableAmount
	b.Balance = t.Balance
}

func (b *Booking) Subtotal() decimal.Decimal {
	return b.TotalAdultPrice.Add(b.TotalChildPrice).Add(b.TotalInfantPrice)
}

func (b *Booking) Locked() bool {
	return lifecycle.Booking.IsTerminal(b.Status)
}

type BookingTraveler struct {
	Id             uuid.UUID
	BookingId      uuid.UUID
	TravelerType   TravelerType
	Name           string
	Age            int
	Gender         string
	PassportNumber string
	CreatedAt      time.Time
}

type PreferredPayment string

const (
	PreferredFullAdvance    PreferredPayment = "full_advance"
	PreferredPartialAdvance PreferredPayment = "partial_advance"
	PreferredPayLater       PreferredPayment = "pay_later"
)

type QuickBooking struct {
	Id                       uuid.UUID
	QbNumber                 string
	FirstName                string
	LastName                 string
	Email                    string
	Mobile                   string
	TravelMonth              string
	Destination              string
	NumberOfTravelers        int
	Budget                   *decimal.Decimal
	PreferredPayment         PreferredPayment
	Payment                  *decimal.Decimal
	Dues                     decimal.Decimal
	IsConvertedToFullBooking bool
	ConvertedBookingId       *uuid.UUID
	CreatedBy                uuid.UUID
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

func (q *QuickBooking) Recalculate() {
	q.Dues = pricing.QuickBookingDues(q.Budget, q.Payment, q.Dues)
}

func (q *QuickBooking) PaidAmount() decimal.Decimal {
	if q.Payment == nil {
		return decimal.Zero
	}
	return *q.Payment
}

func (q *QuickBooking) TotalAmount() decimal.Decimal {
	return pricing.QuickBookingTotal(q.PaidAmount(), q.Dues)
}

func (q *QuickBooking) PaymentStatus() string {
	return pricing.QuickBookingPaymentStatus(q.PaidAmount(), q.Dues)
}

func (q *QuickBooking) State() lifecycle.State {
	return lifecycle.QuickBookingState(q.IsConvertedToFullBooking)
}
