// Package pricing holds the derived-amount arithmetic for bookings, quick
// bookings and visa applications. Derived values are always recomputed from
// base inputs; callers never supply them.
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

type BookingInput struct {
	AdultPrice         decimal.Decimal
	ChildPrice         decimal.Decimal
	InfantPrice        decimal.Decimal
	TotalAdults        int
	TotalChildren      int
	TotalInfants       int
	DiscountPercentage decimal.Decimal
	AdvancePayment     decimal.Decimal
}

type BookingTotals struct {
	TotalAdultPrice  decimal.Decimal
	TotalChildPrice  decimal.Decimal
	TotalInfantPrice decimal.Decimal
	Subtotal         decimal.Decimal
	DiscountAmount   decimal.Decimal
	TotalPrice       decimal.Decimal
	PayableAmount    decimal.Decimal
	Balance          decimal.Decimal
}

// Booking computes every derived booking amount. The discount is rounded
// half-up to two decimal places, matching the stored column scale.
func Booking(in BookingInput) BookingTotals {
	var t BookingTotals
	t.TotalAdultPrice = in.AdultPrice.Mul(decimal.NewFromInt(int64(in.TotalAdults)))
	t.TotalChildPrice = in.ChildPrice.Mul(decimal.NewFromInt(int64(in.TotalChildren)))
	t.TotalInfantPrice = in.InfantPrice.Mul(decimal.NewFromInt(int64(in.TotalInfants)))
	t.Subtotal = t.TotalAdultPrice.Add(t.TotalChildPrice).Add(t.TotalInfantPrice)
	t.DiscountAmount = t.Subtotal.Mul(in.DiscountPercentage).Div(hundred).Round(2)
	t.TotalPrice = t.Subtotal.Sub(t.DiscountAmount)
	t.PayableAmount = t.TotalPrice
	t.Balance = t.TotalPrice.Sub(in.AdvancePayment)
	return t
}

// QuickBookingDues returns max(0, budget-payment) when both are present,
// otherwise the prior value unchanged.
func QuickBookingDues(budget, payment *decimal.Decimal, prior decimal.Decimal) decimal.Decimal {
	if budget == nil || payment == nil {
		return prior
	}
	return decimal.Max(decimal.Zero, budget.Sub(*payment))
}

const (
	PaymentStatusFullyPaid     = "Fully Paid"
	PaymentStatusUnpaid        = "Unpaid"
	PaymentStatusPartiallyPaid = "Partially Paid"
)

// QuickBookingPaymentStatus labels a quick booking from its payment and dues.
func QuickBookingPaymentStatus(payment, dues decimal.Decimal) string {
	switch {
	case payment.IsZero():
		return PaymentStatusUnpaid
	case dues.IsZero():
		return PaymentStatusFullyPaid
	default:
		return PaymentStatusPartiallyPaid
	}
}

func QuickBookingTotal(payment, dues decimal.Decimal) decimal.Decimal {
	return payment.Add(dues)
}

func VisaTotalFee(processing, embassy, service decimal.Decimal) decimal.Decimal {
	return processing.Add(embassy).Add(service)
}
