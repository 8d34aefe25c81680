package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func TestBooking_Scenario(t *testing.T) {
	got := Booking(BookingInput{
		AdultPrice:         d("100"),
		TotalAdults:        2,
		ChildPrice:         d("50"),
		TotalChildren:      1,
		DiscountPercentage: d("10"),
	})

	assert.True(t, got.TotalAdultPrice.Equal(d("200")))
	assert.True(t, got.TotalChildPrice.Equal(d("50")))
	assert.True(t, got.TotalInfantPrice.IsZero())
	assert.True(t, got.Subtotal.Equal(d("250")))
	assert.True(t, got.DiscountAmount.Equal(d("25")))
	assert.True(t, got.TotalPrice.Equal(d("225")))
	assert.True(t, got.PayableAmount.Equal(d("225")))
	assert.True(t, got.Balance.Equal(d("225")))
}

func TestBooking_Invariants(t *testing.T) {
	inputs := []BookingInput{
		{AdultPrice: d("1499.99"), TotalAdults: 3, InfantPrice: d("10.5"), TotalInfants: 2, DiscountPercentage: d("7.5"), AdvancePayment: d("1000")},
		{AdultPrice: d("0"), TotalAdults: 0},
		{AdultPrice: d("333.33"), TotalAdults: 1, ChildPrice: d("111.11"), TotalChildren: 4, DiscountPercentage: d("33.333"), AdvancePayment: d("5000")},
		{AdultPrice: d("80"), TotalAdults: 1, DiscountPercentage: d("100")},
	}

	for _, in := range inputs {
		got := Booking(in)
		sum := got.TotalAdultPrice.Add(got.TotalChildPrice).Add(got.TotalInfantPrice)
		assert.True(t, got.TotalPrice.Equal(sum.Sub(got.DiscountAmount)))
		assert.True(t, got.Balance.Equal(got.TotalPrice.Sub(in.AdvancePayment)))
		assert.True(t, got.PayableAmount.Equal(got.TotalPrice))
		assert.LessOrEqual(t, got.DiscountAmount.Exponent(), int32(0))
		assert.GreaterOrEqual(t, got.DiscountAmount.Exponent(), int32(-2))
	}
}

func TestQuickBookingDues(t *testing.T) {
	tests := []struct {
		name    string
		budget  *decimal.Decimal
		payment *decimal.Decimal
		prior   decimal.Decimal
		want    decimal.Decimal
	}{
		{"partial payment", dp("1000"), dp("400"), decimal.Zero, d("600")},
		{"overpayment floors at zero", dp("1000"), dp("1200"), decimal.Zero, d("0")},
		{"zero payment owes the full budget", dp("1000"), dp("0"), decimal.Zero, d("1000")},
		{"missing payment keeps prior", dp("1000"), nil, d("250"), d("250")},
		{"missing budget keeps prior", nil, dp("10"), d("5"), d("5")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(QuickBookingDues(tt.budget, tt.payment, tt.prior)))
		})
	}
}

func TestQuickBookingPaymentStatus(t *testing.T) {
	assert.Equal(t, PaymentStatusUnpaid, QuickBookingPaymentStatus(d("0"), d("500")))
	assert.Equal(t, PaymentStatusFullyPaid, QuickBookingPaymentStatus(d("500"), d("0")))
	assert.Equal(t, PaymentStatusPartiallyPaid, QuickBookingPaymentStatus(d("100"), d("400")))
	assert.True(t, QuickBookingTotal(d("100"), d("400")).Equal(d("500")))
}

func TestVisaTotalFee(t *testing.T) {
	assert.True(t, VisaTotalFee(d("100.50"), d("200"), d("49.50")).Equal(d("350")))
}
