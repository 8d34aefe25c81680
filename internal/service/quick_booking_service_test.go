package service

import (
	"testing"

	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/pkg/access"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuickBookingService(env *testEnv) IQuickBookingService {
	return NewQuickBookingService(env.factory, nil, nil, env.publisher, nil, env.log)
}

func TestQuickBookingDues(t *testing.T) {
	tests := []struct {
		name    string
		budget  *decimal.Decimal
		payment *decimal.Decimal
		dues    string
		status  string
	}{
		{"partial", ptr(decimal.RequireFromString("50000")), ptr(decimal.RequireFromString("20000")), "30000", "Partially Paid"},
		{"paid in full", ptr(decimal.RequireFromString("1000")), ptr(decimal.RequireFromString("1000")), "0", "Fully Paid"},
		{"no payment", ptr(decimal.RequireFromString("1000")), nil, "0", "Unpaid"},
	}

	env := newTestEnv(t)
	svc := newQuickBookingService(env)
	agency := env.addUser(t, access.RoleAgencyAdmin, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Create(bg, agency, &dto.QuickBookingRequest{
				FirstName:         "Ravi",
				Mobile:            "9000000001",
				NumberOfTravelers: 2,
				Budget:            tt.budget,
				Payment:           tt.payment,
			})
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.dues).Equal(res.Dues), "dues %s", res.Dues)
			assert.Equal(t, tt.status, res.PaymentStatus)
			assert.Regexp(t, `^QB[0-9A-F]{8}$`, res.QbNumber)
		})
	}

	t.Run("payment above budget is rejected", func(t *testing.T) {
		_, err := svc.Create(bg, agency, &dto.QuickBookingRequest{
			FirstName:         "Ravi",
			Mobile:            "9000000001",
			NumberOfTravelers: 2,
			Budget:            ptr(decimal.RequireFromString("1000")),
			Payment:           ptr(decimal.RequireFromString("1500")),
		})
		requireKind(t, err, serverutils.ErrValidation)
	})
}

func TestQuickBookingConvertOnce(t *testing.T) {
	env := newTestEnv(t)
	svc := newQuickBookingService(env)
	bookings := newBookingService(env)
	agency := env.addUser(t, access.RoleAgencyAdmin, nil)

	qb, err := svc.Create(bg, agency, &dto.QuickBookingRequest{
		FirstName:         "Ravi",
		Email:             "ravi@example.com",
		Mobile:            "9000000001",
		NumberOfTravelers: 3,
	})
	require.NoError(t, err)

	converted, err := svc.Convert(bg, agency, qb.Id, []byte(`{"adult_price": "1000", "package_name": "Umrah Classic"}`))
	require.NoError(t, err)
	assert.Regexp(t, `^BK[0-9A-F]{8}$`, converted.BookingNumber)

	booking, err := bookings.Get(bg, agency, converted.BookingId)
	require.NoError(t, err)
	assert.Equal(t, 3, booking.TotalAdults)
	assert.Equal(t, "Umrah Classic", booking.PackageName)
	assert.True(t, decimal.RequireFromString("3000").Equal(booking.TotalPrice))

	after, err := svc.Get(bg, agency, qb.Id)
	require.NoError(t, err)
	assert.True(t, after.IsConvertedToFullBooking)
	require.NotNil(t, after.ConvertedBooking)
	assert.Equal(t, converted.BookingId, *after.ConvertedBooking)

	_, err = svc.Convert(bg, agency, qb.Id, nil)
	requireKind(t, err, serverutils.ErrConflict)
	assert.Equal(t, 400, serverutils.StatusCode(err))
}

func TestQuickBookingConvertRollsBackOnInvalidOverrides(t *testing.T) {
	env := newTestEnv(t)
	svc := newQuickBookingService(env)
	agency := env.addUser(t, access.RoleAgencyAdmin, nil)

	// no email on the quick booking, so the derived booking request is invalid
	qb, err := svc.Create(bg, agency, &dto.QuickBookingRequest{
		FirstName:         "Ravi",
		Mobile:            "9000000001",
		NumberOfTravelers: 1,
	})
	require.NoError(t, err)

	_, err = svc.Convert(bg, agency, qb.Id, nil)
	requireKind(t, err, serverutils.ErrValidation)

	after, err := svc.Get(bg, agency, qb.Id)
	require.NoError(t, err)
	assert.False(t, after.IsConvertedToFullBooking)
}

func TestQuickBookingConvertKeepsCustomerFields(t *testing.T) {
	env := newTestEnv(t)
	svc := newQuickBookingService(env)
	bookings := newBookingService(env)
	agency := env.addUser(t, access.RoleAgencyAdmin, nil)

	qb, err := svc.Create(bg, agency, &dto.QuickBookingRequest{
		FirstName:         "Ravi",
		LastName:          "Kumar",
		Email:             "ravi@example.com",
		Mobile:            "9000000001",
		TravelMonth:       "March",
		NumberOfTravelers: 3,
	})
	require.NoError(t, err)

	body := []byte(`{
		"first_name": "Mallory", "last_name": "X", "email": "mallory@example.com",
		"mobile_no": "9999999999", "travel_month": "June",
		"total_adults": 9, "total_children": 4, "total_infants": 2,
		"adult_price": "100", "child_price": "50", "infant_price": "10"
	}`)
	converted, err := svc.Convert(bg, agency, qb.Id, body)
	require.NoError(t, err)

	booking, err := bookings.Get(bg, agency, converted.BookingId)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", booking.FirstName)
	assert.Equal(t, "Kumar", booking.LastName)
	assert.Equal(t, "ravi@example.com", booking.Email)
	assert.Equal(t, "9000000001", booking.MobileNo)
	assert.Equal(t, "March", booking.TravelMonth)
	assert.Equal(t, 3, booking.TotalAdults)
	assert.Equal(t, 0, booking.TotalChildren)
	assert.Equal(t, 0, booking.TotalInfants)
	assert.True(t, decimal.RequireFromString("300").Equal(booking.TotalPrice), "total %s", booking.TotalPrice)
}
