package service

import (
	"testing"

	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/pkg/access"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBooking() *dto.BookingRequest {
	return &dto.BookingRequest{
		FirstName:          "Asha",
		Email:              "Asha@Example.com",
		MobileNo:           "9000000000",
		AdultPrice:         decimal.RequireFromString("1000"),
		ChildPrice:         decimal.RequireFromString("500"),
		TotalAdults:        2,
		TotalChildren:      1,
		DiscountPercentage: decimal.RequireFromString("10"),
		AdvancePayment:     decimal.RequireFromString("500"),
		Travelers: []dto.TravelerRequest{
			{TravelerType: "adult", Name: "Asha"},
		},
	}
}

func newBookingService(env *testEnv) IBookingService {
	return NewBookingService(env.factory, nil, nil, env.publisher, nil, env.log)
}

func TestBookingCreateComputesTotals(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)
	agency := env.addUser(t, access.RoleAgencyAdmin, nil)

	res, err := svc.Create(bg, agency, sampleBooking())
	require.NoError(t, err)

	assert.Regexp(t, `^BK[0-9A-F]{8}$`, res.BookingNumber)
	assert.Equal(t, "pending", res.Status)
	assert.Equal(t, "asha@example.com", res.Email)
	assert.True(t, decimal.RequireFromString("2500").Equal(res.Subtotal))
	assert.True(t, decimal.RequireFromString("250").Equal(res.DiscountAmount))
	assert.True(t, decimal.RequireFromString("2250").Equal(res.TotalPrice))
	assert.True(t, decimal.RequireFromString("1750").Equal(res.Balance))
	assert.Len(t, res.Travelers, 1)
}

func TestBookingVisibility(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)

	agency := env.addUser(t, access.RoleAgencyAdmin, nil)
	accountant := env.addUser(t, access.RoleAccountant, &agency)
	other := env.addUser(t, access.RoleAgencyAdmin, nil)
	super := env.addUser(t, access.RoleSuperAdmin, nil)

	created, err := svc.Create(bg, agency, sampleBooking())
	require.NoError(t, err)

	tests := []struct {
		name    string
		viewer  uuid.UUID
		visible bool
	}{
		{"owner", agency, true},
		{"accountant of owner", accountant, true},
		{"superadmin", super, true},
		{"unrelated agency", other, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Get(bg, tt.viewer, created.Id)
			if tt.visible {
				assert.NoError(t, err)
			} else {
				requireKind(t, err, serverutils.ErrNotFound)
			}
		})
	}
}

func TestBookingLockedAfterCancel(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)
	agency := env.addUser(t, access.RoleAgencyAdmin, nil)

	created, err := svc.Create(bg, agency, sampleBooking())
	require.NoError(t, err)

	cancelled, err := svc.Cancel(bg, agency, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)

	_, err = svc.Update(bg, agency, created.Id, sampleBooking())
	requireKind(t, err, serverutils.ErrValidation)

	err = svc.Delete(bg, agency, created.Id)
	requireKind(t, err, serverutils.ErrValidation)

	_, err = svc.Confirm(bg, agency, created.Id)
	requireKind(t, err, serverutils.ErrValidation)
}

func TestBookingCancelAfterConfirm(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)
	agency := env.addUser(t, access.RoleAgencyAdmin, nil)

	first, err := svc.Create(bg, agency, sampleBooking())
	require.NoError(t, err)
	_, err = svc.Confirm(bg, agency, first.Id)
	require.NoError(t, err)
	cancelled, err := svc.Cancel(bg, agency, first.Id)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)

	second, err := svc.Create(bg, agency, sampleBooking())
	require.NoError(t, err)
	_, err = svc.Confirm(bg, agency, second.Id)
	require.NoError(t, err)
	_, err = svc.Complete(bg, agency, second.Id)
	require.NoError(t, err)
	_, err = svc.Cancel(bg, agency, second.Id)
	requireKind(t, err, serverutils.ErrValidation)
}
