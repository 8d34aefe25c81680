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

func samplePackage() *dto.PackageRequest {
	return &dto.PackageRequest{
		Name:          "Deluxe Umrah 15 Days",
		PackageType:   "deluxe_umrah",
		Destination:   "Makkah",
		DurationDays:  15,
		Price:         decimal.RequireFromString("95000"),
		DiscountPrice: decimal.RequireFromString("90000"),
	}
}

func TestPackageCatalog(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPackageService(env.factory, nil, nil, env.log)

	agency := env.addUser(t, access.RoleAgencyAdmin, nil)
	freelancer := env.addUser(t, access.RoleFreelancer, &agency)
	outsider := env.addUser(t, access.RoleFreelancer, nil)
	other := env.addUser(t, access.RoleAgencyAdmin, nil)

	t.Run("freelancers cannot create", func(t *testing.T) {
		_, err := svc.Create(bg, freelancer, samplePackage())
		requireKind(t, err, serverutils.ErrForbidden)
	})

	t.Run("discount above price is rejected", func(t *testing.T) {
		req := samplePackage()
		req.DiscountPrice = decimal.RequireFromString("100000")
		_, err := svc.Create(bg, agency, req)
		requireKind(t, err, serverutils.ErrValidation)
	})

	req := samplePackage()
	req.AssignedTo = &freelancer
	pkg, err := svc.Create(bg, agency, req)
	require.NoError(t, err)

	for _, tc := range []struct {
		name    string
		viewer  uuid.UUID
		visible bool
	}{
		{"creator", agency, true},
		{"assignee", freelancer, true},
		{"unassigned freelancer", outsider, false},
		{"other agency", other, false},
	} {
		t.Run("visible to "+tc.name, func(t *testing.T) {
			_, err := svc.Get(bg, tc.viewer, pkg.Id)
			if tc.visible {
				assert.NoError(t, err)
			} else {
				requireKind(t, err, serverutils.ErrNotFound)
			}
		})
	}

	t.Run("assignee cannot edit", func(t *testing.T) {
		_, err := svc.Update(bg, freelancer, pkg.Id, samplePackage())
		require.Error(t, err)
	})
}
