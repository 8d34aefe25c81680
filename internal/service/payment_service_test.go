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

func TestPaymentStatusFlow(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPaymentService(env.factory, env.publisher, nil, env.log)

	agency := env.addUser(t, access.RoleAgencyAdmin, nil)
	super := env.addUser(t, access.RoleSuperAdmin, nil)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		p, err := svc.Create(bg, agency, &dto.PaymentRequest{
			PaymentAmount: decimal.NewFromInt(int64(1000 * (i + 1))),
			PaymentMode:   "upi",
			NoOfTravelers: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, "inprocess", p.Status)
		ids = append(ids, p.Id)
	}

	t.Run("only superadmin changes status", func(t *testing.T) {
		_, err := svc.UpdateStatus(bg, agency, ids[2], &dto.PaymentStatusRequest{Status: "completed"})
		requireKind(t, err, serverutils.ErrForbidden)

		_, err = svc.BulkUpdateStatus(bg, agency, &dto.BulkPaymentStatusRequest{PaymentIds: ids, Status: "completed"})
		requireKind(t, err, serverutils.ErrForbidden)
	})

	t.Run("single update stamps processor", func(t *testing.T) {
		res, err := svc.UpdateStatus(bg, super, ids[2], &dto.PaymentStatusRequest{Status: "rejected", Notes: "bad reference"})
		require.NoError(t, err)
		assert.Equal(t, "rejected", res.Status)
		require.NotNil(t, res.ProcessedBy)
		assert.Equal(t, super, *res.ProcessedBy)
		assert.NotNil(t, res.ProcessedAt)
	})

	t.Run("bulk skips rows not in process", func(t *testing.T) {
		res, err := svc.BulkUpdateStatus(bg, super, &dto.BulkPaymentStatusRequest{PaymentIds: ids, Status: "completed"})
		require.NoError(t, err)
		assert.Equal(t, 3, res.Requested)
		assert.Equal(t, int64(2), res.Updated)

		rejected, err := svc.Get(bg, agency, ids[2])
		require.NoError(t, err)
		assert.Equal(t, "rejected", rejected.Status)
	})

	t.Run("terminal payments cannot move", func(t *testing.T) {
		_, err := svc.UpdateStatus(bg, super, ids[0], &dto.PaymentStatusRequest{Status: "rejected"})
		requireKind(t, err, serverutils.ErrValidation)
	})

	t.Run("history is scoped to payer", func(t *testing.T) {
		mine, err := svc.MyHistory(bg, agency, &dto.PaymentListQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), mine.TotalCount)

		superHistory, err := svc.MyHistory(bg, super, &dto.PaymentListQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(0), superHistory.TotalCount)
	})
}

func TestBulkPaymentUpdateKeepsNotes(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPaymentService(env.factory, env.publisher, nil, env.log)
	agency := env.addUser(t, access.RoleAgencyAdmin, nil)
	super := env.addUser(t, access.RoleSuperAdmin, nil)

	newPayment := func(notes string) uuid.UUID {
		p, err := svc.Create(bg, agency, &dto.PaymentRequest{
			PaymentAmount: decimal.NewFromInt(500),
			PaymentMode:   "cash",
			NoOfTravelers: 1,
			Notes:         notes,
		})
		require.NoError(t, err)
		return p.Id
	}
	kept := newPayment("paid at counter")
	replaced := newPayment("paid at counter")

	_, err := svc.BulkUpdateStatus(bg, super, &dto.BulkPaymentStatusRequest{PaymentIds: []uuid.UUID{kept}, Status: "completed"})
	require.NoError(t, err)
	_, err = svc.BulkUpdateStatus(bg, super, &dto.BulkPaymentStatusRequest{PaymentIds: []uuid.UUID{replaced}, Status: "completed", Notes: "verified"})
	require.NoError(t, err)

	tests := []struct {
		id    uuid.UUID
		notes string
	}{
		{kept, "paid at counter"},
		{replaced, "verified"},
	}
	for _, tt := range tests {
		t.Run(tt.notes, func(t *testing.T) {
			got, err := svc.Get(bg, agency, tt.id)
			require.NoError(t, err)
			assert.Equal(t, "completed", got.Status)
			assert.Equal(t, tt.notes, got.Notes)
		})
	}
}
