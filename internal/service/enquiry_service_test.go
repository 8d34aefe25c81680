package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/pkg/access"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBus struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (b *recordingBus) Publish(_ context.Context, payload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.payloads = append(b.payloads, payload)
	return nil
}

func TestAPIKeyIntake(t *testing.T) {
	env := newTestEnv(t)
	bus := &recordingBus{}
	svc := NewEnquiryService(env.factory, bus, env.publisher, nil, env.log)

	agency := env.addUser(t, access.RoleAgencyAdmin, nil)
	accountant := env.addUser(t, access.RoleAccountant, &agency)
	other := env.addUser(t, access.RoleAgencyAdmin, nil)

	created, err := svc.CreateKey(bg, agency, &dto.APIKeyRequest{Name: "Website"})
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{40}$`, created.Key)
	assert.True(t, created.IsActive)

	key, err := svc.Authenticate(bg, created.Key)
	require.NoError(t, err)
	require.NotNil(t, key)
	assert.Equal(t, agency, key.UserId)
	assert.NotNil(t, key.LastUsed)

	unknown, err := svc.Authenticate(bg, "deadbeef")
	require.NoError(t, err)
	assert.Nil(t, unknown)

	contact, err := svc.SubmitContact(bg, key, &dto.ContactRequest{
		Name:    "Visitor",
		Email:   "Visitor@Example.com",
		Message: "Need a Hajj quote",
	})
	require.NoError(t, err)
	assert.Equal(t, "visitor@example.com", contact.Email)

	require.Len(t, bus.payloads, 1)
	var msg dto.ContactSubmittedMessage
	require.NoError(t, json.Unmarshal(bus.payloads[0], &msg))
	assert.Equal(t, contact.Id, msg.ContactId)
	assert.Equal(t, created.Id, msg.ApiKeyId)

	t.Run("contacts follow the key owner", func(t *testing.T) {
		own, err := svc.ListContacts(bg, agency, &dto.ContactListQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), own.TotalCount)

		viaAccountant, err := svc.ListContacts(bg, accountant, &dto.ContactListQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), viaAccountant.TotalCount)

		foreign, err := svc.ListContacts(bg, other, &dto.ContactListQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(0), foreign.TotalCount)

		_, err = svc.GetContact(bg, other, contact.Id)
		requireKind(t, err, serverutils.ErrNotFound)
	})

	t.Run("toggled key stops authenticating", func(t *testing.T) {
		toggled, err := svc.ToggleKey(bg, agency, created.Id)
		require.NoError(t, err)
		assert.False(t, toggled.IsActive)

		key, err := svc.Authenticate(bg, created.Key)
		require.NoError(t, err)
		assert.Nil(t, key)
	})

	t.Run("keys are private to their owner", func(t *testing.T) {
		_, err := svc.ToggleKey(bg, other, created.Id)
		requireKind(t, err, serverutils.ErrNotFound)
	})
}

func TestLeadStatusAppendsHistory(t *testing.T) {
	env := newTestEnv(t)
	svc := NewLeadService(env.factory, nil, env.log)
	agency := env.addUser(t, access.RoleAgencyAdmin, nil)

	lead, err := svc.Create(bg, agency, &dto.LeadRequest{Name: "Salma", MobileNumber: "9000000002"})
	require.NoError(t, err)
	assert.Equal(t, "NEW", lead.Status)

	res, err := svc.UpdateStatus(bg, agency, lead.Id, &dto.LeadStatusRequest{Status: "CONTACTED"})
	require.NoError(t, err)
	assert.Equal(t, "CONTACTED", res.Status)
	require.Len(t, res.History, 1)
	assert.Contains(t, res.History[0].Note, "Status changed from")

	res, err = svc.UpdateStatus(bg, agency, lead.Id, &dto.LeadStatusRequest{Status: "FOLLOW_UP", Note: "call on Friday"})
	require.NoError(t, err)
	require.Len(t, res.History, 2)

	got, err := svc.Get(bg, agency, lead.Id)
	require.NoError(t, err)
	assert.Len(t, got.History, 2)
}
