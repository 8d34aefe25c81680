package memory

import (
	"context"
	"testing"
	"time"

	"travel-backoffice-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyCacheReturnsCopies(t *testing.T) {
	c := NewAPIKeyCache(time.Minute)
	key := &entity.APIKey{Id: uuid.New(), Key: "abc", IsActive: true}
	c.Save(key)

	got, ok := c.Get("abc")
	require.True(t, ok)
	got.IsActive = false

	again, _ := c.Get("abc")
	assert.True(t, again.IsActive)

	c.Delete("abc")
	_, ok = c.Get("abc")
	assert.False(t, ok)
}

func TestTokenBlacklist(t *testing.T) {
	ctx := context.Background()
	b := NewTokenBlacklist()

	require.NoError(t, b.Revoke(ctx, "jti-1", time.Minute))
	require.NoError(t, b.Revoke(ctx, "jti-expired", 0))

	revoked, err := b.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, _ = b.IsRevoked(ctx, "jti-expired")
	assert.False(t, revoked)
}
