package memory

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// TokenBlacklist is the in-process fallback used when Redis is unreachable.
type TokenBlacklist struct {
	cache *cache.Cache
}

func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{cache: cache.New(time.Hour, 10*time.Minute)}
}

func (b *TokenBlacklist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b.cache.Set(jti, struct{}{}, ttl)
	return nil
}

func (b *TokenBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, found := b.cache.Get(jti)
	return found, nil
}
