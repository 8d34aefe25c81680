package memory

import (
	"time"

	"travel-backoffice-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// APIKeyCache keeps recently resolved API keys so the public intake does not
// hit the database on every request.
type APIKeyCache struct {
	cache *cache.Cache
}

func NewAPIKeyCache(ttl time.Duration) *APIKeyCache {
	return &APIKeyCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *APIKeyCache) Save(key *entity.APIKey) {
	copied := *key
	c.cache.Set(key.Key, &copied, cache.DefaultExpiration)
}

func (c *APIKeyCache) Get(raw string) (*entity.APIKey, bool) {
	if x, found := c.cache.Get(raw); found {
		copied := *x.(*entity.APIKey)
		return &copied, true
	}
	return nil, false
}

func (c *APIKeyCache) Delete(raw string) {
	c.cache.Delete(raw)
}
