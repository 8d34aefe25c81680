package serverutils

import (
	"context"
	"time"

	"travel-backoffice-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const (
	APIKeyHeader = "X-API-Key"
	LocalAPIKey  = "api_key"
)

type APIKeyAuthenticator interface {
	Authenticate(ctx context.Context, key string) (*entity.APIKey, error)
}

// KeyRateLimiter hands out one token bucket per API key.
type KeyRateLimiter struct {
	limiters *cache.Cache
	rps      rate.Limit
	burst    int
}

func NewKeyRateLimiter(rps float64, burst int) *KeyRateLimiter {
	return &KeyRateLimiter{
		limiters: cache.New(30*time.Minute, 10*time.Minute),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (l *KeyRateLimiter) Allow(key string) bool {
	if l == nil || l.rps <= 0 {
		return true
	}
	if v, ok := l.limiters.Get(key); ok {
		return v.(*rate.Limiter).Allow()
	}
	lim := rate.NewLimiter(l.rps, l.burst)
	if err := l.limiters.Add(key, lim, cache.DefaultExpiration); err != nil {
		v, _ := l.limiters.Get(key)
		return v.(*rate.Limiter).Allow()
	}
	return lim.Allow()
}

// APIKeyMiddleware resolves X-API-Key to an active key and stores it in Locals.
func APIKeyMiddleware(auth APIKeyAuthenticator, limiter *KeyRateLimiter) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		raw := ctx.Get(APIKeyHeader)
		if raw == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "API key is required"))
		}

		key, err := auth.Authenticate(ctx.UserContext(), raw)
		if err != nil {
			return err
		}
		if key == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid API key"))
		}

		if !limiter.Allow(key.Key) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(ErrorResponse(fiber.StatusTooManyRequests, "Rate limit exceeded"))
		}

		ctx.Locals(LocalAPIKey, key)
		return ctx.Next()
	}
}

func CurrentAPIKey(ctx *fiber.Ctx) *entity.APIKey {
	key, _ := ctx.Locals(LocalAPIKey).(*entity.APIKey)
	return key
}
