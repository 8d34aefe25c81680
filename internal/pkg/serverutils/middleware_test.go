package serverutils

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/pkg/logger"
	"travel-backoffice-be/pkg/access"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type staticBlacklist map[string]bool

func (b staticBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	return b[jti], nil
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func accessClaims(userID uuid.UUID, role access.Role, jti string) jwt.MapClaims {
	return jwt.MapClaims{
		"user_id": userID.String(),
		"role":    string(role),
		"jti":     jti,
		"type":    "access",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
}

func TestJwtMiddleware(t *testing.T) {
	userID := uuid.New()
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	auth := NewJwtMiddleware(JwtConfig{Secret: testSecret, Blacklist: staticBlacklist{"revoked": true}})
	app.Get("/me", auth, func(ctx *fiber.Ctx) error {
		return ctx.SendString(CurrentUserID(ctx).String())
	})
	app.Get("/admin", auth, RequireRoles(access.RoleSuperAdmin), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusNoContent)
	})

	refresh := accessClaims(userID, access.RoleAgencyAdmin, "r1")
	refresh["type"] = "refresh"

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"missing header", "/me", "", fiber.StatusUnauthorized},
		{"garbage token", "/me", "Bearer nope", fiber.StatusUnauthorized},
		{"refresh token rejected", "/me", "Bearer " + signToken(t, refresh), fiber.StatusUnauthorized},
		{"revoked jti", "/me", "Bearer " + signToken(t, accessClaims(userID, access.RoleAgencyAdmin, "revoked")), fiber.StatusUnauthorized},
		{"valid token", "/me", "Bearer " + signToken(t, accessClaims(userID, access.RoleAgencyAdmin, "ok")), fiber.StatusOK},
		{"role gate denies", "/admin", "Bearer " + signToken(t, accessClaims(userID, access.RoleAgencyAdmin, "ok")), fiber.StatusForbidden},
		{"role gate allows", "/admin", "Bearer " + signToken(t, accessClaims(userID, access.RoleSuperAdmin, "ok")), fiber.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

type mapAuthenticator map[string]*entity.APIKey

func (m mapAuthenticator) Authenticate(_ context.Context, raw string) (*entity.APIKey, error) {
	return m[raw], nil
}

func TestAPIKeyMiddleware(t *testing.T) {
	key := &entity.APIKey{Id: uuid.New(), UserId: uuid.New(), Key: "good", IsActive: true}
	app := fiber.New()
	app.Post("/intake", APIKeyMiddleware(mapAuthenticator{"good": key}, NewKeyRateLimiter(0.01, 2)), func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse("ok", CurrentAPIKey(ctx).UserId))
	})

	call := func(header string) int {
		req := httptest.NewRequest("POST", "/intake", nil)
		if header != "" {
			req.Header.Set(APIKeyHeader, header)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusUnauthorized, call(""))
	assert.Equal(t, fiber.StatusUnauthorized, call("bad"))

	// burst of two, then throttled
	assert.Equal(t, fiber.StatusOK, call("good"))
	assert.Equal(t, fiber.StatusOK, call("good"))
	assert.Equal(t, fiber.StatusTooManyRequests, call("good"))
}

func TestWriteErrorShapes(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	app.Get("/field", func(*fiber.Ctx) error { return NewFieldError("email", "Email is taken.") })
	app.Get("/conflict", func(*fiber.Ctx) error { return NewConflictError("Already converted") })
	app.Get("/missing", func(*fiber.Ctx) error { return NewNotFoundError("Booking not found") })
	app.Get("/boom", func(*fiber.Ctx) error { return NewInternalError("Failed", context.DeadlineExceeded) })

	tests := []struct {
		path string
		want int
	}{
		{"/field", fiber.StatusBadRequest},
		{"/conflict", fiber.StatusBadRequest},
		{"/missing", fiber.StatusNotFound},
		{"/boom", fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body)
		})
	}
}
