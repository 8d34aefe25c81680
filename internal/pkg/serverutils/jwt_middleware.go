package serverutils

import (
	"context"
	"errors"
	"strings"
	"time"

	"travel-backoffice-be/pkg/access"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	LocalUserID   = "user_id"
	LocalRole     = "role"
	LocalTokenJTI = "token_jti"
	LocalTokenExp = "token_exp"
)

// TokenBlacklist reports access tokens revoked by logout.
type TokenBlacklist interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type JwtConfig struct {
	Secret    string
	Blacklist TokenBlacklist
}

// ParseAccessToken validates an HS256 access token and returns its claims.
func ParseAccessToken(tokenStr, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	if typ, _ := claims["type"].(string); typ != "access" {
		return nil, errors.New("invalid token type")
	}
	return claims, nil
}

func NewJwtMiddleware(cfg JwtConfig) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
		}

		claims, err := ParseAccessToken(authHeader[7:], cfg.Secret)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
		}

		userID, _ := claims["user_id"].(string)
		role, _ := claims["role"].(string)
		jti, _ := claims["jti"].(string)
		if userID == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid claims"))
		}

		if cfg.Blacklist != nil && jti != "" {
			revoked, err := cfg.Blacklist.IsRevoked(ctx.UserContext(), jti)
			if err != nil {
				return err
			}
			if revoked {
				return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Token has been revoked"))
			}
		}

		ctx.Locals(LocalUserID, userID)
		ctx.Locals(LocalRole, role)
		ctx.Locals(LocalTokenJTI, jti)
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			ctx.Locals(LocalTokenExp, exp.Time)
		}
		return ctx.Next()
	}
}

// RequireRoles rejects callers whose token role is not listed.
func RequireRoles(roles ...access.Role) fiber.Handler {
	allowed := make(map[access.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(ctx *fiber.Ctx) error {
		role, _ := ctx.Locals(LocalRole).(string)
		if !allowed[access.NormalizeRole(role)] {
			return ctx.Status(fiber.StatusForbidden).
				JSON(ErrorResponse(fiber.StatusForbidden, "You do not have permission to perform this action"))
		}
		return ctx.Next()
	}
}

// TokenExpiry returns the expiry of the current access token, if known.
func TokenExpiry(ctx *fiber.Ctx) (time.Time, bool) {
	exp, ok := ctx.Locals(LocalTokenExp).(time.Time)
	return exp, ok
}
