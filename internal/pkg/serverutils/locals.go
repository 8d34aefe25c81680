package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CurrentUserID reads the authenticated user id set by the JWT middleware.
func CurrentUserID(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals(LocalUserID).(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

// ParamUUID parses a path parameter as a UUID.
func ParamUUID(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, NewNotFoundError("Not found")
	}
	return id, nil
}
