package serverutils

import (
	"errors"
	"fmt"

	"travel-backoffice-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts returned errors and panics into the JSON envelope.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("HTTP", "panic recovered", map[string]interface{}{
					"path":  ctx.Path(),
					"error": fmt.Sprint(r),
				})
				err = ctx.Status(fiber.StatusInternalServerError).
					JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
			}
		}()

		if err = ctx.Next(); err == nil {
			return nil
		}
		return WriteError(ctx, log, err)
	}
}

// WriteError renders err with its mapped status and logs server-side failures.
func WriteError(ctx *fiber.Ctx, log logger.ILogger, err error) error {
	code := StatusCode(err)
	if code >= fiber.StatusInternalServerError && log != nil {
		log.Error("HTTP", "request failed", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"error":  err.Error(),
		})
	}

	var appErr *AppError
	if errors.As(err, &appErr) && len(appErr.Fields) > 0 {
		return ctx.Status(code).JSON(ValidationErrorResponse(appErr.Message, appErr.Fields))
	}
	return ctx.Status(code).JSON(ErrorResponse(code, PublicMessage(err)))
}
