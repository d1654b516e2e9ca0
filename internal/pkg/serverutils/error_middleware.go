package serverutils

import (
	"child-screening-be/internal/pkg/apperror"
	"child-screening-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts taxonomy errors escaping a handler
// into HTTP responses. Storage errors stay opaque to the client; the
// wrapped cause goes to the log only.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		kind, ok := apperror.KindOf(err)
		if !ok {
			log.Error("http", "unhandled error", map[string]interface{}{
				"path":  ctx.Path(),
				"error": err.Error(),
			})
			return ctx.Status(fiber.StatusInternalServerError).
				JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
		}

		switch kind {
		case apperror.KindValidation, apperror.KindConflict, apperror.KindAuth:
			return ctx.Status(fiber.StatusBadRequest).
				JSON(ErrorResponse(fiber.StatusBadRequest, err.Error()))
		case apperror.KindNotFound:
			return ctx.Status(fiber.StatusNotFound).
				JSON(ErrorResponse(fiber.StatusNotFound, err.Error()))
		default:
			log.Error("http", "storage error", map[string]interface{}{
				"path":  ctx.Path(),
				"error": err.Error(),
			})
			return ctx.Status(fiber.StatusInternalServerError).
				JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
		}
	}
}
