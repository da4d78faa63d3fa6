package serverutils

import (
	"errors"
	"log"

	"roombuddy-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates errors bubbling out of handlers into
// JSON responses. Typed errors keep their status and meta payload, fiber
// errors keep their code, everything else becomes a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if appErr, ok := apperror.FromError(err); ok {
			status := apperror.HTTPStatus(appErr.Kind)
			if status == fiber.StatusInternalServerError {
				log.Printf("[ERROR] %s %s: %v", ctx.Method(), ctx.Path(), err)
			}
			return ctx.Status(status).JSON(
				ErrorResponseWithMeta(status, appErr.Message, string(appErr.Kind), appErr.Meta),
			)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Printf("[ERROR] %s %s: %v", ctx.Method(), ctx.Path(), err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(
			ErrorResponse(fiber.StatusInternalServerError, "internal server error"),
		)
	}
}
