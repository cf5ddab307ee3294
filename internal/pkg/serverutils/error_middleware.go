// FILE: internal/pkg/serverutils/error_middleware.go
package serverutils

import (
	"errors"

	"idea-garden-be/internal/mapper"
	"idea-garden-be/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates the error taxonomy into HTTP statuses and
// runs every failure through the presenter. Classification is preserved:
// upstream statuses pass through verbatim for programmatic handling.
func ErrorHandlerMiddleware(appSlug string, baseURL string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		status := statusFor(err)
		return ctx.Status(status).JSON(ErrorResponse(status, mapper.FormatError(err, appSlug, baseURL)))
	}
}

func statusFor(err error) int {
	var upstream *apperrors.UpstreamError
	var format *apperrors.FormatError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, apperrors.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, apperrors.ErrStateMismatch):
		return fiber.StatusForbidden
	case errors.Is(err, apperrors.ErrExchangeFailed):
		return fiber.StatusBadRequest
	case errors.As(err, &upstream):
		return upstream.Status
	case errors.As(err, &format):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}
