// FILE: internal/pkg/serverutils/response.go
package serverutils

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Code:    fiber.StatusOK,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) Response[any] {
	return Response[any]{
		Code:    code,
		Message: message,
	}
}

var validate = validator.New()

// ValidateRequest checks the struct's `validate` tags; a violation becomes a
// 400 carried as a fiber.Error for the error-handler middleware.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var sb strings.Builder
		for i, fieldErr := range err.(validator.ValidationErrors) {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(fieldErr.Field())
			sb.WriteString(" failed on ")
			sb.WriteString(fieldErr.Tag())
		}
		return fiber.NewError(fiber.StatusBadRequest, sb.String())
	}
	return nil
}
