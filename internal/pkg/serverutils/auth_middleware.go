// FILE: internal/pkg/serverutils/auth_middleware.go
package serverutils

import (
	"context"
	"regexp"
	"strings"

	"idea-garden-be/internal/entity"

	"github.com/gofiber/fiber/v2"
)

// PrincipalKey is the ctx.Locals slot holding the verified caller.
const PrincipalKey = "principal"

// TokenVerifier resolves a bearer token to its principal. Implemented by the
// auth service.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*entity.Principal, error)
}

var bearerRe = regexp.MustCompile(`(?i)^bearer\s+(.+)$`)

// ExtractBearerToken pulls the token out of an Authorization header value.
// Wrong scheme, no header, or an empty token all yield "".
func ExtractBearerToken(header string) string {
	m := bearerRe.FindStringSubmatch(header)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// NewAuthMiddleware verifies the bearer credential on every request and
// stashes the principal in locals. Responses are 401 with no-store/nosniff
// directives, never a leak of upstream detail.
func NewAuthMiddleware(verifier TokenVerifier) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Set(fiber.HeaderCacheControl, "no-store")
		ctx.Set(fiber.HeaderXContentTypeOptions, "nosniff")

		token := ExtractBearerToken(ctx.Get(fiber.HeaderAuthorization))
		if token == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing or invalid Authorization header"))
		}

		principal, err := verifier.VerifyToken(ctx.Context(), token)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid or expired token"))
		}

		ctx.Locals(PrincipalKey, principal)
		return ctx.Next()
	}
}

// PrincipalFromCtx returns the verified caller set by NewAuthMiddleware.
func PrincipalFromCtx(ctx *fiber.Ctx) *entity.Principal {
	principal, _ := ctx.Locals(PrincipalKey).(*entity.Principal)
	return principal
}
