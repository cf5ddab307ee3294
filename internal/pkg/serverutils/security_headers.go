// FILE: internal/pkg/serverutils/security_headers.go
package serverutils

import "github.com/gofiber/fiber/v2"

// SecurityHeadersMiddleware attaches the never-cache and never-sniff
// directives every authorization response must carry.
func SecurityHeadersMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Set(fiber.HeaderCacheControl, "no-store")
		ctx.Set(fiber.HeaderXContentTypeOptions, "nosniff")
		return ctx.Next()
	}
}
