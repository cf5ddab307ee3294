// FILE: internal/controller/auth_controller.go
package controller

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"time"

	"idea-garden-be/internal/dto"
	"idea-garden-be/internal/pkg/serverutils"
	"idea-garden-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	stateCookieName = "oauth_state"
	dataCookieName  = "oauth_data"
	cookieMaxAge    = 600 // seconds
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Redirect(ctx *fiber.Ctx) error
	Authorize(ctx *fiber.Ctx) error
	Callback(ctx *fiber.Ctx) error
	Token(ctx *fiber.Ctx) error
}

type authController struct {
	authService  service.IAuthService
	grantService service.IGrantService
}

func NewAuthController(authService service.IAuthService, grantService service.IGrantService) IAuthController {
	return &authController{
		authService:  authService,
		grantService: grantService,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Use(serverutils.SecurityHeadersMiddleware())
	h.Get("/github", c.Redirect)
	h.Get("/github/callback", c.Callback)
	h.Get("/authorize", c.Authorize)
	h.Post("/token", c.Token)
}

func (c *authController) setCorrelationCookie(ctx *fiber.Ctx, name, value string, maxAge int) {
	cookie := &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     c.authService.CallbackPath(),
		MaxAge:   maxAge,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if maxAge <= 0 {
		// Zero lifetime: consume the cookie now.
		cookie.MaxAge = -1
		cookie.Expires = time.Now().Add(-time.Hour)
	}
	ctx.Cookie(cookie)
}

func (c *authController) clearCorrelationCookies(ctx *fiber.Ctx) {
	c.setCorrelationCookie(ctx, stateCookieName, "", 0)
	c.setCorrelationCookie(ctx, dataCookieName, "", 0)
}

// Redirect starts the display flow: mint a state token, park it in the
// browser-held cookie, and hand the user to the GitHub App consent page.
// No server-side session store — the cookie is the whole correlation state.
func (c *authController) Redirect(ctx *fiber.Ctx) error {
	state := c.authService.GenerateState()
	c.setCorrelationCookie(ctx, stateCookieName, state, cookieMaxAge)
	return ctx.Redirect(c.authService.InstallURL(state), fiber.StatusFound)
}

// Authorize starts the protocol-client flow: same state cookie, plus the
// client's original request parked opaquely in a second cookie so the
// callback can replay it.
func (c *authController) Authorize(ctx *fiber.Ctx) error {
	pending := dto.PendingAuthRequest{
		ResponseType: ctx.Query("response_type"),
		ClientId:     ctx.Query("client_id"),
		RedirectUri:  ctx.Query("redirect_uri"),
		Scope:        ctx.Query("scope"),
		State:        ctx.Query("state"),
	}
	if err := serverutils.ValidateRequest(pending); err != nil {
		return err
	}

	encoded, err := json.Marshal(pending)
	if err != nil {
		return err
	}

	state := c.authService.GenerateState()
	c.setCorrelationCookie(ctx, stateCookieName, state, cookieMaxAge)
	c.setCorrelationCookie(ctx, dataCookieName, base64.StdEncoding.EncodeToString(encoded), cookieMaxAge)

	return ctx.Redirect(c.authService.AuthorizeURL(state), fiber.StatusFound)
}

// Callback verifies the state correlation and finishes whichever flow
// started it. The cookie is consumed on every exit path, success or failure.
func (c *authController) Callback(ctx *fiber.Ctx) error {
	code := ctx.Query("code")
	state := ctx.Query("state")

	if code == "" || state == "" {
		c.clearCorrelationCookies(ctx)
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Missing required parameters"))
	}

	cookieState := ctx.Cookies(stateCookieName)
	if cookieState == "" {
		c.clearCorrelationCookies(ctx)
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(fiber.StatusForbidden, "Missing state cookie"))
	}
	if cookieState != state {
		c.clearCorrelationCookies(ctx)
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(fiber.StatusForbidden, "State mismatch"))
	}

	pending := c.pendingRequest(ctx)
	c.clearCorrelationCookies(ctx)

	token, err := c.authService.Exchange(ctx.Context(), code)
	if err != nil {
		log.Printf("[Auth] ERROR - Code exchange failed: %v", err)
		if pending != nil {
			return c.redirectClientError(ctx, pending)
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Failed to exchange authorization code"))
	}

	if pending != nil {
		return c.completeClientAuthorization(ctx, pending, token)
	}

	return c.renderTokenPage(ctx, token)
}

// Token swaps a minted authorization code for the standard token response.
func (c *authController) Token(ctx *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Malformed token request")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	grant, err := c.grantService.Parse(req.Code)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid authorization code"))
	}

	return ctx.JSON(dto.TokenResponse{
		AccessToken: req.Code,
		TokenType:   "bearer",
		Scope:       grant.Scope,
	})
}

func (c *authController) pendingRequest(ctx *fiber.Ctx) *dto.PendingAuthRequest {
	raw := ctx.Cookies(dataCookieName)
	if raw == "" {
		return nil
	}
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var pending dto.PendingAuthRequest
	if err := json.Unmarshal(decoded, &pending); err != nil {
		return nil
	}
	if pending.RedirectUri == "" {
		return nil
	}
	return &pending
}

func (c *authController) redirectClientError(ctx *fiber.Ctx, pending *dto.PendingAuthRequest) error {
	target, err := url.Parse(pending.RedirectUri)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid redirect URI"))
	}
	q := target.Query()
	q.Set("error", "server_error")
	if pending.State != "" {
		q.Set("state", pending.State)
	}
	target.RawQuery = q.Encode()
	return ctx.Redirect(target.String(), fiber.StatusFound)
}

func (c *authController) completeClientAuthorization(ctx *fiber.Ctx, pending *dto.PendingAuthRequest, token string) error {
	principal, err := c.authService.VerifyToken(ctx.Context(), token)
	if err != nil {
		log.Printf("[Auth] ERROR - Identity lookup failed after exchange: %v", err)
		return c.redirectClientError(ctx, pending)
	}

	code, err := c.grantService.Issue(&service.Grant{
		Login:       principal.Login,
		AccessToken: principal.AccessToken,
		Scope:       pending.Scope,
	})
	if err != nil {
		log.Printf("[Auth] ERROR - Grant issuance failed: %v", err)
		return c.redirectClientError(ctx, pending)
	}

	target, err := url.Parse(pending.RedirectUri)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid redirect URI"))
	}
	q := target.Query()
	q.Set("code", code)
	if pending.State != "" {
		q.Set("state", pending.State)
	}
	target.RawQuery = q.Encode()
	return ctx.Redirect(target.String(), fiber.StatusFound)
}

func (c *authController) renderTokenPage(ctx *fiber.Ctx, token string) error {
	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="referrer" content="no-referrer">
  <title>Authorization Complete</title>
  <style>
    body { font-family: system-ui, sans-serif; max-width: 600px; margin: 40px auto; padding: 0 20px; }
    .token { background: #f4f4f4; padding: 12px; border-radius: 4px; word-break: break-all; font-family: monospace; }
  </style>
</head>
<body>
  <h1>Authorization Complete</h1>
  <p>Your access token:</p>
  <div class="token">%s</div>
  <p>Store this token securely and close this tab. Use it as a Bearer token in your client configuration.</p>
</body>
</html>`, token)

	ctx.Set(fiber.HeaderContentSecurityPolicy, "default-src 'none'; style-src 'unsafe-inline'")
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Status(fiber.StatusOK).SendString(html)
}
