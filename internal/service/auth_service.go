// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"

	"idea-garden-be/internal/config"
	"idea-garden-be/internal/entity"
	"idea-garden-be/internal/pkg/apperrors"
	"idea-garden-be/internal/pkg/githubclient"

	"golang.org/x/oauth2"
)

type IAuthService interface {
	GenerateState() string
	InstallURL(state string) string
	AuthorizeURL(state string) string
	CallbackPath() string
	Exchange(ctx context.Context, code string) (string, error)
	VerifyToken(ctx context.Context, token string) (*entity.Principal, error)
}

type authService struct {
	conf         *oauth2.Config
	appSlug      string
	callbackPath string
	client       *githubclient.Client
	grantService IGrantService
}

func NewAuthService(cfg *config.Config, client *githubclient.Client, grantService IGrantService) IAuthService {
	callbackPath := "/api/auth/github/callback"
	conf := &oauth2.Config{
		ClientID:     cfg.GitHub.ClientID,
		ClientSecret: cfg.GitHub.ClientSecret,
		RedirectURL:  cfg.App.BaseURL + callbackPath,
		Scopes:       []string{"repo"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  cfg.GitHub.AuthURL,
			TokenURL: cfg.GitHub.TokenURL,
		},
	}

	return &authService{
		conf:         conf,
		appSlug:      cfg.GitHub.AppSlug,
		callbackPath: callbackPath,
		client:       client,
		grantService: grantService,
	}
}

// GenerateState mints the single-use CSRF correlator: 256 bits, hex-encoded.
func (s *authService) GenerateState() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// InstallURL builds the GitHub App installation consent page carrying the state.
func (s *authService) InstallURL(state string) string {
	return fmt.Sprintf("https://github.com/apps/%s/installations/new?state=%s", s.appSlug, url.QueryEscape(state))
}

// AuthorizeURL builds the authorization-code consent page used by the
// protocol-client flow.
func (s *authService) AuthorizeURL(state string) string {
	return s.conf.AuthCodeURL(state)
}

func (s *authService) CallbackPath() string {
	return s.callbackPath
}

// Exchange swaps the callback code for an upstream access token. Upstream
// detail is deliberately not propagated: every failure mode collapses into
// ErrExchangeFailed.
func (s *authService) Exchange(ctx context.Context, code string) (string, error) {
	token, err := s.conf.Exchange(ctx, code)
	if err != nil {
		return "", apperrors.ErrExchangeFailed
	}
	if token.AccessToken == "" {
		return "", apperrors.ErrExchangeFailed
	}
	return token.AccessToken, nil
}

// VerifyToken resolves a bearer credential to its principal. A minted grant
// is parsed locally; anything else is treated as a raw GitHub token and
// verified against the upstream identity API.
func (s *authService) VerifyToken(ctx context.Context, token string) (*entity.Principal, error) {
	if grant, err := s.grantService.Parse(token); err == nil {
		return &entity.Principal{Login: grant.Login, AccessToken: grant.AccessToken}, nil
	}

	user, err := s.client.GetUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	return &entity.Principal{Login: user.Login, AccessToken: token}, nil
}
