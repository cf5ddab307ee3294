// FILE: internal/service/grant_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"idea-garden-be/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// Grant is the system's own bearer credential: a signed wrapper around the
// upstream GitHub token and the login it belongs to. Stateless on purpose —
// nothing is stored server-side, the claims carry everything.
type Grant struct {
	Login       string
	AccessToken string
	Scope       string
}

type IGrantService interface {
	Issue(grant *Grant) (string, error)
	Parse(token string) (*Grant, error)
}

type grantService struct {
	secret []byte
	ttl    time.Duration
}

func NewGrantService(cfg config.GrantConfig) IGrantService {
	return &grantService{
		secret: []byte(cfg.Secret),
		ttl:    time.Duration(cfg.TTLHours) * time.Hour,
	}
}

func (s *grantService) Issue(grant *Grant) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("grant secret is not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":      "idea-garden",
		"sub":      grant.Login,
		"gh_token": grant.AccessToken,
		"scope":    grant.Scope,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *grantService) Parse(tokenStr string) (*Grant, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer("idea-garden"), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("invalid grant: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid grant")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid grant claims")
	}

	login, _ := claims["sub"].(string)
	ghToken, _ := claims["gh_token"].(string)
	scope, _ := claims["scope"].(string)
	if login == "" || ghToken == "" {
		return nil, errors.New("grant claims are incomplete")
	}

	return &Grant{Login: login, AccessToken: ghToken, Scope: scope}, nil
}
