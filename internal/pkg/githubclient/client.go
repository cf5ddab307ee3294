// FILE: internal/pkg/githubclient/client.go
package githubclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"idea-garden-be/internal/pkg/apperrors"
)

const (
	defaultAPIBaseURL = "https://api.github.com"
	userAgent         = "idea-garden/0.1.0"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a GitHub REST v3 client. baseURL overrides api.github.com
// (tests point it at an httptest server); empty means the real API.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// Call issues one authenticated request and decodes the JSON response. Any
// non-2xx status fails with an UpstreamError carrying the status verbatim.
// No retries; retry policy belongs to callers.
func (c *Client) Call(ctx context.Context, method, path, token string, body any) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, apperrors.NewUpstreamError(res.StatusCode, fmt.Sprintf("GitHub API error: %d", res.StatusCode))
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

type User struct {
	Login string `json:"login"`
}

// GetUser resolves the identity that owns a bearer token via GET /user.
func (c *Client) GetUser(ctx context.Context, token string) (*User, error) {
	data, err := c.Call(ctx, http.MethodGet, "/user", token, nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
