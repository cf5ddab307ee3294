package dto

// PendingAuthRequest is the downstream protocol client's original authorize
// request. It is opaque to the broker: carried through the consent round-trip
// in a short-lived cookie and replayed verbatim on completion.
type PendingAuthRequest struct {
	ResponseType string `json:"response_type"`
	ClientId     string `json:"client_id"`
	RedirectUri  string `json:"redirect_uri" validate:"required,url"`
	Scope        string `json:"scope"`
	State        string `json:"state"`
}

type TokenRequest struct {
	GrantType string `json:"grant_type" form:"grant_type"`
	Code      string `json:"code" form:"code" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope,omitempty"`
}
