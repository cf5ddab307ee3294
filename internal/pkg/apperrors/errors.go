// FILE: internal/pkg/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors used for branching with errors.Is across the service layer.
var (
	ErrNotFound       = errors.New("idea not found")
	ErrConflict       = errors.New("revision conflict")
	ErrUnauthorized   = errors.New("missing or invalid bearer credential")
	ErrStateMismatch  = errors.New("oauth state mismatch")
	ErrExchangeFailed = errors.New("failed to exchange authorization code")
)

// UpstreamError carries the raw GitHub API status so callers can branch on
// the number instead of the message text.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("github api error: %d: %s", e.Status, e.Message)
}

func NewUpstreamError(status int, message string) *UpstreamError {
	return &UpstreamError{Status: status, Message: message}
}

// IsUpstreamStatus reports whether err is an UpstreamError with the given status.
func IsUpstreamStatus(err error, status int) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.Status == status
}

// FormatError marks a stored idea file that could not be decoded. Kind
// distinguishes a missing front-matter delimiter from a schema violation.
type FormatError struct {
	Kind   FormatErrorKind
	Reason string
}

type FormatErrorKind string

const (
	FormatErrorDelimiter FormatErrorKind = "delimiter"
	FormatErrorSchema    FormatErrorKind = "schema"
)

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid idea markdown (%s): %s", e.Kind, e.Reason)
}

func NewDelimiterError(reason string) *FormatError {
	return &FormatError{Kind: FormatErrorDelimiter, Reason: reason}
}

func NewSchemaError(reason string) *FormatError {
	return &FormatError{Kind: FormatErrorSchema, Reason: reason}
}
