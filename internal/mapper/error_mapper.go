package mapper

import (
	"errors"
	"fmt"

	"idea-garden-be/internal/pkg/apperrors"
)

// FormatError turns a failure into user-facing guidance. Presentation only:
// callers keep branching on the error itself, never on these strings.
func FormatError(err error, appSlug string, baseURL string) string {
	var upstream *apperrors.UpstreamError
	if errors.As(err, &upstream) {
		switch upstream.Status {
		case 401:
			return fmt.Sprintf("Authentication failed. Re-authorize at %s/api/auth/github", baseURL)
		case 403:
			return fmt.Sprintf(
				"Permission denied. Ensure the %s GitHub App is installed and has access to the ideas repository: https://github.com/apps/%s/installations/new",
				appSlug, appSlug,
			)
		default:
			return fmt.Sprintf("An error occurred: %s", upstream.Error())
		}
	}
	if err != nil {
		return err.Error()
	}
	return "An error occurred: unknown failure"
}
