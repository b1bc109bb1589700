package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/kastaem/kadmin/client"
)

// ErrMissingToken is returned when an authenticated call is attempted with no
// access token in the session store. No network call is made.
var ErrMissingToken = errors.New("no access token available, please login first")

// ErrNoRefreshToken is returned when a refresh is attempted with no refresh
// token in the session store. The session is cleared; the user must login again.
var ErrNoRefreshToken = errors.New("no refresh token available, please login again")

// RefreshFailedError wraps the error that terminated a refresh cycle. It is
// terminal: by the time a caller sees it, the local session has been cleared.
type RefreshFailedError struct {
	Err error
}

func (e *RefreshFailedError) Error() string { return "token refresh failed: " + e.Err.Error() }
func (e *RefreshFailedError) Unwrap() error { return e.Err }

// unauthorizedMarkers are the substrings the native bridge's stringified
// errors carried for auth failures. They remain the fallback when a transport
// error has no structured status code.
var unauthorizedMarkers = []string{"401", "unauthorized", "unauthenticated", "revoked"}

// IsUnauthorized classifies an error as an authorization failure. A structured
// *client.StatusError is checked by status code; anything else falls back to a
// case-insensitive scan of the message text.
func IsUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	var statusErr *client.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code == http.StatusUnauthorized
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range unauthorizedMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
