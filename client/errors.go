package client

import (
	"fmt"
	"net/http"
)

// StatusError is returned by the HTTP transport for non-2xx responses. It
// carries the structured status code while its text keeps the shape of the
// native bridge's stringified errors ("request failed (401 Unauthorized): ..."),
// so callers that only see the message can still recognize auth failures.
type StatusError struct {
	Code   int    // numeric status code, e.g. 401
	Status string // full status line, e.g. "401 Unauthorized"
	Body   string // response body, if any
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed (%s): %s", e.Status, e.Body)
}

// Unauthorized reports whether the response was a 401.
func (e *StatusError) Unauthorized() bool { return e.Code == http.StatusUnauthorized }
