package upapi

import (
	"errors"
	"fmt"
)

// Sentinel errors for the well-known API failure modes. Callers match these
// with errors.Is.
var (
	// ErrNoToken is returned before any network I/O when the client has no
	// API token configured.
	ErrNoToken = errors.New("no API token configured: run 'upctl config set --token <token>'")

	// ErrAuthenticationFailed maps HTTP 401: the token is invalid or expired.
	ErrAuthenticationFailed = errors.New("authentication failed: the API token is invalid or expired")

	// ErrForbidden maps HTTP 403.
	ErrForbidden = errors.New("forbidden: the token does not permit this operation")

	// ErrNotFound maps HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited maps HTTP 429. The client never retries automatically.
	ErrRateLimited = errors.New("rate limited: too many requests, try again shortly")
)

// APIError carries any other non-2xx response: the status code and a
// best-effort message extracted from the error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// ConnectivityError wraps a transport failure where no HTTP response was
// received at all (DNS, refused connection, timeout).
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("could not reach the Up API: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}
