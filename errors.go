package proxymanager

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNoToken is returned when a login or refresh response does not
	// contain a token. The token store is cleared before it is returned.
	ErrNoToken = errors.New("no token returned")

	// ErrMissingID is returned by update and delete operations when the
	// resource has no identifier set.
	ErrMissingID = errors.New("missing resource id")
)

// APIError is the uniform error shape every failed call converges into,
// whether the failure happened at the transport level or inside the backend.
type APIError struct {
	// Message is the human-readable error text. For backend failures this is
	// taken verbatim from the error envelope; for transport failures it is
	// the transport error text.
	Message string
	// Debug is the raw response body text, kept for diagnostics.
	Debug string
	// Code is an HTTP-like status code. Backend envelope codes are passed
	// through (500 when the envelope omits one); transport failures and
	// unparseable error bodies use 400.
	Code int
}

// Error returns the error message.
func (e *APIError) Error() string {
	return fmt.Sprintf("proxymanager [%d]: %s", e.Code, e.Message)
}

// AuthError is returned when a login or refresh call succeeded at the
// transport level but the response omitted the expected token field.
type AuthError struct {
	// Op is the operation that failed ("login" or "refresh").
	Op string
}

// Error returns a human-readable description of the auth failure.
func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: no token returned", e.Op)
}

// Is reports whether this error matches the target error.
// It supports errors.Is(err, ErrNoToken).
func (e *AuthError) Is(target error) bool {
	return target == ErrNoToken
}
