// Package api implements the outbound REST client for the Sendit backend.
// This file defines the error values shared across all client calls.  These
// sentinel values allow higher layers such as handlers to distinguish
// between different failure scenarios without inspecting HTTP status codes
// themselves.  For example, ErrNotFound covers both "no account with that
// email" on the forgot-password endpoint and "unknown tracking number" on
// the order lookup, while ErrUnauthorized signals that the stored API
// token was rejected and the session should be destroyed.
package api

import (
    "errors"
    "fmt"
    "sort"
    "strings"
)

// ErrUnauthorized is returned when the backend rejects the request with
// 401.  Handlers should treat this as a dead session: clear it and send
// the user back to the login screen.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidCredentials is returned when a login attempt is rejected with
// 422.  Handlers should translate this into an "invalid credentials"
// message rather than a field-level validation error.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotFound is returned on a 404 response, e.g. an unknown tracking
// number or a forgot-password request for an email with no account.
var ErrNotFound = errors.New("not found")

// ErrRateLimited is returned on a 429 response.  The backend throttles
// login and password-reset attempts; there is no automatic retry, the
// user is told to try again later.
var ErrRateLimited = errors.New("rate limited")

// ErrBadToken is returned when a password reset is rejected with 400
// because the reset token is invalid or expired.
var ErrBadToken = errors.New("invalid or expired token")

// ValidationError carries field-level messages from a 422 response, as
// returned by the register and resource mutation endpoints.  The map is
// keyed by the wire field name (nama, email, ...).
type ValidationError struct {
    Fields map[string]string
}

func (e *ValidationError) Error() string {
    if len(e.Fields) == 0 {
        return "validation failed"
    }
    // Deterministic order so the message is stable in logs and tests.
    keys := make([]string, 0, len(e.Fields))
    for k := range e.Fields {
        keys = append(keys, k)
    }
    sort.Strings(keys)
    parts := make([]string, 0, len(keys))
    for _, k := range keys {
        parts = append(parts, k+": "+e.Fields[k])
    }
    return "validation failed: " + strings.Join(parts, "; ")
}

// statusError maps an HTTP status code and decoded error body to one of
// the sentinel errors above.  Statuses without a dedicated meaning fall
// through to a generic error carrying the backend's message when present.
func statusError(status int, msg string, fields map[string]string) error {
    switch status {
    case 400:
        return ErrBadToken
    case 401:
        return ErrUnauthorized
    case 404:
        return ErrNotFound
    case 422:
        if len(fields) > 0 {
            return &ValidationError{Fields: fields}
        }
        return ErrInvalidCredentials
    case 429:
        return ErrRateLimited
    }
    if msg == "" {
        msg = "request failed"
    }
    return fmt.Errorf("backend returned %d: %s", status, msg)
}
