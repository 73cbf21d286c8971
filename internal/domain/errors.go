package domain

import (
	"errors"
	"fmt"
)

// Input validation errors.
var (
	ErrEmptyQuery        = errors.New("empty query")
	ErrUnrecognizedInput = errors.New("unrecognized input format")
)

// Resolution errors.
var (
	ErrTenantNotFound   = errors.New("tenant or domain not found")
	ErrMalformedIssuer  = errors.New("malformed issuer in discovery document")
	ErrRealmNotFound    = errors.New("user realm not found")
	ErrDirectoryLookup  = errors.New("directory lookup failed")
	ErrMissingDiscovery = errors.New("missing required discovery fields")
)

// Credential errors.
var (
	ErrCredentialsMissing = errors.New("application credentials not configured")
	ErrAuthRejected       = errors.New("client credential exchange rejected")
)

// External service errors.
var (
	ErrLoginUnavailable = errors.New("login endpoint unavailable")
	ErrGraphUnavailable = errors.New("directory API unavailable")
)

// UpstreamStatusError wraps a sentinel with the HTTP status an upstream
// returned, so the handler boundary can surface the upstream's own
// status code instead of a generic one.
type UpstreamStatusError struct {
	Err        error
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("%v: upstream returned status %d", e.Err, e.StatusCode)
}

func (e *UpstreamStatusError) Unwrap() error {
	return e.Err
}
