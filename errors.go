package main

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for the not-found class. These are the only errors that
// trigger the lookup fallback chain; everything else propagates as-is.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrPageDataNotFound    = errors.New("page data script not found")
	ErrMissingUserID       = errors.New("profile does not expose a user id")
)

// =============================================================================
// Validation Errors
// =============================================================================

// ValidationError reports invalid caller input. The router maps it to a
// 400 response; it never reaches an upstream call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError checks whether the error is caller input related.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var ve *ValidationError
	return errors.As(err, &ve)
}

// =============================================================================
// Upstream Errors
// =============================================================================

// UpstreamError represents a non-2xx response from the Saweria backend or
// frontend. The raw body is retained so the router can surface it as
// supplementary detail.
type UpstreamError struct {
	Operation  string
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("saweria: %s returned status %d", e.Operation, e.StatusCode)
}

// Detail returns the upstream body for the error envelope, decoded when the
// upstream sent JSON, as a raw string otherwise. Nil for an empty body.
func (e *UpstreamError) Detail() any {
	if len(e.Body) == 0 {
		return nil
	}
	var decoded any
	if err := json.Unmarshal(e.Body, &decoded); err == nil {
		return decoded
	}
	return string(e.Body)
}

// MalformedDataError indicates the embedded page data element was present but
// its content could not be parsed as JSON. Distinct from ErrPageDataNotFound:
// the page exists but its bootstrap payload is broken.
type MalformedDataError struct {
	Err error
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("malformed page data: %v", e.Err)
}

func (e *MalformedDataError) Unwrap() error {
	return e.Err
}

// =============================================================================
// Session Errors
// =============================================================================

// SessionError wraps a failure while negotiating challenge credentials for a
// target URL. The provider is a black box; whatever it reports is carried
// through unmodified.
type SessionError struct {
	URL string
	Err error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session negotiation failed for %s: %v", e.URL, e.Err)
}

func (e *SessionError) Unwrap() error {
	return e.Err
}

// NewSessionError wraps an error as a session negotiation failure.
func NewSessionError(url string, err error) error {
	return &SessionError{URL: url, Err: err}
}
