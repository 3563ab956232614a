package models

import (
	"errors"
	"fmt"
)

// ErrorKind is the normalized failure taxonomy for fetch errors.
//
// Failures are classified at the point where they occur, never by inspecting
// error message text, so downstream handling stays exhaustive and stable.
type ErrorKind string

const (
	// KindTimeout indicates the upstream took too long to respond.
	KindTimeout ErrorKind = "timeout"

	// KindNetworkUnreachable indicates a transport failure before any
	// response arrived (DNS, connection refused, TLS).
	KindNetworkUnreachable ErrorKind = "network_unreachable"

	// KindHTTPStatus indicates a response with a non-success status code.
	KindHTTPStatus ErrorKind = "http_status"

	// KindInvalidPayloadShape indicates the response body was not a JSON
	// array of objects.
	KindInvalidPayloadShape ErrorKind = "invalid_payload_shape"

	// KindUnknown indicates an unexpected internal failure.
	KindUnknown ErrorKind = "unknown"
)

// FetchError wraps a fetch failure with its normalized kind. The message is a
// diagnostic for logs only; the user-facing sentence is resolved from the
// kind at render time.
type FetchError struct {
	Kind       ErrorKind
	StatusCode int // set only for KindHTTPStatus
	Message    string
	Underlying error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("fetch [%s]: %s: %v", e.Kind, e.Message, e.Underlying)
	}
	return fmt.Sprintf("fetch [%s]: %s", e.Kind, e.Message)
}

// Unwrap supports error chain inspection.
func (e *FetchError) Unwrap() error {
	return e.Underlying
}

// NewFetchError creates a classified fetch error.
func NewFetchError(kind ErrorKind, message string, underlying error) *FetchError {
	return &FetchError{Kind: kind, Message: message, Underlying: underlying}
}

// NewHTTPStatusError creates a fetch error for a non-success response status.
// The diagnostic message carries the code and reason phrase.
func NewHTTPStatusError(code int, reason string) *FetchError {
	return &FetchError{
		Kind:       KindHTTPStatus,
		StatusCode: code,
		Message:    fmt.Sprintf("%d: %s", code, reason),
	}
}

// KindOf extracts the error kind from an error chain, defaulting to KindUnknown.
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

// FetchOutcome is the tagged result of one fetch attempt: a user list on
// success, a classified failure otherwise. Exactly one side is populated.
type FetchOutcome struct {
	Users []UserRecord
	Err   *FetchError
}

// Success builds a successful outcome. An empty (or nil) list is a valid
// success and renders as the empty-state message.
func Success(users []UserRecord) FetchOutcome {
	return FetchOutcome{Users: users}
}

// Failure builds a failed outcome.
func Failure(err *FetchError) FetchOutcome {
	return FetchOutcome{Err: err}
}

// Failed reports whether the outcome carries a failure.
func (o FetchOutcome) Failed() bool {
	return o.Err != nil
}
