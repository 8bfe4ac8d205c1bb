package session

import (
	"errors"
	"fmt"

	"github.com/mygbu/authcore/transport"
)

// ErrorKind is the caller-facing failure taxonomy. Transport kinds are
// recoverable by retrying at the caller's discretion; AuthRejected is
// terminal for the attempt; MalformedResponse and SchemaMismatch are
// contract violations and never silently coerced.
type ErrorKind string

const (
	KindInvalidEndpoint     ErrorKind = "invalid_endpoint"
	KindEncodingFailure     ErrorKind = "encoding_failure"
	KindNetworkFailure      ErrorKind = "network_failure"
	KindDecodingFailure     ErrorKind = "decoding_failure"
	KindAuthRejected        ErrorKind = "auth_rejected"
	KindMalformedResponse   ErrorKind = "malformed_response"
	KindSchemaMismatch      ErrorKind = "schema_mismatch"
	KindOperationInProgress ErrorKind = "operation_in_progress"
	KindRateLimited         ErrorKind = "rate_limited"
	KindResetRejected       ErrorKind = "reset_rejected"
)

// Error carries a kind plus a human-readable message, enough structure
// for a presentation layer to render every failure.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("session: %s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("session: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// IsKind reports whether err is a session Error of kind k.
func IsKind(err error, k ErrorKind) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == k
}

func authRejected(message string) *Error {
	if message == "" {
		message = "authentication rejected"
	}
	return &Error{Kind: KindAuthRejected, Message: message}
}

func malformedResponse(message string, cause error) *Error {
	return &Error{Kind: KindMalformedResponse, Message: message, cause: cause}
}

func operationInProgress() *Error {
	return &Error{Kind: KindOperationInProgress, Message: "another authentication operation is in flight"}
}

func rateLimited() *Error {
	return &Error{Kind: KindRateLimited, Message: "too many login attempts, slow down"}
}

func resetRejected(message string) *Error {
	if message == "" {
		message = "password reset rejected"
	}
	return &Error{Kind: KindResetRejected, Message: message}
}

// fromTransport lifts a transport failure into the session taxonomy,
// preserving the original error in the chain.
func fromTransport(err error) *Error {
	var te *transport.Error
	if errors.As(err, &te) {
		return &Error{Kind: ErrorKind(te.Kind), Message: te.Message, cause: err}
	}
	return &Error{Kind: KindNetworkFailure, Message: "transport failure", cause: err}
}
