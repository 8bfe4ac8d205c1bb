package transport

import (
	"errors"
	"fmt"
)

// ErrorKind classifies transport failures. All are returned as typed
// results; none are retried here, retry policy belongs to callers.
type ErrorKind string

const (
	// KindInvalidEndpoint reports a missing or unparseable base URL.
	KindInvalidEndpoint ErrorKind = "invalid_endpoint"
	// KindEncodingFailure reports a request body that could not be serialized.
	KindEncodingFailure ErrorKind = "encoding_failure"
	// KindNetworkFailure reports a failed exchange (DNS, dial, TLS, timeout).
	KindNetworkFailure ErrorKind = "network_failure"
	// KindDecodingFailure reports a response body that could not be parsed.
	KindDecodingFailure ErrorKind = "decoding_failure"
)

// Error is a classified transport failure. It wraps the underlying
// cause, if any, for errors.Is/As chains.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("transport: %s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("transport: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// IsKind reports whether err is a transport Error of kind k.
func IsKind(err error, k ErrorKind) bool {
	var te *Error
	return errors.As(err, &te) && te.Kind == k
}

func invalidEndpoint(baseURL string) *Error {
	return &Error{Kind: KindInvalidEndpoint, Message: fmt.Sprintf("base URL %q is not usable", baseURL)}
}

func encodingFailure(err error) *Error {
	return &Error{Kind: KindEncodingFailure, Message: "failed to encode request body", cause: err}
}

func networkFailure(err error) *Error {
	return &Error{Kind: KindNetworkFailure, Message: "request failed", cause: err}
}

func decodingFailure(err error) *Error {
	return &Error{Kind: KindDecodingFailure, Message: "failed to decode response body", cause: err}
}
