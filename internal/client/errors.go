package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies what went wrong with an API call. Callers branch on the
// kind (redirect to login on KindUnauthorized, show the message otherwise)
// instead of string-matching error text.
type Kind int

const (
	// KindNetwork = request could not be sent or no response was received.
	KindNetwork Kind = iota + 1
	// KindUnauthorized = the server answered 401 or 403, regardless of body.
	KindUnauthorized
	// KindServerRejected = any other non-2xx response.
	KindServerRejected
	// KindMalformedResponse = a 2xx response whose body could not be decoded.
	KindMalformedResponse
	// KindValidation = a required local field was missing; no request was sent.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network_failure"
	case KindUnauthorized:
		return "unauthorized"
	case KindServerRejected:
		return "server_rejected"
	case KindMalformedResponse:
		return "malformed_response"
	case KindValidation:
		return "validation_failure"
	default:
		return "unknown"
	}
}

// Error is the normalized error value every client operation returns on
// failure. Status is 0 when no HTTP response was received.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap lets errors.Is / errors.As walk to the underlying transport error.
func (e *Error) Unwrap() error { return e.Cause }

func networkErr(cause error) *Error {
	return &Error{Kind: KindNetwork, Message: "request failed", Cause: cause}
}

func unauthorizedErr(status int) *Error {
	return &Error{Kind: KindUnauthorized, Status: status, Message: "authentication required"}
}

func rejectedErr(status int, message string) *Error {
	if message == "" {
		message = http.StatusText(status)
	}
	return &Error{Kind: KindServerRejected, Status: status, Message: message}
}

func malformedErr(status int, cause error) *Error {
	return &Error{Kind: KindMalformedResponse, Status: status, Message: "undecodable response body", Cause: cause}
}

func validationErr(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the classification of err, or 0 when err is not a client error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}

// IsUnauthorized reports whether err represents a 401/403 answer, so callers
// can redirect to re-authentication instead of showing a generic failure.
func IsUnauthorized(err error) bool {
	return KindOf(err) == KindUnauthorized
}
