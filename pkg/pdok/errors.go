package pdok

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes a client failure.
type ErrorKind string

const (
	// ErrorKindNetwork is a transport-level failure: DNS, connection
	// refused, TLS failure.
	ErrorKindNetwork ErrorKind = "network"
	// ErrorKindTimeout means a configured time bound was exceeded.
	ErrorKindTimeout ErrorKind = "timeout"
	// ErrorKindUnauthorized means the upstream rejected the credential.
	ErrorKindUnauthorized ErrorKind = "unauthorized"
	// ErrorKindNotFound means the upstream affirmatively reports no match.
	ErrorKindNotFound ErrorKind = "not_found"
	// ErrorKindMalformed means the response body does not conform to the
	// expected schema.
	ErrorKindMalformed ErrorKind = "malformed"
	// ErrorKindUpstream is any other non-success status.
	ErrorKindUpstream ErrorKind = "upstream"
	// ErrorKindInvalidInput means a request argument failed validation
	// before any network activity.
	ErrorKindInvalidInput ErrorKind = "invalid_input"
	// ErrorKindConfiguration means a required builder field was missing.
	// Raised at Build() time, never during a call.
	ErrorKindConfiguration ErrorKind = "configuration"
)

// Error is the typed error returned by all clients in this module.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Detail     string
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := string(e.Kind)

	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}

	if e.Detail != "" {
		msg = msg + ": " + e.Detail
	}

	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Static errors for missing required configuration and invalid arguments.
var (
	ErrUserAgentRequired      = errors.New("user agent is required")
	ErrAPIKeyRequired         = errors.New("API key is required")
	ErrBaseURLInvalid         = errors.New("base URL is invalid")
	ErrUnknownCoordinateSpace = errors.New("unknown coordinate space")
)

// hasKind reports whether err is a *Error of the given kind.
func hasKind(err error, kind ErrorKind) bool {
	clientErr := &Error{}
	if errors.As(err, &clientErr) {
		return clientErr.Kind == kind
	}

	return false
}

// IsNetwork checks if the error is a transport-level failure.
func IsNetwork(err error) bool {
	return hasKind(err, ErrorKindNetwork)
}

// IsTimeout checks if the error is a timeout.
func IsTimeout(err error) bool {
	return hasKind(err, ErrorKindTimeout)
}

// IsUnauthorized checks if the error is an authentication failure.
func IsUnauthorized(err error) bool {
	return hasKind(err, ErrorKindUnauthorized)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasKind(err, ErrorKindNotFound)
}

// IsMalformed checks if the error is an unparsable response body.
func IsMalformed(err error) bool {
	return hasKind(err, ErrorKindMalformed)
}

// IsUpstream checks if the error is a non-success upstream status that does
// not map to a more specific kind.
func IsUpstream(err error) bool {
	return hasKind(err, ErrorKindUpstream)
}

// IsInvalidInput checks if the error is a rejected request argument.
func IsInvalidInput(err error) bool {
	return hasKind(err, ErrorKindInvalidInput)
}

// IsConfiguration checks if the error is a missing required builder field.
func IsConfiguration(err error) bool {
	return hasKind(err, ErrorKindConfiguration)
}
