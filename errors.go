package stemsplit

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind discriminates the failure classes surfaced by this SDK.
type Kind string

const (
	// KindInvalidArgument marks malformed or missing input, caught
	// before any network I/O.
	KindInvalidArgument Kind = "INVALID_ARGUMENT"

	// KindAPIError marks a non-success status or an explicit failure
	// payload from the remote endpoint.
	KindAPIError Kind = "API_ERROR"

	// KindNetworkError marks a transport failure unrelated to timeouts
	// (DNS, connection refused, reset).
	KindNetworkError Kind = "NETWORK_ERROR"

	// KindTimeout marks an operation that did not complete within its
	// deadline.
	KindTimeout Kind = "TIMEOUT"

	// KindInvalidResponse marks an unparsable response or one missing
	// required success-path fields.
	KindInvalidResponse Kind = "INVALID_RESPONSE"
)

// Error represents a StemSplit API error.
type Error struct {
	Kind    Kind
	Message string

	// Status is the HTTP status code, set only when Kind is
	// KindAPIError and the server reported one.
	Status int

	// Cause is the underlying error, when one exists.
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("stemsplit: %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("stemsplit: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(kind Kind, message string, status int, cause error) *Error {
	return &Error{Kind: kind, Message: message, Status: status, Cause: cause}
}

func invalidArgument(message string) *Error {
	return newError(KindInvalidArgument, message, 0, nil)
}

// mapTransportError normalizes a failure from the HTTP layer into
// KindTimeout or KindNetworkError. Errors already typed by this SDK,
// such as a streamed upload failing mid-request, pass through as-is.
// Deadline and net.Error timeouts are structural signals; the message
// check is a last-ditch fallback for transports that surface neither.
func mapTransportError(err error, message string) *Error {
	var sdkErr *Error
	if errors.As(err, &sdkErr) {
		return sdkErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return newError(KindTimeout, message, 0, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newError(KindTimeout, message, 0, err)
	}

	if strings.Contains(strings.ToLower(err.Error()), "timeout") {
		return newError(KindTimeout, message, 0, err)
	}

	return newError(KindNetworkError, message, 0, err)
}
