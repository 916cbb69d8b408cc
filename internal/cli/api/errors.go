package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized signals that the backend rejected the session credential.
// The client has already cleared the credential store and notified the
// unauthorized handler by the time a caller sees this error, so callers can
// treat it as "re-login required" rather than a network problem.
var ErrUnauthorized = errors.New("unauthorized: session rejected by server")

// TransportError is a request that failed below the business level: the
// network was unreachable, the backend answered with an unexpected status,
// or the body was not a well-formed envelope. Status is 0 when the request
// never completed.
type TransportError struct {
	Status int
	Cause  error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("transport error (status %d): %v", e.Status, e.Cause)
	}
	return fmt.Sprintf("transport error: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
