package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// ErrGroupNotConfigured is returned when a dialog reaches finalize but no
	// destination group is configured.
	ErrGroupNotConfigured = errors.New("destination group not configured")

	// ErrMalformedEvent marks an inbound event that lacks fields required to process it.
	ErrMalformedEvent = errors.New("malformed inbound event")

	// ErrTransport is the kind of every *TransportError.
	ErrTransport = errors.New("transport failure")
)

// TransportError describes a failed call to the messaging transport.
// Status is the HTTP status returned by the API, or 0 when no response was received.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("transport %s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

// Unwrap exposes both the kind (ErrTransport) and the underlying cause.
func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}

// NewTransportError wraps err as a transport failure of operation op.
func NewTransportError(op string, status int, err error) *TransportError {
	return &TransportError{Op: op, Status: status, Err: err}
}
