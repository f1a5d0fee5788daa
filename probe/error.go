package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Error reports a failed probe. It is a response failure in its own right:
// status 503, the client message "service_unavailable" and the probe name as
// the extra code, so readiness endpoints can return it unchanged.
type Error struct {
	Probe string
	Cause error
}

// Fail wraps cause as the failure of the named probe.
func Fail(name string, cause error) *Error {
	return &Error{Probe: name, Cause: cause}
}

// Error implements error.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.LogMessage()
}

// Unwrap exposes the cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// LogMessage names the probe and the cause.
func (e *Error) LogMessage() string {
	switch {
	case e == nil:
		return "unnamed probe failed"
	case e.Cause == nil:
		return fmt.Sprintf("%s probe failed", e.Probe)
	case errors.Is(e.Cause, context.DeadlineExceeded):
		return fmt.Sprintf("%s probe timed out: %v", e.Probe, e.Cause)
	default:
		return fmt.Sprintf("%s probe failed: %v", e.Probe, e.Cause)
	}
}

// RespMessage hides the cause from clients.
func (e *Error) RespMessage() string { return "service_unavailable" }

// HTTPCode is always 503.
func (e *Error) HTTPCode() int { return http.StatusServiceUnavailable }

// ExtraMessage is the probe name, or nil for a nil *Error.
func (e *Error) ExtraMessage() any {
	if e == nil {
		return nil
	}
	return e.Probe
}
