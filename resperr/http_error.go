package resperr

import (
	"errors"
	"net/http"
)

// HTTPError is a general purpose failure carrying a status, a client message,
// an optional log message, an optional extra code and an optional cause.
type HTTPError struct {
	Code    int
	Message string
	Log     string
	Extra   any
	Cause   error
}

var (
	_ error         = HTTPError{}
	_ Messager      = HTTPError{}
	_ StatusCoder   = HTTPError{}
	_ ExtraMessager = HTTPError{}
)

// Predefined failures for the statuses handlers reach for most often.
var (
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Message: "bad_request"}
	ErrUnauthorized         = HTTPError{Code: http.StatusUnauthorized, Message: "unauthorized"}
	ErrForbidden            = HTTPError{Code: http.StatusForbidden, Message: "forbidden"}
	ErrNotFound             = HTTPError{Code: http.StatusNotFound, Message: "not_found"}
	ErrMethodNotAllowed     = HTTPError{Code: http.StatusMethodNotAllowed, Message: "method_not_allowed"}
	ErrConflict             = HTTPError{Code: http.StatusConflict, Message: "conflict"}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Message: "unsupported_media_type"}
	ErrUnprocessableEntity  = HTTPError{Code: http.StatusUnprocessableEntity, Message: "unprocessable_entity"}
	ErrTooManyRequests      = HTTPError{Code: http.StatusTooManyRequests, Message: "too_many_requests"}
	ErrInternalServerError  = HTTPError{Code: http.StatusInternalServerError, Message: "internal_server_error"}
	ErrServiceUnavailable   = HTTPError{Code: http.StatusServiceUnavailable, Message: "service_unavailable"}
	ErrGatewayTimeout       = HTTPError{Code: http.StatusGatewayTimeout, Message: "gateway_timeout"}
)

// New creates an HTTPError with the given status and client message.
func New(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

// Wrap creates an HTTPError that keeps cause for logging and errors.Is.
func Wrap(code int, message string, cause error) HTTPError {
	return HTTPError{Code: code, Message: message, Cause: cause}
}

// FromError converts err into an HTTPError. An HTTPError anywhere in the
// chain is returned as is; anything else becomes a 500 that hides the cause
// from clients but keeps it in the log message.
func FromError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return Wrap(http.StatusInternalServerError, ErrInternalServerError.Message, err)
}

// WithExtra returns a copy of e carrying the extra code.
func (e HTTPError) WithExtra(extra any) HTTPError {
	e.Extra = extra
	return e
}

// WithLog returns a copy of e with a dedicated log message.
func (e HTTPError) WithLog(msg string) HTTPError {
	e.Log = msg
	return e
}

// Error implements error.
func (e HTTPError) Error() string {
	return e.LogMessage()
}

// Unwrap exposes the cause.
func (e HTTPError) Unwrap() error {
	return e.Cause
}

// LogMessage prefers the explicit log message, then the cause, then the
// client message.
func (e HTTPError) LogMessage() string {
	switch {
	case e.Log != "":
		return e.Log
	case e.Cause != nil:
		if e.Message == "" {
			return e.Cause.Error()
		}
		return e.Message + ": " + e.Cause.Error()
	case e.Message != "":
		return e.Message
	default:
		return http.StatusText(e.HTTPCode())
	}
}

// RespMessage returns the client message, falling back to the status text.
func (e HTTPError) RespMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.HTTPCode())
}

// HTTPCode returns the status, defaulting to 500.
func (e HTTPError) HTTPCode() int {
	if e.Code == 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// ExtraMessage returns the extra code. Failures without one report null.
func (e HTTPError) ExtraMessage() any {
	return e.Extra
}
