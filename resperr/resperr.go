package resperr

import "net/http"

// Error is the required part of the capability: the diagnostic message that
// is written to logs.
type Error interface {
	LogMessage() string
}

// Messager supplies the message shown to clients. Without it the log message
// is used.
type Messager interface {
	RespMessage() string
}

// StatusCoder supplies the HTTP status of the failure. Without it the status
// is 500.
type StatusCoder interface {
	HTTPCode() int
}

// ExtraMessager supplies a secondary machine readable code. The value must be
// JSON serialisable; its fmt.Sprint form is used when it is sent as a header.
// A failure type implementing ExtraMessager enables the extra message field.
type ExtraMessager interface {
	ExtraMessage() any
}

// DefaultMessager supplies the message written in the success branch when
// fixed fields are enabled. It is called on the zero value of the type and
// must not depend on receiver state. Returning false writes null.
type DefaultMessager interface {
	DefaultRespMessage() (string, bool)
}

// DefaultExtraMessager supplies the extra message written in the success
// branch when fixed fields are enabled. Same rules as DefaultMessager.
type DefaultExtraMessager interface {
	DefaultExtraMessage() (any, bool)
}

// RespMessage returns the client facing message for e.
func RespMessage(e Error) string {
	if m, ok := e.(Messager); ok {
		return m.RespMessage()
	}
	return e.LogMessage()
}

// HTTPCode returns the status for e, defaulting to 500.
func HTTPCode(e Error) int {
	if c, ok := e.(StatusCoder); ok {
		return c.HTTPCode()
	}
	return http.StatusInternalServerError
}

// ExtraMessage returns the extra code for e and whether e provides one.
func ExtraMessage(e Error) (any, bool) {
	if x, ok := e.(ExtraMessager); ok {
		return x.ExtraMessage(), true
	}
	return nil, false
}

// ValidStatus reports whether code can be written as an HTTP status.
func ValidStatus(code int) bool {
	return code >= 100 && code <= 999
}
