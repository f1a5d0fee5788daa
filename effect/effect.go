package effect

import (
	"fmt"
	"net/http"

	"golang.org/x/net/http/httpguts"

	"github.com/drblury/respweaver/resperr"
)

// Kind identifies what an Effect does.
type Kind uint8

const (
	KindEmptyBody Kind = iota + 1
	KindSetStatus
	KindSetHeader
	KindRemoveHeader
	KindAdHoc
)

func (k Kind) String() string {
	switch k {
	case KindEmptyBody:
		return "empty-body"
	case KindSetStatus:
		return "set-status"
	case KindSetHeader:
		return "set-header"
	case KindRemoveHeader:
		return "remove-header"
	case KindAdHoc:
		return "ad-hoc"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// HeaderMode selects how a header set interacts with existing values.
type HeaderMode uint8

const (
	// Insert replaces every existing value of the header.
	Insert HeaderMode = iota + 1
	// Append adds a value next to the existing ones.
	Append
)

// Effect is a single directive. The zero value is not a valid effect; use the
// constructors.
type Effect struct {
	kind   Kind
	status int
	key    string
	value  string
	mode   HeaderMode
	adhoc  func(http.Header)
}

// EmptyBody suppresses body emission.
func EmptyBody() Effect {
	return Effect{kind: KindEmptyBody}
}

// SetStatus overrides the response status. It panics when code cannot be
// written as an HTTP status.
func SetStatus(code int) Effect {
	if !resperr.ValidStatus(code) {
		panic(fmt.Sprintf("effect: invalid status code %d", code))
	}
	return Effect{kind: KindSetStatus, status: code}
}

// InsertHeader sets key to value, replacing existing values. It panics on a
// malformed header name or value.
func InsertHeader(key, value string) Effect {
	return setHeader(key, value, Insert)
}

// AppendHeader adds value to key, keeping existing values. It panics on a
// malformed header name or value.
func AppendHeader(key, value string) Effect {
	return setHeader(key, value, Append)
}

// RemoveHeader deletes every value of key. It panics on a malformed name.
func RemoveHeader(key string) Effect {
	mustHeaderName(key)
	return Effect{kind: KindRemoveHeader, key: http.CanonicalHeaderKey(key)}
}

// AdHoc runs fn against the response headers after every removal and set of
// the collection. Several ad-hoc effects run in collection order. It panics
// when fn is nil.
func AdHoc(fn func(http.Header)) Effect {
	if fn == nil {
		panic("effect: nil ad-hoc function")
	}
	return Effect{kind: KindAdHoc, adhoc: fn}
}

func setHeader(key, value string, mode HeaderMode) Effect {
	mustHeaderName(key)
	if !httpguts.ValidHeaderFieldValue(value) {
		panic(fmt.Sprintf("effect: invalid value for header %q", key))
	}
	return Effect{kind: KindSetHeader, key: http.CanonicalHeaderKey(key), value: value, mode: mode}
}

func mustHeaderName(key string) {
	if !httpguts.ValidHeaderFieldName(key) {
		panic(fmt.Sprintf("effect: invalid header name %q", key))
	}
}

// Kind reports the directive type.
func (e Effect) Kind() Kind { return e.kind }

// Status returns the overriding status of a set-status effect.
func (e Effect) Status() int { return e.status }

// Header returns the canonical key, the value and the mode of a header
// effect. Value and mode are empty for removals.
func (e Effect) Header() (key, value string, mode HeaderMode) {
	return e.key, e.value, e.mode
}

func (e Effect) String() string {
	switch e.kind {
	case KindSetStatus:
		return fmt.Sprintf("%s(%d)", e.kind, e.status)
	case KindSetHeader:
		if e.mode == Append {
			return fmt.Sprintf("append-header(%s: %s)", e.key, e.value)
		}
		return fmt.Sprintf("insert-header(%s: %s)", e.key, e.value)
	case KindRemoveHeader:
		return fmt.Sprintf("%s(%s)", e.kind, e.key)
	default:
		return e.kind.String()
	}
}
