package outcome

import (
	"context"
	"errors"
	"reflect"

	"github.com/drblury/respweaver/resperr"
)

// ErrChannelClosed is handed to the onDone converter of Await when the
// channel closes without delivering an outcome.
var ErrChannelClosed = errors.New("outcome: channel closed without a value")

// FromResult converts a value and an optional error into an outcome. Only a
// nil e (interface, pointer, map, slice, func or channel) yields a success;
// any value of a non nilable type, its zero value included, is a failure.
// Use Success or FromOption when E cannot be nil.
func FromResult[T any, E resperr.Error](v T, e E) Outcome[T, E] {
	if absent(e) {
		return Success[E](v)
	}
	return Failure[T](e)
}

// FromError converts a (value, error) pair, mapping a non nil err into E
// through conv.
func FromError[T any, E resperr.Error](v T, err error, conv func(error) E) Outcome[T, E] {
	if err == nil {
		return Success[E](v)
	}
	return Failure[T](conv(err))
}

// FromOption returns a success holding v when ok is true, and a failure
// holding e otherwise.
func FromOption[T any, E resperr.Error](v T, ok bool, e E) Outcome[T, E] {
	if !ok {
		return Failure[T](e)
	}
	return Success[E](v)
}

// FromPtr dereferences p, falling back to a failure holding e when p is nil.
func FromPtr[T any, E resperr.Error](p *T, e E) Outcome[T, E] {
	if p == nil {
		return Failure[T](e)
	}
	return Success[E](*p)
}

// Try runs fn and converts its result with FromError. It does not start a
// goroutine.
func Try[T any, E resperr.Error](ctx context.Context, fn func(context.Context) (T, error), conv func(error) E) Outcome[T, E] {
	v, err := fn(ctx)
	return FromError(v, err, conv)
}

// Await waits for the first outcome sent on ch. When ctx ends first, or ch
// is closed empty, onDone converts the cause into the failure.
func Await[T any, E resperr.Error](ctx context.Context, ch <-chan Outcome[T, E], onDone func(error) E) Outcome[T, E] {
	select {
	case o, ok := <-ch:
		if !ok {
			return Failure[T](onDone(ErrChannelClosed))
		}
		return o
	case <-ctx.Done():
		return Failure[T](onDone(context.Cause(ctx)))
	}
}

func absent(e any) bool {
	if e == nil {
		return true
	}
	rv := reflect.ValueOf(e)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
