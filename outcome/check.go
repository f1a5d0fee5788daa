package outcome

import "github.com/drblury/respweaver/resperr"

// Check unwraps o for continued use. On failure it also returns the failure
// re-typed for the enclosing handler, with o's effects, and false:
//
//	user, fail, ok := outcome.Check[Profile](loadUser(ctx, id))
//	if !ok {
//		return fail
//	}
func Check[U, T any, E resperr.Error](o Outcome[T, E]) (T, Outcome[U, E], bool) {
	if o.failed {
		var zero T
		return zero, Outcome[U, E]{err: o.err, failed: true, effects: o.effects}, false
	}
	return o.value, Outcome[U, E]{}, true
}

// CheckWith is Check with a conversion into the enclosing handler's error
// type.
func CheckWith[U, T any, E, F resperr.Error](o Outcome[T, E], conv func(E) F) (T, Outcome[U, F], bool) {
	if o.failed {
		var zero T
		return zero, Outcome[U, F]{err: conv(o.err), failed: true, effects: o.effects}, false
	}
	return o.value, Outcome[U, F]{}, true
}

// CheckErr is Check for a plain (value, error) pair.
func CheckErr[U, T any, E resperr.Error](v T, err error, conv func(error) E) (T, Outcome[U, E], bool) {
	if err != nil {
		var zero T
		return zero, Failure[U](conv(err)), false
	}
	return v, Outcome[U, E]{}, true
}
