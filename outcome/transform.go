package outcome

import "github.com/drblury/respweaver/resperr"

// Fold reduces o to a single value.
func Fold[T any, E resperr.Error, R any](o Outcome[T, E], onSuccess func(T) R, onFailure func(E) R) R {
	if o.failed {
		return onFailure(o.err)
	}
	return onSuccess(o.value)
}

// Map transforms the payload of a success. Failures pass through.
func Map[T, U any, E resperr.Error](o Outcome[T, E], f func(T) U) Outcome[U, E] {
	out := Outcome[U, E]{err: o.err, failed: o.failed, effects: o.effects}
	if !o.failed {
		out.value = f(o.value)
	}
	return out
}

// MapErr transforms the error of a failure. Successes pass through.
func MapErr[T any, E, F resperr.Error](o Outcome[T, E], f func(E) F) Outcome[T, F] {
	out := Outcome[T, F]{value: o.value, failed: o.failed, effects: o.effects}
	if o.failed {
		out.err = f(o.err)
	}
	return out
}

// AndThen chains a fallible step after a success. The effects of o come
// before the effects of the step's result.
func AndThen[T, U any, E resperr.Error](o Outcome[T, E], f func(T) Outcome[U, E]) Outcome[U, E] {
	if o.failed {
		return Outcome[U, E]{err: o.err, failed: true, effects: o.effects}
	}
	next := f(o.value)
	next.effects = o.effects.Merge(next.effects)
	return next
}

// OrElse recovers from a failure. The effects of o come before the effects
// of the recovery's result.
func OrElse[T any, E, F resperr.Error](o Outcome[T, E], f func(E) Outcome[T, F]) Outcome[T, F] {
	if !o.failed {
		return Outcome[T, F]{value: o.value, effects: o.effects}
	}
	next := f(o.err)
	next.effects = o.effects.Merge(next.effects)
	return next
}
