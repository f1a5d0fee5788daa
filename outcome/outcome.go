package outcome

import (
	"github.com/drblury/respweaver/effect"
	"github.com/drblury/respweaver/resperr"
)

// Outcome is a success payload of type T or a failure of type E, plus the
// effects that adjust how it is written.
type Outcome[T any, E resperr.Error] struct {
	value   T
	err     E
	failed  bool
	effects effect.Effects
}

// Success returns a successful outcome holding v. The failure type is the
// first type parameter so it can be named while v is inferred:
//
//	outcome.Success[resperr.HTTPError]("hello")
func Success[E resperr.Error, T any](v T) Outcome[T, E] {
	return Outcome[T, E]{value: v}
}

// Failure returns a failed outcome holding e.
func Failure[T any, E resperr.Error](e E) Outcome[T, E] {
	return Outcome[T, E]{err: e, failed: true}
}

// IsSuccess reports whether o holds a payload.
func (o Outcome[T, E]) IsSuccess() bool { return !o.failed }

// IsFailure reports whether o holds an error.
func (o Outcome[T, E]) IsFailure() bool { return o.failed }

// Get returns the payload, the error and whether o is a success. Only the
// value of the active branch is meaningful.
func (o Outcome[T, E]) Get() (T, E, bool) {
	return o.value, o.err, !o.failed
}

// Value returns the payload and true on success.
func (o Outcome[T, E]) Value() (T, bool) {
	if o.failed {
		var zero T
		return zero, false
	}
	return o.value, true
}

// Err returns the error and true on failure.
func (o Outcome[T, E]) Err() (E, bool) {
	if !o.failed {
		var zero E
		return zero, false
	}
	return o.err, true
}

// ValueOr returns the payload, or fallback on failure.
func (o Outcome[T, E]) ValueOr(fallback T) T {
	if o.failed {
		return fallback
	}
	return o.value
}

// Match calls onSuccess or onFailure depending on the active branch. Nil
// callbacks are skipped.
func (o Outcome[T, E]) Match(onSuccess func(T), onFailure func(E)) {
	switch {
	case !o.failed && onSuccess != nil:
		onSuccess(o.value)
	case o.failed && onFailure != nil:
		onFailure(o.err)
	}
}

// WithEffects returns a copy of o with effs appended to its effects.
func (o Outcome[T, E]) WithEffects(effs ...effect.Effect) Outcome[T, E] {
	o.effects = o.effects.Add(effs...)
	return o
}

// WithEffectSet returns a copy of o with the collection es appended.
func (o Outcome[T, E]) WithEffectSet(es effect.Effects) Outcome[T, E] {
	o.effects = o.effects.Merge(es)
	return o
}

// Effects returns the effects attached to o.
func (o Outcome[T, E]) Effects() effect.Effects { return o.effects }

// Payload returns the success payload as an untyped value, or nil on
// failure.
func (o Outcome[T, E]) Payload() any {
	if o.failed {
		return nil
	}
	return o.value
}

// Failure returns the error as an untyped capability, or nil on success.
func (o Outcome[T, E]) Failure() resperr.Error {
	if !o.failed {
		return nil
	}
	return o.err
}

// Traits returns the type level traits of E.
func (o Outcome[T, E]) Traits() resperr.Traits {
	return resperr.TraitsOf[E]()
}
