package outcome_test

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drblury/respweaver/effect"
	"github.com/drblury/respweaver/jsonutil"
	"github.com/drblury/respweaver/outcome"
	"github.com/drblury/respweaver/resperr"
)

type appErr struct {
	msg  string
	code int
}

func (e appErr) LogMessage() string { return e.msg }
func (e appErr) HTTPCode() int      { return e.code }

type wrappedErr struct{ inner appErr }

type notFoundErr struct{}

func (notFoundErr) LogMessage() string { return "not found" }
func (notFoundErr) HTTPCode() int      { return http.StatusNotFound }

func (e wrappedErr) LogMessage() string { return "wrapped: " + e.inner.msg }

func TestZeroValueIsSuccess(t *testing.T) {
	t.Parallel()

	var o outcome.Outcome[int, appErr]
	assert.True(t, o.IsSuccess())
	assert.False(t, o.IsFailure())
	v, ok := o.Value()
	assert.True(t, ok)
	assert.Zero(t, v)
	assert.Empty(t, o.Effects())
}

func TestQueries(t *testing.T) {
	t.Parallel()

	ok := outcome.Success[appErr]("hello")
	fail := outcome.Failure[string](appErr{msg: "boom", code: 400})

	v, e, success := ok.Get()
	assert.True(t, success)
	assert.Equal(t, "hello", v)
	assert.Zero(t, e)

	_, isErr := ok.Err()
	assert.False(t, isErr)

	err, isErr := fail.Err()
	assert.True(t, isErr)
	assert.Equal(t, "boom", err.msg)
	_, hasValue := fail.Value()
	assert.False(t, hasValue)
	assert.Equal(t, "fallback", fail.ValueOr("fallback"))
	assert.Equal(t, "hello", ok.ValueOr("fallback"))

	assert.Equal(t, "hello", ok.Payload())
	assert.Nil(t, ok.Failure())
	assert.Nil(t, fail.Payload())
	assert.Equal(t, resperr.Error(appErr{msg: "boom", code: 400}), fail.Failure())
}

func TestMatchAndFold(t *testing.T) {
	t.Parallel()

	var got string
	outcome.Success[appErr]("x").Match(
		func(s string) { got = "ok:" + s },
		func(e appErr) { got = "err:" + e.msg },
	)
	assert.Equal(t, "ok:x", got)

	outcome.Failure[string](appErr{msg: "y"}).Match(nil, func(e appErr) { got = "err:" + e.msg })
	assert.Equal(t, "err:y", got)

	assert.NotPanics(t, func() { outcome.Success[appErr](1).Match(nil, nil) })

	n := outcome.Fold(outcome.Failure[int](appErr{code: 404}),
		func(v int) int { return v },
		func(e appErr) int { return e.code },
	)
	assert.Equal(t, 404, n)
}

func TestMapKeepsEffects(t *testing.T) {
	t.Parallel()

	o := outcome.Success[appErr](21).WithEffects(effect.SetStatus(http.StatusCreated))
	doubled := outcome.Map(o, func(v int) string { return strconv.Itoa(v * 2) })

	v, ok := doubled.Value()
	require.True(t, ok)
	assert.Equal(t, "42", v)
	assert.Equal(t, o.Effects(), doubled.Effects())

	failed := outcome.Failure[int](appErr{msg: "nope"})
	called := false
	mapped := outcome.Map(failed, func(v int) int { called = true; return v })
	assert.False(t, called)
	assert.True(t, mapped.IsFailure())
}

func TestMapErr(t *testing.T) {
	t.Parallel()

	o := outcome.Failure[int](appErr{msg: "inner"}).WithEffects(effect.EmptyBody())
	w := outcome.MapErr(o, func(e appErr) wrappedErr { return wrappedErr{inner: e} })

	e, ok := w.Err()
	require.True(t, ok)
	assert.Equal(t, "wrapped: inner", e.LogMessage())
	assert.True(t, w.Effects().SuppressesBody())

	s := outcome.MapErr(outcome.Success[appErr](5), func(e appErr) wrappedErr { return wrappedErr{inner: e} })
	v, _ := s.Value()
	assert.Equal(t, 5, v)
}

func TestAndThenConcatenatesEffects(t *testing.T) {
	t.Parallel()

	first := outcome.Success[appErr](1).WithEffects(effect.SetStatus(201))
	chained := outcome.AndThen(first, func(v int) outcome.Outcome[int, appErr] {
		return outcome.Success[appErr](v + 1).WithEffects(effect.SetStatus(202))
	})

	v, _ := chained.Value()
	assert.Equal(t, 2, v)
	require.Len(t, chained.Effects(), 2)
	status, _ := chained.Effects().Status()
	assert.Equal(t, 202, status)

	stopped := outcome.AndThen(outcome.Failure[int](appErr{msg: "stop"}), func(v int) outcome.Outcome[string, appErr] {
		t.Fatal("step must not run after a failure")
		return outcome.Outcome[string, appErr]{}
	})
	assert.True(t, stopped.IsFailure())
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	recovered := outcome.OrElse(outcome.Failure[int](appErr{msg: "miss"}), func(e appErr) outcome.Outcome[int, wrappedErr] {
		return outcome.Success[wrappedErr](0)
	})
	assert.True(t, recovered.IsSuccess())

	kept := outcome.OrElse(outcome.Success[appErr](3), func(e appErr) outcome.Outcome[int, wrappedErr] {
		return outcome.Failure[int](wrappedErr{inner: e})
	})
	v, ok := kept.Value()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestWithEffectsDoesNotAlias(t *testing.T) {
	t.Parallel()

	base := outcome.Success[appErr]("x").WithEffects(effect.SetStatus(201))
	a := base.WithEffects(effect.SetStatus(202))
	b := base.WithEffects(effect.SetStatus(203))

	sa, _ := a.Effects().Status()
	sb, _ := b.Effects().Status()
	s, _ := base.Effects().Status()
	assert.Equal(t, 202, sa)
	assert.Equal(t, 203, sb)
	assert.Equal(t, 201, s)

	merged := base.WithEffectSet(effect.Combine(effect.EmptyBody(), effect.SetStatus(204)))
	assert.Len(t, merged.Effects(), 3)
}

func TestFromResult(t *testing.T) {
	t.Parallel()

	assert.True(t, outcome.FromResult(1, appErr{msg: "x"}).IsFailure())
	assert.True(t, outcome.FromResult(1, appErr{}).IsFailure(), "zero struct error is still an error")

	o := outcome.FromResult(1, notFoundErr{})
	require.True(t, o.IsFailure(), "field-less struct error must not become a success")
	assert.Equal(t, http.StatusNotFound, resperr.HTTPCode(o.Failure()))

	var nilPtr *resperr.HTTPError
	assert.True(t, outcome.FromResult[int, resperr.Error](1, nil).IsSuccess())
	assert.True(t, outcome.FromResult(1, nilPtr).IsSuccess())
	assert.True(t, outcome.FromResult(1, &resperr.HTTPError{Code: 400}).IsFailure())
}

func TestFromError(t *testing.T) {
	t.Parallel()

	o := outcome.FromError("v", nil, resperr.FromError)
	assert.True(t, o.IsSuccess())

	cause := errors.New("db down")
	o = outcome.FromError("", cause, resperr.FromError)
	e, ok := o.Err()
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, e.HTTPCode())
	assert.ErrorIs(t, e, cause)
}

func TestFromOptionAndPtr(t *testing.T) {
	t.Parallel()

	missing := resperr.ErrNotFound
	assert.True(t, outcome.FromOption(1, true, missing).IsSuccess())
	assert.True(t, outcome.FromOption(1, false, missing).IsFailure())

	n := 7
	v, ok := outcome.FromPtr(&n, missing).Value()
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	e, failed := outcome.FromPtr[int](nil, missing).Err()
	assert.True(t, failed)
	assert.Equal(t, http.StatusNotFound, e.HTTPCode())
}

func TestTry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ok := outcome.Try(ctx, func(context.Context) (int, error) { return 3, nil }, resperr.FromError)
	v, _ := ok.Value()
	assert.Equal(t, 3, v)

	fail := outcome.Try(ctx, func(context.Context) (int, error) {
		return 0, resperr.ErrConflict
	}, resperr.FromError)
	e, _ := fail.Err()
	assert.Equal(t, http.StatusConflict, e.HTTPCode())
}

func TestAwait(t *testing.T) {
	t.Parallel()

	toErr := func(err error) resperr.HTTPError {
		return resperr.Wrap(http.StatusGatewayTimeout, "gateway_timeout", err)
	}

	t.Run("receives", func(t *testing.T) {
		ch := make(chan outcome.Outcome[int, resperr.HTTPError], 1)
		ch <- outcome.Success[resperr.HTTPError](9)
		v, ok := outcome.Await(context.Background(), ch, toErr).Value()
		assert.True(t, ok)
		assert.Equal(t, 9, v)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		ch := make(chan outcome.Outcome[int, resperr.HTTPError])
		e, failed := outcome.Await(ctx, ch, toErr).Err()
		require.True(t, failed)
		assert.Equal(t, http.StatusGatewayTimeout, e.HTTPCode())
		assert.ErrorIs(t, e, context.DeadlineExceeded)
	})

	t.Run("closed", func(t *testing.T) {
		ch := make(chan outcome.Outcome[int, resperr.HTTPError])
		close(ch)
		e, failed := outcome.Await(context.Background(), ch, toErr).Err()
		require.True(t, failed)
		assert.ErrorIs(t, e, outcome.ErrChannelClosed)
	})
}

func TestCheck(t *testing.T) {
	t.Parallel()

	handler := func(in outcome.Outcome[int, appErr]) outcome.Outcome[string, appErr] {
		n, fail, ok := outcome.Check[string](in)
		if !ok {
			return fail
		}
		return outcome.Success[appErr](strconv.Itoa(n))
	}

	v, _ := handler(outcome.Success[appErr](12)).Value()
	assert.Equal(t, "12", v)

	failed := handler(outcome.Failure[int](appErr{msg: "bad", code: 422}).WithEffects(effect.EmptyBody()))
	e, isErr := failed.Err()
	require.True(t, isErr)
	assert.Equal(t, 422, e.code)
	assert.True(t, failed.Effects().SuppressesBody())
}

func TestCheckWithAndCheckErr(t *testing.T) {
	t.Parallel()

	_, fail, ok := outcome.CheckWith[string](outcome.Failure[int](appErr{msg: "x"}), func(e appErr) wrappedErr {
		return wrappedErr{inner: e}
	})
	assert.False(t, ok)
	e, _ := fail.Err()
	assert.Equal(t, "wrapped: x", e.LogMessage())

	v, _, ok := outcome.CheckErr[string](5, nil, resperr.FromError)
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, failErr, ok := outcome.CheckErr[string](0, resperr.ErrForbidden, resperr.FromError)
	assert.False(t, ok)
	he, _ := failErr.Err()
	assert.Equal(t, http.StatusForbidden, he.HTTPCode())
}

func TestTraits(t *testing.T) {
	t.Parallel()

	assert.False(t, outcome.Success[appErr](1).Traits().ExtraEnabled)
	assert.True(t, outcome.Success[resperr.HTTPError](1).Traits().ExtraEnabled)
}

func TestNilMarshalsToNull(t *testing.T) {
	t.Parallel()

	b, err := jsonutil.Marshal(outcome.Nil{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
