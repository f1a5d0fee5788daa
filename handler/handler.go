package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/drblury/respweaver/binder"
	"github.com/drblury/respweaver/outcome"
	"github.com/drblury/respweaver/resperr"
	"github.com/drblury/respweaver/responder"
)

// Func handles a bound request of type R.
type Func[R, T any, E resperr.Error] func(ctx context.Context, req R) outcome.Outcome[T, E]

// Decorator wraps a Func to add cross cutting behaviour. The first
// decorator passed to WithDecorators is the outermost.
type Decorator[R, T any, E resperr.Error] func(Func[R, T, E]) Func[R, T, E]

// Option configures Wrap.
type Option func(*settings)

type settings struct {
	binders    []binder.Func
	responder  *responder.Responder
	decorators []any
}

// WithBinders appends binders that run in order before the handler. A
// binder reporting binder.ErrNotApplicable is skipped.
func WithBinders(binders ...binder.Func) Option {
	return func(s *settings) {
		for _, b := range binders {
			if b != nil {
				s.binders = append(s.binders, b)
			}
		}
	}
}

// WithResponder sets the responder that writes outcomes. The default is
// responder.NewResponder().
func WithResponder(r *responder.Responder) Option {
	return func(s *settings) {
		if r != nil {
			s.responder = r
		}
	}
}

// WithDecorators appends decorators. Their type parameters must match the
// wrapped Func; Wrap panics otherwise.
func WithDecorators[R, T any, E resperr.Error](decorators ...Decorator[R, T, E]) Option {
	return func(s *settings) {
		for _, d := range decorators {
			if d != nil {
				s.decorators = append(s.decorators, d)
			}
		}
	}
}

// Wrap converts fn into an http.HandlerFunc. Binding errors are converted
// with reject and written as failures through the same responder as the
// handler's own outcomes.
func Wrap[R, T any, E resperr.Error](fn Func[R, T, E], reject func(error) E, opts ...Option) http.HandlerFunc {
	if fn == nil {
		panic("handler: nil Func")
	}
	if reject == nil {
		panic("handler: nil reject function")
	}

	s := &settings{}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.responder == nil {
		s.responder = responder.NewResponder()
	}

	final := fn
	for i := len(s.decorators) - 1; i >= 0; i-- {
		d, ok := s.decorators[i].(Decorator[R, T, E])
		if !ok {
			panic(fmt.Sprintf("handler: decorator %T does not match %T", s.decorators[i], fn))
		}
		final = d(final)
	}

	binders := s.binders
	resp := s.responder
	return func(w http.ResponseWriter, r *http.Request) {
		var req R
		for _, bind := range binders {
			err := bind(r, &req)
			if err == nil || errors.Is(err, binder.ErrNotApplicable) {
				continue
			}
			resp.Respond(w, r, outcome.Failure[T](reject(err)))
			return
		}
		resp.Respond(w, r, final(r.Context(), req))
	}
}
