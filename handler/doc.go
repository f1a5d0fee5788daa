// Package handler adapts typed outcome handlers to net/http.
//
// A Func receives the request context and a bound request value and returns
// an outcome. Wrap binds the request with the configured binders, converts
// binding errors into the handler's own failure type and hands the outcome
// to a responder:
//
//	get := func(ctx context.Context, req GetProject) outcome.Outcome[Project, resperr.HTTPError] {
//		p, err := store.Project(ctx, req.ID)
//		return outcome.FromError(p, err, resperr.FromError)
//	}
//
//	r := chi.NewRouter()
//	handler.Mount(r, http.MethodGet, "/projects/{id}", handler.Wrap(get, binder.Rejection,
//		handler.WithBinders(binder.Path(binder.ChiURLParam)),
//	))
package handler
