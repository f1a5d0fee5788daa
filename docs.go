// Package respweaver shapes HTTP handler results into one configurable JSON
// envelope. Handlers return an outcome.Outcome, either a success payload or
// a failure, and the responder turns it into a body, a status and headers
// that follow a single process-wide response shape.
//
// The shape is described by a config.Config: the body and error message
// field names, an optional status sign (bool, reversed bool, number or
// string), an optional extra message field and header, and whether every
// field is present on both branches. It is published once with config.Set or
// config.TrySet and read with config.Get.
//
// # Packages
//
//   - config: the response shape, its set-once publication and env loading.
//   - resperr: the failure capability (log message, client message, status,
//     extra message) and HTTPError, a ready-made implementation.
//   - effect: header and status side effects attached to outcomes.
//   - outcome: the success/failure sum type with combinators and converters.
//   - responder: assembly of outcomes into responses, failure logging and the
//     problem document fallback when encoding fails.
//   - binder, handler: request extraction and the adapter that turns outcome
//     handlers into http.HandlerFunc for ServeMux or chi.
//   - router: middleware chain whose timeout, panic and OpenAPI validation
//     errors use the same envelope.
//   - info, probe: status, version, liveness and readiness endpoints.
//   - metrics: a Prometheus observer for assembled responses.
//   - jsonutil: sonic helpers and the ordered object encoder.
//
// # Quick Start
//
//	config.Set(config.New(config.WithStatusSign(config.NumberSign("code", 0, 1))))
//
//	resp := responder.NewResponder(responder.WithLogger(logger))
//	getProject := handler.Wrap(
//	    func(ctx context.Context, req getProjectRequest) outcome.Outcome[Project, resperr.HTTPError] {
//	        p, err := store.Find(ctx, req.ID)
//	        return outcome.FromError(p, err, resperr.FromError)
//	    },
//	    binder.Rejection,
//	    handler.WithBinders(binder.Path(binder.StdPathValue)),
//	    handler.WithResponder(resp),
//	)
//
//	mux := http.NewServeMux()
//	handler.Handle(mux, "GET /projects/{id}", getProject)
//	info.NewInfoHandler(info.WithInfoResponder(resp)).Register(mux)
//
// Sharing the responder keeps envelopes, failure logs and trace ids
// consistent across application and operational endpoints.
package respweaver
