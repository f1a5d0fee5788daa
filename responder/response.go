package responder

import (
	"net/http"

	"github.com/drblury/respweaver/outcome"
	"github.com/drblury/respweaver/resperr"
)

// Respond assembles res, logs it when it is a failure and writes it to w.
func (r *Responder) Respond(w http.ResponseWriter, req *http.Request, res Result) {
	d, err := assemble(r.Config(), res)
	obs := Observation{Success: res.IsSuccess()}
	switch {
	case err != nil:
		traceID := traceIDFor(requestContext(req))
		r.logger().ErrorContext(requestContext(req), "failed to encode response",
			"error", err, "traceId", traceID, "path", requestInstance(req))
		d = problemDescriptor(req, traceID, r.statusMetaFor(http.StatusInternalServerError))
		obs.Fallback = true
	case !obs.Success:
		r.logFailure(req, res.Failure(), d.Status)
	}

	obs.Status = d.Status
	obs.BodySize = len(d.Body)
	if r != nil && r.observer != nil {
		r.observer.ObserveResponse(req, obs)
	}

	r.Write(w, d)
}

// Fail responds with a failure holding e and no payload.
func Fail[E resperr.Error](r *Responder, w http.ResponseWriter, req *http.Request, e E) {
	r.Respond(w, req, outcome.Failure[outcome.Nil](e))
}

// Write copies d onto w. Headers present in d replace those already set on
// w; an empty body writes no bytes.
func (r *Responder) Write(w http.ResponseWriter, d Descriptor) {
	if w == nil {
		return
	}

	dst := w.Header()
	for key, values := range d.Header {
		dst[key] = append([]string(nil), values...)
	}
	status := d.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	if len(d.Body) == 0 {
		return
	}
	if _, err := w.Write(d.Body); err != nil {
		r.logger().Error("failed to write response", "error", err)
	}
}

func (r *Responder) logFailure(req *http.Request, failure resperr.Error, status int) {
	meta := r.statusMetaFor(status)
	logger := r.logger().With(
		"error", failure.LogMessage(),
		"status", status,
		"traceId", traceIDFor(requestContext(req)),
	)
	if path := requestInstance(req); path != "" {
		logger = logger.With("path", path)
	}
	logger.Log(requestContext(req), meta.logLevel, meta.logMsg)
}
