package info

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/drblury/respweaver/handler"
	"github.com/drblury/respweaver/outcome"
	"github.com/drblury/respweaver/probe"
	"github.com/drblury/respweaver/resperr"
)

// Route paths used by Mount and Register.
const (
	StatusPath      = "/status"
	HealthzPath     = "/healthz"
	ReadyzPath      = "/readyz"
	VersionPath     = "/version"
	OpenAPIJSONPath = "/openapi.json"
)

// Info endpoints take no input, so binding never fails.
func rejectProbe(err error) *probe.Error { return probe.Fail("request", err) }

func (ih *InfoHandler) buildEndpoints() {
	withResponder := handler.WithResponder(ih.Responder)
	ih.status = handler.Wrap(ih.Status, rejectProbe, withResponder)
	ih.healthz = handler.Wrap(ih.Liveness, rejectProbe, withResponder)
	ih.readyz = handler.Wrap(ih.Readiness, rejectProbe, withResponder)
	ih.version = handler.Wrap(ih.Version, resperr.FromError, withResponder)
}

// Version succeeds with the payload of the configured InfoProvider.
func (ih *InfoHandler) Version(context.Context, outcome.Nil) outcome.Outcome[any, resperr.HTTPError] {
	payload := ih.infoProvider()
	if payload == nil {
		payload = map[string]string{}
	}
	return outcome.Success[resperr.HTTPError](payload)
}

// GetStatus returns a simple health payload that can be used for lightweight diagnostics.
func (ih *InfoHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ih.status(w, r)
}

// GetHealthz implements the liveness probe recommended for Kubernetes.
func (ih *InfoHandler) GetHealthz(w http.ResponseWriter, r *http.Request) {
	ih.healthz(w, r)
}

// GetReadyz implements the readiness probe recommended for Kubernetes.
func (ih *InfoHandler) GetReadyz(w http.ResponseWriter, r *http.Request) {
	ih.readyz(w, r)
}

// GetVersion returns the structure provided by the configured InfoProvider.
func (ih *InfoHandler) GetVersion(w http.ResponseWriter, r *http.Request) {
	ih.version(w, r)
}

// GetOpenAPIJSON streams the configured OpenAPI JSON document to the caller
// unwrapped, so documentation tools can consume it. Provider errors are
// written as shaped failures.
func (ih *InfoHandler) GetOpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	doc, err := ih.swaggerProvider()
	if err != nil {
		ih.Respond(w, r, outcome.Failure[outcome.Nil](
			resperr.Wrap(http.StatusInternalServerError, "swagger_unavailable", err).WithLog("failed to load swagger spec"),
		))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err = w.Write(doc); err != nil {
		ih.Logger().WarnContext(r.Context(), "failed to write swagger response", "error", err)
	}
}

// Mount registers the info endpoints on a chi router.
func (ih *InfoHandler) Mount(r chi.Router) {
	handler.Mount(r, http.MethodGet, StatusPath, http.HandlerFunc(ih.GetStatus))
	handler.Mount(r, http.MethodGet, HealthzPath, http.HandlerFunc(ih.GetHealthz))
	handler.Mount(r, http.MethodGet, ReadyzPath, http.HandlerFunc(ih.GetReadyz))
	handler.Mount(r, http.MethodGet, VersionPath, http.HandlerFunc(ih.GetVersion))
	handler.Mount(r, http.MethodGet, OpenAPIJSONPath, http.HandlerFunc(ih.GetOpenAPIJSON))
}

// Register registers the info endpoints on a ServeMux.
func (ih *InfoHandler) Register(mux *http.ServeMux) {
	handler.Handle(mux, "GET "+StatusPath, http.HandlerFunc(ih.GetStatus))
	handler.Handle(mux, "GET "+HealthzPath, http.HandlerFunc(ih.GetHealthz))
	handler.Handle(mux, "GET "+ReadyzPath, http.HandlerFunc(ih.GetReadyz))
	handler.Handle(mux, "GET "+VersionPath, http.HandlerFunc(ih.GetVersion))
	handler.Handle(mux, "GET "+OpenAPIJSONPath, http.HandlerFunc(ih.GetOpenAPIJSON))
}
