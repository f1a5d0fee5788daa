package info

import (
	"errors"
	"net/http"
	"time"

	"github.com/drblury/respweaver/probe"
	"github.com/drblury/respweaver/responder"
)

// InfoProvider returns the payload that will be exposed by the version endpoint.
// The provider allows callers to inject their own source for build metadata or
// runtime diagnostics.
type InfoProvider func() any

// SwaggerProvider returns the raw OpenAPI document served by GetOpenAPIJSON.
// It is commonly backed by an embedded JSON file generated at build time.
type SwaggerProvider func() ([]byte, error)

// InfoOption follows the functional options pattern used by NewInfoHandler to
// configure optional collaborators such as the responder and information
// providers.
type InfoOption func(*InfoHandler)

const defaultProbeTimeout = 2 * time.Second

// ProbeFunc is executed to determine the outcome of liveness or readiness
// probes. Returning a non-nil *probe.Error marks the probe as failed.
type ProbeFunc = probe.Func

var errSwaggerNotConfigured = errors.New("api swagger provider not configured")

// InfoHandler serves build information, status checks and the OpenAPI
// document. Every response except the raw document goes through the
// embedded Responder and therefore carries the configured response shape.
type InfoHandler struct {
	*responder.Responder
	infoProvider    InfoProvider
	swaggerProvider SwaggerProvider
	probeTimeout    time.Duration
	livenessChecks  []ProbeFunc
	readinessChecks []ProbeFunc

	status  http.HandlerFunc
	healthz http.HandlerFunc
	readyz  http.HandlerFunc
	version http.HandlerFunc
}

// NewInfoHandler constructs an InfoHandler with sensible defaults. Callers can
// supply InfoOption values to plug in domain specific providers or override the
// base responder implementation.
func NewInfoHandler(opts ...InfoOption) *InfoHandler {
	ih := &InfoHandler{
		Responder: responder.NewResponder(),
		infoProvider: func() any {
			return map[string]string{}
		},
		swaggerProvider: func() ([]byte, error) {
			return nil, errSwaggerNotConfigured
		},
		probeTimeout: defaultProbeTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(ih)
		}
	}
	ih.buildEndpoints()
	return ih
}

// WithInfoResponder replaces the responder used to shape responses and
// report failures.
func WithInfoResponder(responder *responder.Responder) InfoOption {
	return func(ih *InfoHandler) {
		if responder != nil {
			ih.Responder = responder
		}
	}
}

// WithInfoProvider swaps the default metadata provider with a user supplied
// implementation.
func WithInfoProvider(provider InfoProvider) InfoOption {
	return func(ih *InfoHandler) {
		if provider != nil {
			ih.infoProvider = provider
		}
	}
}

// WithSwaggerProvider sets the source of the OpenAPI JSON document.
func WithSwaggerProvider(provider SwaggerProvider) InfoOption {
	return func(ih *InfoHandler) {
		if provider != nil {
			ih.swaggerProvider = provider
		}
	}
}

// WithProbeTimeout adjusts the maximum duration allowed for probe checks.
func WithProbeTimeout(timeout time.Duration) InfoOption {
	return func(ih *InfoHandler) {
		if timeout > 0 {
			ih.probeTimeout = timeout
		}
	}
}

// WithLivenessChecks replaces the default liveness checks with the supplied
// functions.
func WithLivenessChecks(checks ...ProbeFunc) InfoOption {
	return func(ih *InfoHandler) {
		ih.livenessChecks = filterProbes(checks)
	}
}

// WithReadinessChecks replaces the default readiness checks with the supplied
// functions.
func WithReadinessChecks(checks ...ProbeFunc) InfoOption {
	return func(ih *InfoHandler) {
		ih.readinessChecks = filterProbes(checks)
	}
}
