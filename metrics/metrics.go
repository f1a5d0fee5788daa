package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/drblury/respweaver/responder"
)

const defaultNamespace = "respweaver"

// Branch label values.
const (
	BranchSuccess = "success"
	BranchFailure = "failure"
)

// DefaultBodySizeBuckets spans small envelopes up to one MiB bodies.
var DefaultBodySizeBuckets = prometheus.ExponentialBuckets(64, 4, 8)

// Option configures NewObserver.
type Option func(*options)

type options struct {
	namespace string
	buckets   []float64
}

// WithNamespace replaces the respweaver metric namespace.
func WithNamespace(namespace string) Option {
	return func(o *options) {
		if namespace != "" {
			o.namespace = namespace
		}
	}
}

// WithBodySizeBuckets replaces DefaultBodySizeBuckets.
func WithBodySizeBuckets(buckets ...float64) Option {
	return func(o *options) {
		if len(buckets) > 0 {
			o.buckets = buckets
		}
	}
}

// Observer counts assembled responses.
type Observer struct {
	// ResponsesTotal counts responses by branch, status and request method.
	ResponsesTotal *prometheus.CounterVec
	// FallbacksTotal counts responses replaced by the serialization fallback.
	FallbacksTotal prometheus.Counter
	// BodySizeBytes is a histogram of written body sizes by branch.
	BodySizeBytes *prometheus.HistogramVec
}

var _ responder.Observer = (*Observer)(nil)

// NewObserver builds an Observer and registers its collectors on reg. A
// collector that is already registered with the same descriptor is reused,
// so several responders may share one registry.
func NewObserver(reg prometheus.Registerer, opts ...Option) (*Observer, error) {
	o := options{namespace: defaultNamespace, buckets: DefaultBodySizeBuckets}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	obs := &Observer{
		ResponsesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: o.namespace,
				Name:      "responses_total",
				Help:      "Total number of shaped responses by branch, status and method.",
			},
			[]string{"branch", "status", "method"},
		),
		FallbacksTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: o.namespace,
				Name:      "serialization_fallbacks_total",
				Help:      "Total number of responses replaced by a problem document after an encoding failure.",
			},
		),
		BodySizeBytes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: o.namespace,
				Name:      "response_body_bytes",
				Help:      "Size of shaped response bodies in bytes.",
				Buckets:   o.buckets,
			},
			[]string{"branch"},
		),
	}

	if reg == nil {
		return obs, nil
	}

	var err error
	obs.ResponsesTotal, err = register(reg, obs.ResponsesTotal)
	if err != nil {
		return nil, err
	}
	obs.FallbacksTotal, err = register(reg, obs.FallbacksTotal)
	if err != nil {
		return nil, err
	}
	obs.BodySizeBytes, err = register(reg, obs.BodySizeBytes)
	if err != nil {
		return nil, err
	}
	return obs, nil
}

// MustNewObserver is NewObserver that panics on registration errors.
func MustNewObserver(reg prometheus.Registerer, opts ...Option) *Observer {
	obs, err := NewObserver(reg, opts...)
	if err != nil {
		panic(err)
	}
	return obs
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return c, fmt.Errorf("metrics: register collector: %w", err)
}

// ObserveResponse implements responder.Observer.
func (o *Observer) ObserveResponse(req *http.Request, obs responder.Observation) {
	if o == nil {
		return
	}
	branch := BranchFailure
	if obs.Success && !obs.Fallback {
		branch = BranchSuccess
	}
	method := ""
	if req != nil {
		method = req.Method
	}

	o.ResponsesTotal.WithLabelValues(branch, strconv.Itoa(obs.Status), method).Inc()
	o.BodySizeBytes.WithLabelValues(branch).Observe(float64(obs.BodySize))
	if obs.Fallback {
		o.FallbacksTotal.Inc()
	}
}

// Handler serves the metrics gathered by g in the Prometheus exposition
// format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
