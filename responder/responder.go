package responder

import (
	"log/slog"
	"net/http"

	"github.com/drblury/respweaver/config"
)

const (
	problemContentType = "application/problem+json"
	statusDocBaseURL   = "https://httpstatuses.io"
)

// ResponderOption follows the functional options pattern used by
// NewResponder to configure optional collaborators.
type ResponderOption func(*Responder)

type statusMeta struct {
	typeURI  string
	title    string
	logLevel slog.Level
	logMsg   string
}

// StatusMetadata allows callers to customise how failures with a particular
// HTTP status are logged. TypeURI and Title of the 500 entry are used in the
// serialisation fallback document.
type StatusMetadata struct {
	TypeURI  string
	Title    string
	LogLevel slog.Level
	LogMsg   string
}

// Observation describes one written response.
type Observation struct {
	Success  bool
	Status   int
	BodySize int
	// Fallback is true when the payload could not be serialised and the
	// problem document was sent instead.
	Fallback bool
}

// Observer is notified after every response assembled by a Responder.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveResponse(req *http.Request, obs Observation)
}

// Responder assembles outcomes under the response configuration, logs
// failures with their log message and writes the result.
type Responder struct {
	log            *slog.Logger
	cfg            *config.Config
	observer       Observer
	statusMetadata map[int]statusMeta
}

// NewResponder constructs a Responder with default status metadata, the
// global slog logger and the process wide configuration from config.Get.
func NewResponder(opts ...ResponderOption) *Responder {
	r := &Responder{
		log:            slog.Default(),
		statusMetadata: defaultStatusMetadata(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// WithLogger injects a custom slog logger for failure and encoding reports.
func WithLogger(logger *slog.Logger) ResponderOption {
	return func(r *Responder) {
		if logger != nil {
			r.log = logger
		}
	}
}

// WithConfig pins the response configuration instead of reading the process
// wide one. Meant for tests and for services that embed several APIs.
func WithConfig(cfg config.Config) ResponderOption {
	return func(r *Responder) {
		r.cfg = &cfg
	}
}

// WithObserver installs an observer, typically a metrics collector.
func WithObserver(obs Observer) ResponderOption {
	return func(r *Responder) {
		r.observer = obs
	}
}

// WithStatusMetadata overrides the metadata used for a specific HTTP status
// code.
func WithStatusMetadata(status int, meta StatusMetadata) ResponderOption {
	return func(r *Responder) {
		if r.statusMetadata == nil {
			r.statusMetadata = make(map[int]statusMeta)
		}
		level := meta.LogLevel
		if level == 0 {
			level = levelForStatus(status)
		}
		r.statusMetadata[status] = normalizeStatusMeta(status, statusMeta{
			typeURI:  meta.TypeURI,
			title:    meta.Title,
			logLevel: level,
			logMsg:   meta.LogMsg,
		})
	}
}

// Logger returns the slog logger used internally by the responder.
func (r *Responder) Logger() *slog.Logger {
	return r.logger()
}

// Config returns the configuration responses are assembled with.
func (r *Responder) Config() config.Config {
	if r == nil || r.cfg == nil {
		return config.Get()
	}
	return *r.cfg
}

func (r *Responder) logger() *slog.Logger {
	if r == nil || r.log == nil {
		return slog.Default()
	}
	return r.log
}

func defaultStatusMetadata() map[int]statusMeta {
	return map[int]statusMeta{
		http.StatusInternalServerError: {title: http.StatusText(http.StatusInternalServerError), logLevel: slog.LevelError, logMsg: "Internal Server Error"},
		http.StatusBadRequest:          {title: http.StatusText(http.StatusBadRequest), logLevel: slog.LevelWarn, logMsg: "Bad Request"},
		http.StatusUnauthorized:        {title: http.StatusText(http.StatusUnauthorized), logLevel: slog.LevelWarn, logMsg: "Unauthorized"},
	}
}
