package router

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	oapiMW "github.com/oapi-codegen/nethttp-middleware"

	"github.com/drblury/respweaver/outcome"
	"github.com/drblury/respweaver/resperr"
	"github.com/drblury/respweaver/responder"
)

var (
	errRequestTimeout = resperr.ErrServiceUnavailable.WithExtra("request_timeout")
	errPanic          = resperr.ErrInternalServerError.WithExtra("panic")
)

// New returns a new *http.ServeMux configured with the provided handler and options.
func New(apiHandle http.Handler, opts ...Option) *http.ServeMux {
	if apiHandle == nil {
		panic("router: handler cannot be nil")
	}

	settings := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(settings)
		}
	}

	finalHandler := applyMiddlewares(apiHandle, settings.middlewareChain())
	mux := http.NewServeMux()
	mux.Handle("/", finalHandler)
	return mux
}

func applyMiddlewares(handler http.Handler, middlewares []Middleware) http.Handler {
	if len(middlewares) == 0 {
		return handler
	}

	for i := len(middlewares) - 1; i >= 0; i-- {
		middleware := middlewares[i]
		if middleware == nil {
			continue
		}
		handler = middleware(handler)
	}

	return handler
}

func oapiMiddleware(swagger *openapi3.T, resp *responder.Responder) Middleware {
	return func(next http.Handler) http.Handler {
		// Clear out the servers array in the swagger spec, that skips validating
		// that server names match. We don't know how this thing will be run.
		swagger.Servers = nil

		// Validate requests against OpenAPI spec
		validatorOptions := &oapiMW.Options{
			Options: openapi3filter.Options{
				AuthenticationFunc: func(c context.Context, input *openapi3filter.AuthenticationInput) error {
					return nil
				},
			},
			ErrorHandler: func(w http.ResponseWriter, message string, statusCode int) {
				if !resperr.ValidStatus(statusCode) {
					statusCode = http.StatusBadRequest
				}
				rejection := resperr.New(statusCode, message).WithExtra("request_validation")
				responder.Fail(resp, w, nil, rejection)
			},
		}

		return oapiMW.OapiRequestValidatorWithOptions(swagger, validatorOptions)(next)
	}
}

// loggingMiddleware logs each request once its response is written, with
// the response status and, for shaped failures, the extra code carried in the
// configured extra header.
func loggingMiddleware(logger *slog.Logger, resp *responder.Responder, quietdownRoutes []string, hideHeaders []string) Middleware {
	logger.Debug("Config for logging middleware",
		"QuietdownRoutes", quietdownRoutes,
		"HideHeaders", hideHeaders,
	)

	quietRoutes := cloneStrings(quietdownRoutes)
	redacted := cloneStrings(hideHeaders)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(quietRoutes, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			rec := &statusRecorder{ResponseWriter: w}
			started := time.Now()
			next.ServeHTTP(rec, r)

			headers := r.Header.Clone()
			redactHeaders(headers, redacted)
			attrs := []any{
				"Path", r.URL.Path,
				"Method", r.Method,
				"Header", headers,
				"Status", rec.status(),
				"Duration", time.Since(started),
			}
			if r.ContentLength > 0 {
				attrs = append(attrs, "ContentLength", r.ContentLength)
			}
			if name, ok := resp.Config().ExtraHeader(); ok {
				if code := w.Header().Get(name); code != "" {
					attrs = append(attrs, "ExtraCode", code)
				}
			}

			logger.DebugContext(r.Context(), "Request", attrs...)
		})
	}
}

// statusRecorder remembers the status written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (w *statusRecorder) WriteHeader(code int) {
	if w.code == 0 {
		w.code = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if w.code == 0 {
		w.code = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *statusRecorder) status() int {
	if w.code == 0 {
		return http.StatusOK
	}
	return w.code
}

// corsMiddleware adds CORS headers based on the provided configuration.
func corsMiddleware(cfg CORSConfig) Middleware {
	headersCopy := cloneStrings(cfg.Headers)
	methodsCopy := cloneStrings(cfg.Methods)
	originsCopy := cloneStrings(cfg.Origins)

	return func(next http.Handler) http.Handler {
		if len(originsCopy) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if allowedOrigin(origin, originsCopy) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(methodsCopy, ","))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(headersCopy, ","))
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// timeoutMiddleware adds timeout handling to requests. The timeout body is
// a shaped failure, assembled on first use so it follows the response
// configuration published at startup.
func timeoutMiddleware(timeout time.Duration, resp *responder.Responder) Middleware {
	return func(next http.Handler) http.Handler {
		build := sync.OnceValues(func() (http.Handler, http.Header) {
			d := responder.Assemble(resp.Config(), outcome.Failure[outcome.Nil](errRequestTimeout))
			return http.TimeoutHandler(next, timeout, string(d.Body)), d.Header
		})

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler, header := build()
			handler.ServeHTTP(&timeoutWriter{ResponseWriter: w, header: header}, r)
		})
	}
}

// timeoutWriter adds the shaped failure headers to the 503 written by
// http.TimeoutHandler, which sets none of its own.
type timeoutWriter struct {
	http.ResponseWriter
	header http.Header
}

func (w *timeoutWriter) WriteHeader(code int) {
	dst := w.ResponseWriter.Header()
	if code == http.StatusServiceUnavailable && dst.Get("Content-Type") == "" {
		for key, values := range w.header {
			dst[key] = append([]string(nil), values...)
		}
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *timeoutWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// recoverMiddleware turns handler panics into shaped 500 failures.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func recoverMiddleware(resp *responder.Responder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				resp.Logger().ErrorContext(r.Context(), "recovered from panic",
					"panic", fmt.Sprint(rec), "path", r.URL.Path, "method", r.Method)
				responder.Fail(resp, w, r, errPanic)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func allowedOrigin(origin string, allowed []string) bool {
	for _, candidate := range allowed {
		if candidate == "*" || candidate == origin {
			return true
		}
	}

	return false
}

func redactHeaders(headers http.Header, hideHeaders []string) {
	for _, header := range hideHeaders {
		canonical := http.CanonicalHeaderKey(header)
		values, exists := headers[canonical]
		if !exists {
			continue
		}

		redactedLen := 0
		for _, value := range values {
			redactedLen += len(value)
		}

		headers[canonical] = []string{fmt.Sprintf("[REDACTED - %d bytes]", redactedLen)}
	}
}
