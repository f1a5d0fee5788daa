package responder

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/drblury/respweaver/jsonutil"
)

// ProblemDetails aligns the serialisation fallback with RFC 9457 problem
// documents.
type ProblemDetails struct {
	Type      string `json:"type,omitempty"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Detail    string `json:"detail,omitempty"`
	Instance  string `json:"instance,omitempty"`
	TraceID   string `json:"traceId,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

const fallbackDetail = "the response could not be serialized"

func (r *Responder) statusMetaFor(status int) statusMeta {
	var (
		meta statusMeta
		ok   bool
	)
	if r != nil {
		meta, ok = r.statusMetadata[status]
	}
	if !ok {
		meta = statusMeta{logLevel: levelForStatus(status)}
	}
	return normalizeStatusMeta(status, meta)
}

func problemDescriptor(req *http.Request, traceID string, meta statusMeta) Descriptor {
	meta = normalizeStatusMeta(http.StatusInternalServerError, meta)
	problem := ProblemDetails{
		Type:      meta.typeURI,
		Title:     meta.title,
		Status:    http.StatusInternalServerError,
		Detail:    fallbackDetail,
		Instance:  requestInstance(req),
		TraceID:   traceID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	body, err := jsonutil.Marshal(problem)
	if err != nil {
		body = fmt.Appendf(nil, `{"title":%q,"status":500,"traceId":%q}`, meta.title, traceID)
	}

	header := make(http.Header, 1)
	header.Set("Content-Type", problemContentType)
	return Descriptor{Body: body, Status: http.StatusInternalServerError, Header: header}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func normalizeStatusMeta(status int, meta statusMeta) statusMeta {
	if meta.title == "" {
		meta.title = http.StatusText(status)
	}
	if meta.logMsg == "" {
		meta.logMsg = meta.title
	}
	if meta.logMsg == "" {
		meta.logMsg = "request failed"
	}
	if meta.typeURI == "" {
		meta.typeURI = fmt.Sprintf("%s/%d", statusDocBaseURL, status)
	}
	return meta
}
