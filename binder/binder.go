package binder

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/drblury/respweaver/resperr"
)

// Func binds part of r into v, which must be a non nil pointer.
type Func func(r *http.Request, v any) error

// Common binding errors.
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidQuery         = errors.New("invalid query parameter")
	ErrInvalidPath          = errors.New("invalid path parameter")

	// ErrNotApplicable tells the caller that the binder found nothing to
	// bind, for example a JSON binder on a request without a body. It is
	// not a rejection.
	ErrNotApplicable = errors.New("binder not applicable")
)

// StdPathValue extracts path parameters registered on a net/http ServeMux
// pattern such as "GET /projects/{id}".
func StdPathValue(r *http.Request, name string) string {
	return r.PathValue(name)
}

// ChiURLParam extracts path parameters registered on a chi route.
func ChiURLParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

var rejections = []struct {
	target error
	base   resperr.HTTPError
	extra  string
}{
	{ErrUnsupportedMediaType, resperr.ErrUnsupportedMediaType, "unsupported_media_type"},
	{ErrMissingContentType, resperr.ErrUnsupportedMediaType, "missing_content_type"},
	{ErrInvalidJSON, resperr.ErrBadRequest, "invalid_json"},
	{ErrInvalidQuery, resperr.ErrBadRequest, "invalid_query"},
	{ErrInvalidPath, resperr.ErrBadRequest, "invalid_path"},
}

// Rejection converts a binder error into a failure. Binding errors map to
// 400 or 415 with a machine readable extra code; the binder error stays
// available through errors.Is and in the log message. Other errors go
// through resperr.FromError.
func Rejection(err error) resperr.HTTPError {
	for _, rej := range rejections {
		if errors.Is(err, rej.target) {
			return resperr.Wrap(rej.base.Code, rej.base.Message, err).WithExtra(rej.extra)
		}
	}
	return resperr.FromError(err)
}
