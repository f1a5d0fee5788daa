package binder

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/drblury/respweaver/jsonutil"
)

// DefaultMaxBodyBytes caps the request bodies read by JSON.
const DefaultMaxBodyBytes int64 = 1 << 20

// JSON binds an application/json request body. Requests without a body and
// without a Content-Type are not applicable. Trailing data after the JSON
// value is rejected.
func JSON() Func {
	return JSONLimit(DefaultMaxBodyBytes)
}

// JSONLimit is JSON with a custom body size cap. A non positive limit
// disables the cap.
func JSONLimit(maxBytes int64) Func {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
				return ErrNotApplicable
			}
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, contentType)
		}
		if r.Body == nil {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}

		body := io.Reader(r.Body)
		if maxBytes > 0 {
			body = io.LimitReader(r.Body, maxBytes+1)
		}
		data, err := io.ReadAll(body)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}
		switch {
		case len(data) == 0:
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		case maxBytes > 0 && int64(len(data)) > maxBytes:
			return fmt.Errorf("%w: body exceeds %d bytes", ErrInvalidJSON, maxBytes)
		}

		if err := jsonutil.Unmarshal(data, v); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf("%w: truncated body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}
		return nil
	}
}
