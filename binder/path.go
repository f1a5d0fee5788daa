package binder

import (
	"fmt"
	"net/http"
)

// Path binds path parameters into struct fields using extractor, typically
// StdPathValue or ChiURLParam. Fields are matched by their `path` tag with
// the same rules as Query. Empty parameters leave fields untouched.
func Path(extractor func(r *http.Request, name string) string) Func {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}

		names, err := taggedFields(v, "path", ErrInvalidPath)
		if err != nil {
			return err
		}
		values := make(map[string][]string, len(names))
		for _, name := range names {
			if value := extractor(r, name); value != "" {
				values[name] = []string{value}
			}
		}
		return bindToStruct(v, "path", values, ErrInvalidPath)
	}
}
