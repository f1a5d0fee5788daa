package binder

import "net/http"

// Query binds URL query parameters into struct fields.
//
// Fields are matched by their `query` tag, or by the lower cased field name
// when untagged; `query:"-"` skips a field. Strings, integers, floats,
// bools, pointers to those and slices are supported. Slices accept repeated
// parameters and comma separated values.
func Query() Func {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
