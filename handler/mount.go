package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mount registers h on a chi router.
func Mount(r chi.Router, method, pattern string, h http.Handler) {
	r.Method(method, pattern, h)
}

// Handle registers h on a ServeMux. pattern uses the Go 1.22 syntax, for
// example "GET /projects/{id}", so binder.StdPathValue can read its
// wildcards.
func Handle(mux *http.ServeMux, pattern string, h http.Handler) {
	mux.Handle(pattern, h)
}
