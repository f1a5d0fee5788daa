// Package binder extracts typed request data from *http.Request values.
//
// A Func fills a pointer to a request struct from one part of the request:
// the JSON body, the query string or the path parameters of the host
// router. Binders are composed by the handler package; a failing binder
// stops the handler and its error is turned into a failure outcome, usually
// with Rejection.
//
//	type GetProject struct {
//		ID     string `path:"id"`
//		Expand bool   `query:"expand"`
//	}
//
//	binders := []binder.Func{binder.Path(binder.ChiURLParam), binder.Query()}
package binder
