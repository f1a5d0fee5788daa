// Package resperr defines the capability a failure type must satisfy to be
// carried by an outcome and rendered as a shaped error response.
//
// Only LogMessage is required. The remaining behaviour is opted into by
// implementing the small optional interfaces in this package; the accessor
// functions (RespMessage, HTTPCode, ExtraMessage) fall back to the documented
// defaults when a type does not implement them.
//
//	type NotFound struct{ ID string }
//
//	func (e NotFound) LogMessage() string { return "record " + e.ID + " missing" }
//	func (e NotFound) RespMessage() string { return "not found" }
//	func (e NotFound) HTTPCode() int       { return http.StatusNotFound }
//	func (e NotFound) ExtraMessage() any   { return 40401 }
//
// HTTPError is a ready-made implementation of every capability and is what
// the binder, router and probe packages use for their own rejections.
package resperr
