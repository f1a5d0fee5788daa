// Package info exposes build metadata, health probes and the OpenAPI
// document.
//
// Status, liveness, readiness and version are outcome handlers wrapped with
// handler.Wrap, so their responses follow the published response shape and
// probe failures surface as 503 failures naming the probe in the extra
// message. Mount and Register attach all endpoints to a chi router or a
// ServeMux.
//
// See ExampleInfoHandler_full for a runnable wiring of the handler and probes.
package info
