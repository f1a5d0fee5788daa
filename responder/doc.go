// Package responder turns handler outcomes into HTTP responses.
//
// Assembly is a pure function from a configuration snapshot and a Result to
// a Descriptor holding the body bytes, the status and the headers. The
// Responder wraps it for net/http: it logs failures, reports to an optional
// Observer and writes the descriptor.
//
// A payload that cannot be serialised never reaches the client half written.
// Assembly substitutes a 500 response carrying an RFC 9457 problem document
// with a trace identifier, and the Responder logs the encoding error under
// the same identifier.
package responder
