// Package probe converts database, HTTP, and custom ping functions into
// readiness/liveness helpers. Failures are reported as *Error, which carries
// the probe name and can be returned as a response failure directly.
//
// HTTP probes can check another service that answers with the same response
// shape: WithEnvelope decodes the body and fails the probe when the envelope
// reports failure. See ExampleNewPingProbe, ExampleNewHTTPProbe, and
// ExampleNewHTTPProbe_withEnvelope for quick-start patterns.
package probe
