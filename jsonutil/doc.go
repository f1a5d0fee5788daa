// Package jsonutil wraps sonic for the encoding work done by the responder
// and binders, and provides ObjectEncoder for writing JSON objects whose
// field count is declared up front. See Example and ExampleObjectEncoder.
package jsonutil
