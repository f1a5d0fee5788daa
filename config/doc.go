// Package config describes the wire shape of every response: field names,
// whether absent fields are written as null, how success and failure are
// signed, and where the extra message of a failure goes.
//
// The shape is a structural, process wide decision. It is published at most
// once, before the first request is served:
//
//	config.Set(config.New(
//		config.WithStatusSign(config.StringSign("status", "ok", "fail")),
//		config.WithErrorMessageField("message"),
//	))
//
// Reads through Get are lock free and observe the same immutable value for
// the rest of the process lifetime. When nothing was set, the first Get
// publishes Default.
package config
