// Package router wraps http.ServeMux with panic recovery, OpenAPI
// validation, CORS, timeouts, and logging defaults. Rejections produced by
// the chain are rendered through a responder, so validation failures and
// timeouts use the same wire shape as handler outcomes.
// ExampleNew_customOptions demonstrates how to combine built-in and custom
// middlewares.
package router
