// Package middleware provides Fiber middleware components for the HTTP server.
//
// Each middleware declares a Priority value that determines its execution
// order (higher values run earlier):
//
//   - Recovery (1000): catches panics in the middleware chain
//   - Timeout (800): applies a deadline to request contexts
//   - MetaInject (700): injects request metadata into the context
//   - Logger (500): logs request and response details
//   - ErrorHandler (400): converts errors to standardized responses
package middleware
