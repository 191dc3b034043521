// Package ucdef defines the use case contracts shared across the service.
package ucdef

import "context"

// UserAction represents a synchronous business operation triggered by user
// interaction. It handles user-initiated requests arriving over HTTP and
// returns an immediate response.
//
// Type parameters:
//   - I: input data type (request payload)
//   - O: output data type (result of the operation)
//
// Characteristics:
//   - Synchronous execution with immediate response
//   - Requires comprehensive input validation
//   - Errors are returned directly to the caller as an HTTP response
type UserAction[I, O any] interface {
	// OperationID returns a unique identifier for the use case.
	OperationID() string

	// Execute executes the use case.
	Execute(ctx context.Context, in I) (O, error)
}
