// Package repogen provides generic repository building blocks for Postgres.
//
// It defines small generic interfaces for read-only and read-write
// repositories plus a bun-backed implementation that translates PostgreSQL
// constraint violations into typed errx errors.
package repogen

import (
	"context"
)

// ReadOnlyRepo is a generic read-only repository for entities of type E
// with filter type F.
type ReadOnlyRepo[E any, F any] interface {
	// Get retrieves exactly one entity matching the provided filters.
	// Returns a not-found error when no entity matches.
	Get(ctx context.Context, filters F) (*E, error)
	// FirstOrNil returns the first entity matching the filters, or nil if none found.
	FirstOrNil(ctx context.Context, filters F) (*E, error)
	// List returns all entities matching the provided filters.
	List(ctx context.Context, filters F) ([]E, error)
	// Exists checks if any entity matches the filters.
	Exists(ctx context.Context, filters F) (bool, error)
}

// Repo is a generic read-write repository for entities of type E with
// filter type F.
type Repo[E any, F any] interface {
	ReadOnlyRepo[E, F]
	// Create inserts a new entity and returns the created entity or an error.
	// Unique constraint violations surface as conflict errors with the code
	// registered for the violated constraint.
	Create(ctx context.Context, entity *E) (*E, error)
}
