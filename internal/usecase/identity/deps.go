// Package identity contains the registration and authentication use cases.
package identity

import (
	"context"

	"github.com/rise-and-shine/filevault/internal/domain"
)

// Directory is the credential directory consumed by the identity use cases.
// Each query is a distinct typed operation; there is no polymorphic filter.
type Directory interface {
	// Create persists a new principal. A username collision surfaces as a
	// USERNAME_TAKEN conflict error, enforced atomically by the directory's
	// write path.
	Create(ctx context.Context, p *domain.Principal) (*domain.Principal, error)

	// GetByID returns the principal with the given ID, or a USER_NOT_FOUND error.
	GetByID(ctx context.Context, id string) (*domain.Principal, error)

	// FindByUsername returns the principal with the given username, or nil
	// when no such principal exists.
	FindByUsername(ctx context.Context, username string) (*domain.Principal, error)
}

// Provisioner allocates the storage namespace owned by a principal.
type Provisioner interface {
	// Provision creates the namespace for the given principal ID.
	// Provisioning an already-existing namespace is a safe no-op.
	Provision(ctx context.Context, namespaceID string) error
}
