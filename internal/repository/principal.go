// Package repository implements the credential directory on PostgreSQL.
package repository

import (
	"context"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/filevault/internal/domain"
	"github.com/rise-and-shine/filevault/pkg/repogen"
	"github.com/uptrace/bun"
)

// PrincipalFilter narrows principal queries. Zero-value fields are ignored.
type PrincipalFilter struct {
	ID       string
	Username string
}

// PrincipalRepo stores principals in the principals table.
//
// Username uniqueness is enforced by the principals_username_key unique
// index: a violation on insert surfaces as a USERNAME_TAKEN conflict, so
// there is no check-then-create window between concurrent registrations.
type PrincipalRepo struct {
	*repogen.PgRepo[domain.Principal, PrincipalFilter]
}

// NewPrincipalRepo creates a PrincipalRepo backed by the given bun database.
func NewPrincipalRepo(idb bun.IDB) *PrincipalRepo {
	return &PrincipalRepo{
		PgRepo: repogen.NewPgRepo[domain.Principal, PrincipalFilter](
			idb,
			"principal",
			domain.CodeUserNotFound,
			map[string]string{
				"principals_username_key": domain.CodeUsernameTaken,
			},
			applyFilter,
		),
	}
}

// GetByID returns the principal with the given ID, or a USER_NOT_FOUND error.
func (r *PrincipalRepo) GetByID(ctx context.Context, id string) (*domain.Principal, error) {
	p, err := r.Get(ctx, PrincipalFilter{ID: id})
	if err != nil {
		return nil, errx.Wrap(err)
	}
	return p, nil
}

// FindByUsername returns the principal with the given username, or nil
// when no such principal exists.
func (r *PrincipalRepo) FindByUsername(ctx context.Context, username string) (*domain.Principal, error) {
	p, err := r.FirstOrNil(ctx, PrincipalFilter{Username: username})
	if err != nil {
		return nil, errx.Wrap(err)
	}
	return p, nil
}

func applyFilter(q *bun.SelectQuery, f PrincipalFilter) *bun.SelectQuery {
	if f.ID != "" {
		q = q.Where("p.id = ?", f.ID)
	}
	if f.Username != "" {
		q = q.Where("p.username = ?", f.Username)
	}
	return q
}
