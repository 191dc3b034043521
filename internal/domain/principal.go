// Package domain holds the core entities of the file vault service.
package domain

import (
	"github.com/rise-and-shine/filevault/pkg/pg"
	"github.com/uptrace/bun"
)

// Principal is a registered account. Its ID is generated at creation,
// never chosen by the caller, and doubles as the name of the principal's
// storage bucket.
type Principal struct {
	bun.BaseModel `bun:"table:principals,alias:p"`

	ID       string `json:"user_id"  bun:"id,pk,type:uuid"`
	Username string `json:"username" bun:"username,notnull,unique"`

	// SecretHash is the bcrypt hash of the principal's secret.
	// It never leaves the service.
	SecretHash string `json:"-" bun:"secret_hash,notnull" mask:"true"`

	timestamps
}

// timestamps aliases pg.BaseModel so it can be embedded alongside
// bun.BaseModel without the two embedded field names colliding.
type timestamps = pg.BaseModel
