package pg_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rise-and-shine/filevault/pkg/pg"
	"github.com/stretchr/testify/assert"
)

func uniqueViolation(constraint string) error {
	return fmt.Errorf("insert failed: %w", &pgconn.PgError{
		Code:           "23505",
		ConstraintName: constraint,
	})
}

func TestIsConflict(t *testing.T) {
	assert.True(t, pg.IsConflict(uniqueViolation("principals_username_key")))
	assert.False(t, pg.IsConflict(&pgconn.PgError{Code: "23503"}))
	assert.False(t, pg.IsConflict(errors.New("broken pipe")))
	assert.False(t, pg.IsConflict(nil))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, pg.IsNotFound(sql.ErrNoRows))
	assert.True(t, pg.IsNotFound(fmt.Errorf("query: %w", sql.ErrNoRows)))
	assert.False(t, pg.IsNotFound(errors.New("connection reset")))
}

func TestConstraintName(t *testing.T) {
	assert.Equal(t, "principals_username_key", pg.ConstraintName(uniqueViolation("principals_username_key")))
	assert.Empty(t, pg.ConstraintName(&pgconn.PgError{Code: "23503", ConstraintName: "fk_owner"}))
	assert.Empty(t, pg.ConstraintName(errors.New("broken pipe")))
}
