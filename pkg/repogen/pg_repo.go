package repogen

import (
	"context"
	"fmt"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/filevault/pkg/pg"
	"github.com/uptrace/bun"
)

const codeMultipleRowsFound = "MULTIPLE_ROWS_FOUND"

// PgRepo implements Repo on top of a PostgreSQL database using the bun ORM.
type PgRepo[E any, F any] struct {
	idb        bun.IDB
	entityName string

	notFoundCode string

	// conflictCodesMap maps PostgreSQL constraint names to error codes,
	// e.g. map["principals_username_key"] = "USERNAME_TAKEN".
	conflictCodesMap map[string]string

	filterFunc func(q *bun.SelectQuery, filters F) *bun.SelectQuery
}

// NewPgRepo creates a bun-backed repository for entity E with filter type F.
func NewPgRepo[E any, F any](
	idb bun.IDB,
	entityName string,
	notFoundCode string,
	conflictCodesMap map[string]string,
	filterFunc func(q *bun.SelectQuery, filters F) *bun.SelectQuery,
) *PgRepo[E, F] {
	return &PgRepo[E, F]{
		idb:              idb,
		entityName:       entityName,
		notFoundCode:     notFoundCode,
		conflictCodesMap: conflictCodesMap,
		filterFunc:       filterFunc,
	}
}

func (r *PgRepo[E, F]) Create(ctx context.Context, entity *E) (*E, error) {
	q := r.idb.NewInsert().Model(entity).Returning("*")
	_, err := q.Exec(ctx)
	if err != nil {
		if code, exists := r.conflictCodesMap[pg.ConstraintName(err)]; exists {
			return nil, errx.New(
				fmt.Sprintf("conflict while creating %s", r.entityName),
				errx.WithCode(code),
				errx.WithType(errx.T_Conflict),
				errx.WithDetails(pg.GetPgErrorDetails(err, q)),
			)
		}
		return nil, errx.Wrap(err, errx.WithDetails(pg.GetPgErrorDetails(err, q)))
	}

	return entity, nil
}

func (r *PgRepo[E, F]) Get(ctx context.Context, filters F) (*E, error) {
	entities := make([]E, 0)
	q := r.idb.NewSelect().Model(&entities).Limit(2) //nolint:mnd // limit 2 to detect multiple rows
	q = r.filterFunc(q, filters)

	err := q.Scan(ctx)
	if err != nil {
		return nil, errx.Wrap(err, errx.WithDetails(pg.GetPgErrorDetails(err, q)))
	}

	if len(entities) == 0 {
		return nil, errx.New(
			fmt.Sprintf("no %s found", r.entityName),
			errx.WithCode(r.notFoundCode),
			errx.WithType(errx.T_NotFound),
		)
	}

	if len(entities) > 1 {
		return nil, errx.New(
			fmt.Sprintf("multiple %s found", r.entityName),
			errx.WithCode(codeMultipleRowsFound),
			errx.WithDetails(pg.GetPgErrorDetails(err, q)),
		)
	}

	return &entities[0], nil
}

func (r *PgRepo[E, F]) FirstOrNil(ctx context.Context, filters F) (*E, error) {
	entities := make([]E, 0)
	q := r.idb.NewSelect().Model(&entities).Limit(1)
	q = r.filterFunc(q, filters)

	err := q.Scan(ctx)
	if err != nil {
		return nil, errx.Wrap(err, errx.WithDetails(pg.GetPgErrorDetails(err, q)))
	}

	if len(entities) == 0 {
		return nil, nil //nolint:nilnil // intentional, as the function name indicates
	}

	return &entities[0], nil
}

func (r *PgRepo[E, F]) List(ctx context.Context, filters F) ([]E, error) {
	entities := make([]E, 0)
	q := r.idb.NewSelect().Model(&entities)
	q = r.filterFunc(q, filters)

	err := q.Scan(ctx)
	if err != nil {
		return nil, errx.Wrap(err, errx.WithDetails(pg.GetPgErrorDetails(err, q)))
	}

	return entities, nil
}

func (r *PgRepo[E, F]) Exists(ctx context.Context, filters F) (bool, error) {
	q := r.idb.NewSelect().Model((*E)(nil))
	q = r.filterFunc(q, filters)

	exists, err := q.Exists(ctx)
	if err != nil {
		return false, errx.Wrap(err, errx.WithDetails(pg.GetPgErrorDetails(err, q)))
	}

	return exists, nil
}
