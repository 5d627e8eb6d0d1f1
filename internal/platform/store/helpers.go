package store

import (
	"context"
	"errors"
	"fmt"

	perr "veritas/internal/platform/errors"
)

var errTooMany = errors.New("store: more rows than expected")

// ExecOne runs a write that must touch exactly one row
func ExecOne(ctx context.Context, q RowQuerier, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if n := tag.RowsAffected(); n != 1 {
		return fmt.Errorf("store: %d rows affected, want 1", n)
	}
	return nil
}

// One scans the single row of a query. No row is perr.ErrNotFound, more than
// one is an error.
func One[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) (T, error) {
	var zero T
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return zero, err
	}
	out, err := collect(rows, scan, 1)
	switch {
	case err != nil:
		return zero, err
	case len(out) == 0:
		return zero, perr.ErrNotFound
	}
	return out[0], nil
}

// Many scans every row of a query
func Many[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scan, 0)
}

// collect drains and closes rows, limit > 0 caps the row count
func collect[T any](rows Rows, scan func(Row) (T, error), limit int) ([]T, error) {
	defer rows.Close()
	var out []T
	for rows.Next() {
		if limit > 0 && len(out) == limit {
			return nil, errTooMany
		}
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
