package store

import "context"

// SQL seams, shaped after pgx so the pool, a tx and test fakes all fit
type (
	Row interface {
		Scan(dest ...any) error
	}

	Rows interface {
		Row
		Next() bool
		Err() error
		Close()
		Columns() []string
	}

	CommandTag interface {
		String() string
		RowsAffected() int64
	}

	// RowQuerier is what a repo binds to
	RowQuerier interface {
		Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
		Query(ctx context.Context, sql string, args ...any) (Rows, error)
		QueryRow(ctx context.Context, sql string, args ...any) Row
	}

	// TxRunner runs fn inside one transaction, committing when fn returns nil
	TxRunner interface {
		RowQuerier
		Tx(ctx context.Context, fn func(q RowQuerier) error) error
	}
)

// Clickhouse is the columnar seam. Insert sends rows, each in column order,
// as a single batch.
type Clickhouse interface {
	Insert(ctx context.Context, table string, rows [][]any) error
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Pinger
	Close() error
}

// Pinger reports readiness
type Pinger interface {
	Ping(ctx context.Context) error
}
