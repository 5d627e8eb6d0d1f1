package repo

import (
	"context"
	"errors"

	"veritas/internal/platform/store"
)

type call struct {
	sql  string
	args []any
}

type fakeTag struct{ n int64 }

func (t fakeTag) String() string      { return "INSERT 0 1" }
func (t fakeTag) RowsAffected() int64 { return t.n }

// fakeRows yields canned rows, each a slice assigned in column order
type fakeRows struct {
	data [][]any
	i    int
}

func (r *fakeRows) Next() bool        { r.i++; return r.i <= len(r.data) }
func (r *fakeRows) Err() error        { return nil }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return nil }
func (r *fakeRows) Scan(dst ...any) error {
	row := r.data[r.i-1]
	if len(row) != len(dst) {
		return errors.New("column count mismatch")
	}
	for i, d := range dst {
		if err := assign(d, row[i]); err != nil {
			return err
		}
	}
	return nil
}

type fakeQ struct {
	calls   []call
	rows    [][]any
	execErr error
}

func (f *fakeQ) Exec(_ context.Context, sql string, args ...any) (store.CommandTag, error) {
	f.calls = append(f.calls, call{sql, args})
	if f.execErr != nil {
		return nil, f.execErr
	}
	return fakeTag{n: 1}, nil
}

func (f *fakeQ) Query(_ context.Context, sql string, args ...any) (store.Rows, error) {
	f.calls = append(f.calls, call{sql, args})
	return &fakeRows{data: f.rows}, nil
}

func (f *fakeQ) QueryRow(_ context.Context, sql string, args ...any) store.Row {
	f.calls = append(f.calls, call{sql, args})
	return &fakeRows{data: f.rows, i: 1}
}

type fakeCH struct {
	execs  []string
	table  string
	rows   [][]any
	insErr error
}

func (f *fakeCH) Insert(_ context.Context, table string, rows [][]any) error {
	f.table, f.rows = table, rows
	return f.insErr
}
func (f *fakeCH) Exec(_ context.Context, sql string, _ ...any) error {
	f.execs = append(f.execs, sql)
	return nil
}
func (f *fakeCH) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (f *fakeCH) Ping(context.Context) error                                { return nil }
func (f *fakeCH) Close() error                                              { return nil }
