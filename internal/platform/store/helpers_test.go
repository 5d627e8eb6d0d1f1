package store

import (
	"context"
	"errors"
	"testing"

	perr "veritas/internal/platform/errors"
)

type fakeTag int64

func (f fakeTag) String() string      { return "INSERT 0" }
func (f fakeTag) RowsAffected() int64 { return int64(f) }

type fakeRows struct {
	data   [][]any
	idx    int
	err    error
	closed bool
}

func newRows(data ...[]any) *fakeRows { return &fakeRows{data: data, idx: -1} }

func (r *fakeRows) Next() bool {
	if r.err != nil {
		return false
	}
	r.idx++
	return r.idx < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.idx]
	if len(dest) != len(row) {
		return errors.New("dest len mismatch")
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int:
			*p = row[i].(int)
		case *string:
			*p = row[i].(string)
		default:
			return errors.New("unsupported dest")
		}
	}
	return nil
}

func (r *fakeRows) Err() error        { return r.err }
func (r *fakeRows) Close()            { r.closed = true }
func (r *fakeRows) Columns() []string { return nil }

type fakeRow struct{ rows *fakeRows }

func (r fakeRow) Scan(dest ...any) error {
	if !r.rows.Next() {
		return perr.ErrNotFound
	}
	return r.rows.Scan(dest...)
}

type fakeQuerier struct {
	tag      CommandTag
	execErr  error
	rows     *fakeRows
	queryErr error
	lastSQL  string
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, _ ...any) (CommandTag, error) {
	f.lastSQL = sql
	return f.tag, f.execErr
}

func (f *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (Rows, error) {
	f.lastSQL = sql
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) Row {
	f.lastSQL = sql
	return fakeRow{rows: f.rows}
}

func scanPair(r Row) (struct {
	N int
	S string
}, error) {
	var out struct {
		N int
		S string
	}
	err := r.Scan(&out.N, &out.S)
	return out, err
}

func TestExecOne(t *testing.T) {
	ctx := context.Background()
	if err := ExecOne(ctx, &fakeQuerier{tag: fakeTag(1)}, "insert"); err != nil {
		t.Fatalf("ExecOne(1 row): %v", err)
	}
	if err := ExecOne(ctx, &fakeQuerier{tag: fakeTag(0)}, "insert"); err == nil {
		t.Fatalf("expected error for zero rows")
	}
	boom := errors.New("boom")
	if err := ExecOne(ctx, &fakeQuerier{execErr: boom}, "insert"); !errors.Is(err, boom) {
		t.Fatalf("expected exec error, got %v", err)
	}
}

func TestOne(t *testing.T) {
	ctx := context.Background()

	q := &fakeQuerier{rows: newRows([]any{1, "a"})}
	got, err := One(ctx, q, scanPair, "select")
	if err != nil || got.N != 1 || got.S != "a" {
		t.Fatalf("One = %+v, %v", got, err)
	}
	if !q.rows.closed {
		t.Fatalf("rows not closed")
	}

	q = &fakeQuerier{rows: newRows()}
	if _, err := One(ctx, q, scanPair, "select"); !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	q = &fakeQuerier{rows: newRows([]any{1, "a"}, []any{2, "b"})}
	if _, err := One(ctx, q, scanPair, "select"); !errors.Is(err, errTooMany) {
		t.Fatalf("expected too many rows error, got %v", err)
	}

	iterErr := errors.New("iter")
	q = &fakeQuerier{rows: &fakeRows{idx: -1, err: iterErr}}
	if _, err := One(ctx, q, scanPair, "select"); !errors.Is(err, iterErr) {
		t.Fatalf("expected iterator error, got %v", err)
	}
}

func TestMany(t *testing.T) {
	ctx := context.Background()

	q := &fakeQuerier{rows: newRows([]any{1, "a"}, []any{2, "b"})}
	got, err := Many(ctx, q, scanPair, "select")
	if err != nil || len(got) != 2 || got[1].S != "b" {
		t.Fatalf("Many = %+v, %v", got, err)
	}

	q = &fakeQuerier{rows: newRows()}
	got, err = Many(ctx, q, scanPair, "select")
	if err != nil || len(got) != 0 {
		t.Fatalf("Many(empty) = %+v, %v", got, err)
	}

	boom := errors.New("boom")
	if _, err := Many(ctx, &fakeQuerier{queryErr: boom}, scanPair, "select"); !errors.Is(err, boom) {
		t.Fatalf("expected query error, got %v", err)
	}
}
