package ch

import (
	"context"
	"errors"
	"testing"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

type fakeConn struct {
	execSQL  string
	execArgs []any
	pingErr  error
	queryErr error
	closed   bool
}

func (f *fakeConn) Exec(_ context.Context, q string, args ...any) error {
	f.execSQL, f.execArgs = q, args
	return nil
}
func (f *fakeConn) Query(context.Context, string, ...any) (driver.Rows, error) {
	return nil, f.queryErr
}
func (f *fakeConn) Ping(context.Context) error { return f.pingErr }
func (f *fakeConn) Close() error               { f.closed = true; return nil }

type fakeBatch struct {
	rows      [][]any
	appendErr error
	sent      bool
	aborted   bool
}

func (b *fakeBatch) Append(v ...any) error {
	if b.appendErr != nil {
		return b.appendErr
	}
	b.rows = append(b.rows, v)
	return nil
}
func (b *fakeBatch) Abort() error { b.aborted = true; return nil }
func (b *fakeBatch) Send() error  { b.sent = true; return nil }

func newFake(b *fakeBatch) (*CH, *fakeConn, *string) {
	fc := &fakeConn{}
	var query string
	return &CH{
		conn: fc,
		prepare: func(_ context.Context, q string) (batch, error) {
			query = q
			return b, nil
		},
	}, fc, &query
}

func TestInsert_SendsOneBatch(t *testing.T) {
	b := &fakeBatch{}
	c, _, q := newFake(b)
	rows := [][]any{{"a", 1}, {"b", 2}}
	if err := c.Insert(context.Background(), "prediction_events", rows); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if *q != "INSERT INTO prediction_events" {
		t.Fatalf("query = %q", *q)
	}
	if !b.sent || len(b.rows) != 2 {
		t.Fatalf("batch not sent: %+v", b)
	}
}

func TestInsert_EmptyIsNoop(t *testing.T) {
	b := &fakeBatch{}
	c, _, q := newFake(b)
	if err := c.Insert(context.Background(), "t", nil); err != nil {
		t.Fatal(err)
	}
	if *q != "" || b.sent {
		t.Fatalf("empty insert should not prepare a batch")
	}
}

func TestInsert_AppendErrorAborts(t *testing.T) {
	b := &fakeBatch{appendErr: errors.New("bad column")}
	c, _, _ := newFake(b)
	err := c.Insert(context.Background(), "t", [][]any{{1}})
	if err == nil || !b.aborted || b.sent {
		t.Fatalf("expected abort, err=%v batch=%+v", err, b)
	}
}

func TestExecPingQueryClose(t *testing.T) {
	c, fc, _ := newFake(&fakeBatch{})
	ctx := context.Background()
	if err := c.Exec(ctx, "CREATE TABLE x", 1); err != nil || fc.execSQL != "CREATE TABLE x" || len(fc.execArgs) != 1 {
		t.Fatalf("Exec not delegated: %v %+v", err, fc)
	}
	fc.pingErr = errors.New("down")
	if err := c.Ping(ctx); err == nil {
		t.Fatalf("expected ping error")
	}
	fc.queryErr = errors.New("syntax")
	if _, err := c.Query(ctx, "SELECT"); err == nil {
		t.Fatalf("expected query error")
	}
	if err := c.Close(); err != nil || !fc.closed {
		t.Fatalf("Close not delegated")
	}
}

func TestNilClient(t *testing.T) {
	var c *CH
	if err := c.Ping(context.Background()); err == nil {
		t.Fatalf("expected error from nil client")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close on nil: %v", err)
	}
}

func TestOpen_BadDSN(t *testing.T) {
	if _, err := Open(context.Background(), Config{URL: "://nope"}); err == nil {
		t.Fatalf("expected dsn error")
	}
}

func TestBuildClientInfo(t *testing.T) {
	ci := BuildClientInfo("veritas", " api ")
	if len(ci.Products) != 4 || ci.Products[0].Name != "veritas" || ci.Products[0].Version != "api" {
		t.Fatalf("unexpected client info: %+v", ci.Products)
	}
}
