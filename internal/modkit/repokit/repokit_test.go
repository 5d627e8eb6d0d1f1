package repokit

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"veritas/internal/platform/testkit"
)

// script records statements and whether they ran inside a tx
type script struct {
	log     []string
	failOn  string
	inTx    bool
	txCalls int
}

func (s *script) Exec(_ context.Context, sql string, _ ...any) (CommandTag, error) {
	prefix := "pool: "
	if s.inTx {
		prefix = "tx: "
	}
	s.log = append(s.log, prefix+sql)
	if sql == s.failOn {
		return nil, errors.New("exec failed")
	}
	return nil, nil
}

func (s *script) Query(context.Context, string, ...any) (Rows, error) { return nil, nil }
func (s *script) QueryRow(context.Context, string, ...any) Row        { return nil }

func (s *script) Tx(_ context.Context, fn func(Queryer) error) error {
	s.txCalls++
	s.inTx = true
	defer func() { s.inTx = false }()
	return fn(s)
}

type countRepo struct{ q Queryer }

func (r countRepo) Touch(ctx context.Context) error {
	_, err := r.q.Exec(ctx, "update predictions set seen = true")
	return err
}

func TestBindFuncAndWithTx(t *testing.T) {
	s := &script{}
	var b Binder[countRepo] = BindFunc[countRepo](func(q Queryer) countRepo { return countRepo{q} })

	err := WithTx(context.Background(), s, func(q Queryer) error {
		return b.Bind(q).Touch(context.Background())
	})
	if err != nil {
		t.Fatal(err)
	}
	if s.txCalls != 1 || len(s.log) != 1 || s.log[0] != "tx: update predictions set seen = true" {
		t.Fatalf("tx=%d log=%v", s.txCalls, s.log)
	}
}

func TestWithBeginHooks_RunsHooksFirst(t *testing.T) {
	s := &script{}
	var order []string
	mark := func(name string) BeginHook {
		return func(context.Context, Queryer) error {
			order = append(order, name)
			return nil
		}
	}
	runner := WithBeginHooks(s, mark("a"), StatementTimeout(1500*time.Millisecond), mark("b"))

	err := runner.Tx(context.Background(), func(q Queryer) error {
		order = append(order, "fn")
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(order) != "[a b fn]" {
		t.Fatalf("order = %v", order)
	}
	if len(s.log) != 1 || s.log[0] != "tx: set local statement_timeout = 1500" {
		t.Fatalf("log = %v", s.log)
	}

	// plain statements bypass hooks
	_, _ = runner.Exec(context.Background(), "select 1")
	if s.log[1] != "pool: select 1" {
		t.Fatalf("log = %v", s.log)
	}
}

func TestWithBeginHooks_HookErrorStopsTx(t *testing.T) {
	s := &script{failOn: "set local statement_timeout = 2000"}
	runner := WithBeginHooks(s, StatementTimeout(2*time.Second))

	ran := false
	err := runner.Tx(context.Background(), func(Queryer) error { ran = true; return nil })
	if err == nil || ran {
		t.Fatalf("err=%v ran=%v", err, ran)
	}
}

func TestStatementTimeout_NonPositiveIsNoop(t *testing.T) {
	s := &script{}
	for _, d := range []time.Duration{0, -time.Second, 500 * time.Microsecond} {
		if err := StatementTimeout(d)(context.Background(), s); err != nil {
			t.Fatal(err)
		}
	}
	if len(s.log) != 0 {
		t.Fatalf("log = %v", s.log)
	}
}

type guardFunc func(context.Context) error

func (g guardFunc) Guard(ctx context.Context) error { return g(ctx) }

func TestMustGuard(t *testing.T) {
	var deadline time.Time
	MustGuard(context.Background(), guardFunc(func(ctx context.Context) error {
		deadline, _ = ctx.Deadline()
		return nil
	}))
	if deadline.IsZero() || time.Until(deadline) > DefaultGuardTimeout {
		t.Fatalf("deadline = %v", deadline)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	MustGuard(ctx, guardFunc(func(inner context.Context) error {
		deadline, _ = inner.Deadline()
		return nil
	}))
	if time.Until(deadline) < 30*time.Second {
		t.Fatal("caller deadline must be kept")
	}

	testkit.MustPanic(t, func() {
		MustGuard(context.Background(), guardFunc(func(context.Context) error { return errors.New("pg: down") }))
	})
}
