// Package service contains journal workflows
package service

import (
	"context"
	"errors"
	"time"

	"veritas/internal/modkit/repokit"
	perr "veritas/internal/platform/errors"
	"veritas/internal/services/journal/domain"
	"veritas/internal/services/journal/repo"
)

// Service defines the journal service contract
type Service interface {
	domain.WriterPort
	domain.ReaderPort
	EnsureSchema(ctx context.Context) error
}

// DefaultTimeout bounds one Record call when none is configured
const DefaultTimeout = 2 * time.Second

// Svc fans writes out to postgres and clickhouse, reads come from postgres.
// Either store may be absent.
type Svc struct {
	db      repokit.TxRunner
	binder  repokit.Binder[repo.Repo]
	sink    repo.Sink
	timeout time.Duration
}

// New constructs a journal service. db and sink may be nil, binder is required with db.
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], sink repo.Sink, timeout time.Duration) *Svc {
	if db != nil && binder == nil {
		panic("journal.Service requires a non nil Repo binder")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if db != nil {
		db = repokit.WithBeginHooks(db, repokit.StatementTimeout(timeout))
	}
	return &Svc{db: db, binder: binder, sink: sink, timeout: timeout}
}

// Enabled reports whether any store is wired
func (s *Svc) Enabled() bool { return s.db != nil || s.sink != nil }

// EnsureSchema creates the journal tables where missing
func (s *Svc) EnsureSchema(ctx context.Context) error {
	var errs []error
	if s.db != nil {
		err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
			return s.binder.Bind(q).EnsureSchema(ctx)
		})
		if err != nil {
			errs = append(errs, perr.FromPostgres(err, "journal schema"))
		}
	}
	if s.sink != nil {
		if err := s.sink.EnsureSchema(ctx); err != nil {
			errs = append(errs, perr.Wrap(err, perr.ErrorCodeDB, "journal clickhouse schema"))
		}
	}
	return errors.Join(errs...)
}

// Record writes e to every configured store, failures are joined
func (s *Svc) Record(ctx context.Context, e domain.Entry) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var errs []error
	if s.db != nil {
		err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
			return s.binder.Bind(q).Insert(ctx, e)
		})
		if err != nil {
			errs = append(errs, perr.FromPostgres(err, "journal insert"))
		}
	}
	if s.sink != nil {
		if err := s.sink.Append(ctx, e); err != nil {
			errs = append(errs, perr.Wrap(err, perr.ErrorCodeDB, "journal append"))
		}
	}
	return errors.Join(errs...)
}

// Recent lists the newest entries, limit is clamped to [1, MaxLimit]
func (s *Svc) Recent(ctx context.Context, limit int) ([]domain.EntryDTO, error) {
	if s.db == nil {
		return nil, perr.Unavailablef("journal is not configured")
	}
	switch {
	case limit <= 0:
		limit = domain.DefaultLimit
	case limit > domain.MaxLimit:
		limit = domain.MaxLimit
	}
	rows, err := s.binder.Bind(s.db).Recent(ctx, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "journal recent")
	}
	out := make([]domain.EntryDTO, 0, len(rows))
	for _, e := range rows {
		out = append(out, e.DTO())
	}
	return out, nil
}

// Stats returns label counts and the mean fake probability
func (s *Svc) Stats(ctx context.Context) (domain.Stats, error) {
	if s.db == nil {
		return domain.Stats{}, perr.Unavailablef("journal is not configured")
	}
	st, err := s.binder.Bind(s.db).Stats(ctx)
	if err != nil {
		return domain.Stats{}, perr.FromPostgres(err, "journal stats")
	}
	return st, nil
}
