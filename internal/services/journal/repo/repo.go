// Package repo provides postgres and clickhouse persistence for the journal
package repo

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"veritas/internal/modkit/repokit"
	"veritas/internal/platform/store"
	"veritas/internal/services/journal/domain"
)

// Repo is the postgres persistence surface
type Repo interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, e domain.Entry) error
	Recent(ctx context.Context, limit int) ([]domain.Entry, error)
	Stats(ctx context.Context) (domain.Stats, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the postgres repo
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// pgSchema runs statement by statement, extended protocol takes one per call
var pgSchema = []string{
	`
create table if not exists predictions (
  id            uuid primary key,
  request_id    text not null default '',
  text_sha256   bytea not null,
  raw_chars     integer not null,
  cleaned_chars integer not null,
  label         smallint not null check (label in (0, 1)),
  prob_real     double precision not null,
  prob_fake     double precision not null,
  model_id      text not null,
  surface       text not null default '',
  created_at    timestamptz not null default now()
)`,
	`create index if not exists predictions_created_at_idx on predictions (created_at desc)`,
	`create index if not exists predictions_model_label_idx on predictions (model_id, label)`,
}

func (r *queries) EnsureSchema(ctx context.Context) error {
	for _, stmt := range pgSchema {
		if _, err := r.q.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *queries) Insert(ctx context.Context, e domain.Entry) error {
	const sql = `
insert into predictions
  (id, request_id, text_sha256, raw_chars, cleaned_chars, label, prob_real, prob_fake, model_id, surface, created_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`
	return store.ExecOne(ctx, r.q, sql,
		e.ID.String(), e.RequestID, e.TextSHA256[:], e.RawChars, e.CleanedChars,
		e.Label, e.ProbReal, e.ProbFake, e.ModelID, e.Surface, e.CreatedAt,
	)
}

func (r *queries) Recent(ctx context.Context, limit int) ([]domain.Entry, error) {
	const sql = `
select id::text, request_id, text_sha256, raw_chars, cleaned_chars, label, prob_real, prob_fake, model_id, surface, created_at
from predictions
order by created_at desc, id
limit $1
`
	return store.Many(ctx, r.q, scanEntry, sql, limit)
}

func (r *queries) Stats(ctx context.Context) (domain.Stats, error) {
	const sql = `
select count(*),
       count(*) filter (where label = 0),
       count(*) filter (where label = 1),
       coalesce(avg(prob_fake), 0),
       min(created_at),
       max(created_at)
from predictions
`
	return store.One(ctx, r.q, func(row store.Row) (domain.Stats, error) {
		var s domain.Stats
		err := row.Scan(&s.Total, &s.Real, &s.Fake, &s.MeanProbFake, &s.FirstAt, &s.LastAt)
		return s, err
	}, sql)
}

func scanEntry(row store.Row) (domain.Entry, error) {
	var (
		e      domain.Entry
		id     string
		digest []byte
		label  int16
	)
	if err := row.Scan(&id, &e.RequestID, &digest, &e.RawChars, &e.CleanedChars, &label,
		&e.ProbReal, &e.ProbFake, &e.ModelID, &e.Surface, &e.CreatedAt); err != nil {
		return e, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return e, err
	}
	e.ID = parsed
	copy(e.TextSHA256[:], digest)
	e.Label = int(label)
	e.CreatedAt = e.CreatedAt.UTC()
	return e, nil
}

// Sink appends journal entries to clickhouse for analytics
type Sink interface {
	EnsureSchema(ctx context.Context) error
	Append(ctx context.Context, e domain.Entry) error
}

// EventsTable is the clickhouse table the sink writes to
const EventsTable = "prediction_events"

const chSchema = `
create table if not exists prediction_events (
  id            UUID,
  request_id    String,
  text_sha256   FixedString(64),
  raw_chars     UInt32,
  cleaned_chars UInt32,
  label         UInt8,
  prob_real     Float64,
  prob_fake     Float64,
  model_id      LowCardinality(String),
  surface       LowCardinality(String),
  created_at    DateTime64(3, 'UTC')
)
engine = MergeTree
partition by toYYYYMM(created_at)
order by (created_at, id)
`

type chSink struct{ ch store.Clickhouse }

// NewCH returns a sink over a clickhouse seam
func NewCH(ch store.Clickhouse) Sink { return chSink{ch: ch} }

func (s chSink) EnsureSchema(ctx context.Context) error { return s.ch.Exec(ctx, chSchema) }

func (s chSink) Append(ctx context.Context, e domain.Entry) error {
	return s.ch.Insert(ctx, EventsTable, [][]any{eventRow(e)})
}

// eventRow lays out e in prediction_events column order
func eventRow(e domain.Entry) []any {
	return []any{
		e.ID,
		e.RequestID,
		hex.EncodeToString(e.TextSHA256[:]),
		uint32(e.RawChars),
		uint32(e.CleanedChars),
		uint8(e.Label),
		e.ProbReal,
		e.ProbFake,
		e.ModelID,
		e.Surface,
		e.CreatedAt.Truncate(time.Millisecond),
	}
}
