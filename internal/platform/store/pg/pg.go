// Package pg opens the pgx pool behind the journal's postgres backend
package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config describes the pool. Zero MaxConns keeps the pgx default.
type Config struct {
	URL      string
	MaxConns int32
	SlowMs   int
	AppName  string

	// Tune sees the parsed pool config last, tests and tools use it
	Tune func(*pgxpool.Config)
}

// PG owns a pool and the tracer its statements are reported to
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	SlowMs int
}

var newPool = pgxpool.NewWithConfig

// Open parses cfg.URL, applies cfg and builds the pool. Connections are
// made lazily, so an unreachable server is not an error here.
func Open(ctx context.Context, cfg Config, tracer QueryTracer) (*PG, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		pc.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	if cfg.Tune != nil {
		cfg.Tune(pc)
	}

	pool, err := newPool(ctx, pc)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
}

// Close releases the pool, safe on nil
func (p *PG) Close() {
	if p == nil || p.Pool == nil {
		return
	}
	p.Pool.Close()
}
