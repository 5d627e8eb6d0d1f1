// Package store opens the optional postgres and clickhouse backends behind
// small seams the repos can fake
package store

import (
	"context"
	"errors"
	"fmt"

	"veritas/internal/platform/logger"
)

// Store holds the optional journal backends. The zero value has none.
type Store struct {
	Log logger.Logger // zero value discards
	PG  TxRunner      // nil when postgres is off
	CH  Clickhouse    // nil when clickhouse is off
}

// Open connects every backend enabled in cfg. Disabled backends stay nil.
// A failure closes whatever was already opened.
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Logger()

	var err error
	if cfg.PG.Enabled {
		if s.PG, err = openPG(ctx, cfg, s); err != nil {
			return nil, err
		}
	}
	if cfg.CH.Enabled {
		if s.CH, err = openCH(ctx, cfg, s); err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
	}
	return s, nil
}

// Enabled reports whether any backend is configured
func (s *Store) Enabled() bool {
	return s != nil && (s.PG != nil || s.CH != nil)
}

// backends lists the configured seams by name, postgres first
func (s *Store) backends() []namedBackend {
	var out []namedBackend
	if s.PG != nil {
		out = append(out, namedBackend{"pg", s.PG})
	}
	if s.CH != nil {
		out = append(out, namedBackend{"ch", s.CH})
	}
	return out
}

type namedBackend struct {
	name string
	impl any
}

// Guard pings every configured seam that can ping and joins the failures
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("store: nil")
	}
	var errs []error
	for _, b := range s.backends() {
		p, ok := b.impl.(Pinger)
		if !ok {
			continue
		}
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", b.name, err))
		}
	}
	return errors.Join(errs...)
}

// Close releases every configured seam, nil receivers are fine
func (s *Store) Close(_ context.Context) error {
	if s == nil {
		return nil
	}
	var errs []error
	for _, b := range s.backends() {
		if c, ok := b.impl.(interface{ Close() error }); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", b.name, err))
			}
		}
	}
	return errors.Join(errs...)
}
