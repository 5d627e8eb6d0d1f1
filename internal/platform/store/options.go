package store

import (
	"veritas/internal/platform/logger"
)

// Option mutates Store during Open
type Option func(*Store) error

// WithLogger sets the logger handed to the backends
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// WithPG installs a ready postgres seam. Open still replaces it when
// cfg.PG.Enabled is set.
func WithPG(pg TxRunner) Option {
	return func(s *Store) error {
		s.PG = pg
		return nil
	}
}

// WithCH installs a ready clickhouse seam, see WithPG
func WithCH(ch Clickhouse) Option {
	return func(s *Store) error {
		s.CH = ch
		return nil
	}
}
