package modkit

import (
	"time"

	"veritas/internal/core/inference"
	"veritas/internal/modkit/repokit"
	"veritas/internal/platform/config"
	"veritas/internal/platform/logger"
	"veritas/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// PG and CH stay nil when the journal is not configured
type Deps struct {
	Log    logger.Logger
	Cfg    config.Conf
	Engine *inference.Engine
	PG     repokit.TxRunner
	CH     store.Clickhouse

	// JournalTimeout bounds a single journal write, zero means the module default
	JournalTimeout time.Duration
}

// Journaling reports whether at least one journal store is wired
func (d Deps) Journaling() bool { return d.PG != nil || d.CH != nil }

// ModelID returns the loaded model identifier or empty when no engine is set
func (d Deps) ModelID() string {
	if d.Engine == nil {
		return ""
	}
	return d.Engine.Bundle().ModelID()
}
