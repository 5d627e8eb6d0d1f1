package pg

import (
	"context"
	"strings"

	"veritas/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one finished statement
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer is told about every statement
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer logs statements through root at debug, slow ones at warn and
// failed ones at error. It enables debug on its own child logger so SQL
// tracing works whatever the process level is.
func Tracer(root logger.Logger) QueryTracer {
	return logTracer{log: root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()}
}

type logTracer struct{ log logger.Logger }

func (lt logTracer) OnQuery(_ context.Context, ev QueryEvent) {
	e := lt.log.Debug()
	switch {
	case ev.Err != nil:
		e = lt.log.Error().Err(ev.Err)
	case ev.Slow:
		e = lt.log.Warn()
	}
	e.Str("sql", oneLine(ev.SQL)).
		Interface("args", ev.Args).
		Float64("elapsed_ms", float64(ev.ElapsedUS)/1e3).
		Bool("slow", ev.Slow).
		Msg("pg query")
}

// oneLine collapses whitespace runs so a statement logs on one line
func oneLine(sql string) string { return strings.Join(strings.Fields(sql), " ") }
