// Package service runs a prediction and journals it
package service

import (
	"context"
	"time"

	"veritas/internal/core/inference"
	"veritas/internal/core/normalize"
	perr "veritas/internal/platform/errors"
	"veritas/internal/platform/logger"
	pnet "veritas/internal/platform/net"
	journal "veritas/internal/services/journal/domain"
	"veritas/internal/services/predict/domain"
)

// Svc classifies text with a loaded engine
type Svc struct {
	engine  *inference.Engine
	journal journal.WriterPort
	now     func() time.Time
}

// New returns a predict service. journal may be nil.
func New(engine *inference.Engine, w journal.WriterPort) *Svc {
	if engine == nil {
		panic("predict.Service requires a non nil engine")
	}
	return &Svc{engine: engine, journal: w, now: time.Now}
}

// Predict rejects blank input, classifies raw and records the outcome.
// A failed journal write is logged and never fails the prediction.
func (s *Svc) Predict(ctx context.Context, raw string) (domain.Result, error) {
	if normalize.IsBlank(raw) {
		return domain.Result{}, perr.Validationf("text", "%s", domain.EmptyInputMessage)
	}

	p, err := s.engine.Predict(raw)
	if err != nil {
		return domain.Result{}, perr.Wrap(err, perr.ErrorCodeUnknown, "prediction failed")
	}

	e := journal.NewEntry(raw, p, pnet.RequestID(ctx), pnet.Surface(ctx), s.now())
	if s.journal != nil {
		if err := s.journal.Record(ctx, e); err != nil {
			logger.C(ctx).Warn().Err(err).Str("entry_id", e.ID.String()).Msg("journal record failed")
		}
	}

	return domain.NewResult(e.ID.String(), p), nil
}
