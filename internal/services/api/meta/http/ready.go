package http

import (
	"context"
	"net/http"
	"time"
)

// DefaultReadyTimeout bounds all store pings of one readiness call
const DefaultReadyTimeout = 2 * time.Second

// Pinger is any store that can answer a ping
type Pinger interface {
	Ping(context.Context) error
}

// Check results. A store that is not configured is skipped and does not
// count against readiness, one that cannot be pinged is unknown.
const (
	StatusOK       = "ok"
	StatusFail     = "fail"
	StatusSkipped  = "skipped"
	StatusUnknown  = "unknown"
	StatusDegraded = "degraded"
)

// ReadyCheck is the result for one store
type ReadyCheck struct {
	Name   string `json:"name"            example:"pg"`
	Status string `json:"status"          example:"ok"`
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432: connect: connection refused"`
}

// ReadyResponse is ok, degraded or fail over all checks
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-17T13:05:00Z"`
}

func probe(ctx context.Context, name string, store any) ReadyCheck {
	if store == nil {
		return ReadyCheck{Name: name, Status: StatusSkipped}
	}
	p, ok := store.(Pinger)
	if !ok {
		return ReadyCheck{Name: name, Status: StatusUnknown}
	}
	if err := p.Ping(ctx); err != nil {
		return ReadyCheck{Name: name, Status: StatusFail, Error: err.Error()}
	}
	return ReadyCheck{Name: name, Status: StatusOK}
}

// overall picks the worst check: any fail fails, any unknown degrades
func overall(checks []ReadyCheck) string {
	out := StatusOK
	for _, c := range checks {
		switch c.Status {
		case StatusFail:
			return StatusFail
		case StatusUnknown:
			out = StatusDegraded
		}
	}
	return out
}

// @Summary Readiness probe with journal store checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), h.deps.ReadyTimeout)
	defer cancel()

	checks := []ReadyCheck{
		probe(ctx, "pg", h.deps.PG),
		probe(ctx, "ch", h.deps.CH),
	}
	return ReadyResponse{Status: overall(checks), Checks: checks, Now: stamp(time.Now())}, nil
}
