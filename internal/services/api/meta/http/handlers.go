// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"veritas/internal/core/artifact"
	"veritas/internal/core/version"
	"veritas/internal/modkit/httpkit"
)

// Deps are the handler dependencies. PG and CH stay nil when the journal is off.
type Deps struct {
	ServiceName  string
	StartedAt    time.Time
	Model        artifact.Info
	PG           any
	CH           any
	ReadyTimeout time.Duration
}

type handlers struct{ deps Deps }

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.ReadyTimeout <= 0 {
		d.ReadyTimeout = DefaultReadyTimeout
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/model", h.model)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"veritas-api"`
	ModelID string `json:"model_id" example:"demo-calibrated-lr-2026.10"`
	Started string `json:"started"  example:"2026-10-17T13:00:00Z"`
	Now     string `json:"now"      example:"2026-10-17T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"veritas-api"`
	Started string `json:"started" example:"2026-10-17T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		ModelID: h.deps.Model.ModelID,
		Started: stamp(h.deps.StartedAt),
		Now:     stamp(time.Now()),
	}, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.For(h.deps.ServiceName), nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: stamp(h.deps.StartedAt),
		Uptime:  int64(time.Since(h.deps.StartedAt).Seconds()),
	}, nil
}

// @Summary Loaded artifact metadata
// @Tags Meta
// @Produce json
// @Success 200 {object} artifact.Info "ok"
// @Router /meta/model [get]
func (h *handlers) model(_ *http.Request) (any, error) {
	return h.deps.Model, nil
}
