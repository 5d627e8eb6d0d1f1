// Package module mounts the meta endpoints
package module

import (
	"time"

	modkit "veritas/internal/modkit"
	metahttp "veritas/internal/services/api/meta/http"
)

// ServiceName is reported by the health, version and service endpoints
const ServiceName = "veritas-api"

// Module serves health, readiness and build information. It has no ports.
type Module struct {
	modkit.Base
	startedAt time.Time
}

// New constructs a meta module. The start time is taken here.
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	m := &Module{Base: modkit.Build("meta", "/meta", opts...), startedAt: time.Now()}
	d := metahttp.Deps{
		ServiceName: ServiceName,
		StartedAt:   m.startedAt,
		PG:          deps.PG,
		CH:          deps.CH,
	}
	if deps.Engine != nil {
		d.Model = deps.Engine.Bundle().Info()
	}
	m.Bind(func(r modkit.Router) { metahttp.Register(r, d) })
	return m
}

// Ports is always nil
func (m *Module) Ports() any { return nil }
