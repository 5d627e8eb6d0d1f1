// Package module wires prediction into the API using modkit
package module

import (
	modkit "veritas/internal/modkit"
	journal "veritas/internal/services/journal/domain"
	"veritas/internal/services/predict/domain"
	predicthttp "veritas/internal/services/predict/http"
	predictsvc "veritas/internal/services/predict/service"
)

// Ports exposes prediction to sibling modules
type Ports struct {
	Predictor domain.PredictorPort
}

// Module implements the predict module
type Module struct {
	modkit.Base
	svc *predictsvc.Svc
}

// New constructs the predict module. w receives every prediction and may be nil.
func New(deps modkit.Deps, w journal.WriterPort, opts ...modkit.Option) *Module {
	m := &Module{
		Base: modkit.Build("predict", "/predict", opts...),
		svc:  predictsvc.New(deps.Engine, w),
	}
	m.Bind(func(r modkit.Router) { predicthttp.Register(r, m.svc) })
	return m
}

// Ports returns the predict ports
func (m *Module) Ports() any { return Ports{Predictor: m.svc} }
