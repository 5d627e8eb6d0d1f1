// Package module wires the prediction journal into the API using modkit
package module

import (
	"context"

	modkit "veritas/internal/modkit"
	"veritas/internal/services/journal/domain"
	journalhttp "veritas/internal/services/journal/http"
	journalrepo "veritas/internal/services/journal/repo"
	journalsvc "veritas/internal/services/journal/service"
)

// Ports exposes the journal to sibling modules
type Ports struct {
	Writer domain.WriterPort
	Reader domain.ReaderPort
}

// Module implements the journal module
type Module struct {
	modkit.Base
	svc *journalsvc.Svc
}

// New constructs the journal module. With no store in deps the writer is a
// no-op and the read endpoints answer 503.
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	var sink journalrepo.Sink
	if deps.CH != nil {
		sink = journalrepo.NewCH(deps.CH)
	}
	m := &Module{
		Base: modkit.Build("journal", "/journal", opts...),
		svc:  journalsvc.New(deps.PG, journalrepo.NewPG(), sink, deps.JournalTimeout),
	}
	m.Bind(func(r modkit.Router) { journalhttp.Register(r, readerPort{m.svc}) })
	return m
}

// EnsureSchema creates journal tables on the configured stores
func (m *Module) EnsureSchema(ctx context.Context) error { return m.svc.EnsureSchema(ctx) }

// Ports returns the journal ports. Writer is nil when no store is configured.
func (m *Module) Ports() any {
	p := Ports{Reader: readerPort{svc: m.svc}}
	if m.svc.Enabled() {
		p.Writer = m.svc
	}
	return p
}

// readerPort narrows the service to reads so PortsOf never hands it out as a writer
type readerPort struct{ svc *journalsvc.Svc }

func (a readerPort) Recent(ctx context.Context, limit int) ([]domain.EntryDTO, error) {
	return a.svc.Recent(ctx, limit)
}

func (a readerPort) Stats(ctx context.Context) (domain.Stats, error) { return a.svc.Stats(ctx) }
