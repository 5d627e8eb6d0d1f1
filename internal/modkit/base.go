package modkit

import (
	"net/http"

	"veritas/internal/modkit/httpkit"
	str "veritas/internal/platform/strings"
)

// Base is the routing half every module shares. Modules embed it and hand
// their own registration to Bind.
type Base struct {
	name   string
	prefix string
	mw     []func(http.Handler) http.Handler
	extra  func(httpkit.Router)
	routes func(httpkit.Router)
}

// Build returns a Base with the given defaults, then opts applied
func Build(name, prefix string, opts ...Option) Base {
	b := Base{name: name, prefix: prefix}
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Bind sets the module's own routes
func (b *Base) Bind(routes func(httpkit.Router)) { b.routes = routes }

// Name panics on an empty name
func (b *Base) Name() string { return str.MustString(b.name, "module name") }

// Prefix panics unless the prefix starts with a slash
func (b *Base) Prefix() string { return str.MustPrefix(b.prefix) }

// MountRoutes opens a sub router at Prefix with the module middleware and
// registers the bound routes followed by any WithRegister extras
func (b *Base) MountRoutes(r httpkit.Router) {
	r.Route(b.Prefix(), func(sub httpkit.Router) {
		for _, mw := range b.mw {
			sub.Use(mw)
		}
		for _, fn := range []func(httpkit.Router){b.routes, b.extra} {
			if fn != nil {
				fn(sub)
			}
		}
	})
}
