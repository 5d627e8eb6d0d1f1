package modkit

import (
	"net/http"

	"veritas/internal/modkit/httpkit"
)

// Option adjusts a module's Base before it is mounted
type Option func(*Base)

// WithName overrides the module name used in logs and the port registry
func WithName(name string) Option {
	return func(b *Base) { b.name = name }
}

// WithPrefix mounts the module under another path
func WithPrefix(prefix string) Option {
	return func(b *Base) { b.prefix = prefix }
}

// WithMiddlewares wraps only this module's routes, in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Base) { b.mw = append(b.mw, mw...) }
}

// WithRegister adds routes next to the module's own
func WithRegister(fn func(httpkit.Router)) Option {
	return func(b *Base) { b.extra = fn }
}
