// Package module holds the module contract and port lookups. It stays apart
// from modkit so a module's ports type can be imported without modkit.
package module

import (
	phttp "veritas/internal/platform/net/http"
)

// Module is the contract the api mounts
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
