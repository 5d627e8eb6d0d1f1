// Package modkit holds the base service modules embed and the dependencies
// they are built from. The mountable contract lives in modkit/module.
package modkit

import (
	phttp "veritas/internal/platform/net/http"
)

// Router is the router seam modules register on
type Router = phttp.Router
