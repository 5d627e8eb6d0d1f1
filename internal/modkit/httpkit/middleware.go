package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"veritas/internal/platform/net/middleware"
)

// RootStack is installed once on the root mux, ahead of both the HTML page
// and the JSON API
func RootStack(modelID string) []func(http.Handler) http.Handler {
	return middleware.Root(modelID)
}

// StackOptions tunes the API stack
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration
	Throttle    int
}

// APIStack returns the per-scope middleware for /api/v{n}
func APIStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Throttle(o.Throttle),
		middleware.Timeout(o.Timeout),
	}
}
