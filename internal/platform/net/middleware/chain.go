// Package middleware assembles the chi and go-chi/cors middleware the
// server runs, behind plain net/http signatures
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Chain is an ordered middleware list, first entry outermost
type Chain []func(http.Handler) http.Handler

// Then wraps h in every middleware of c
func (c Chain) Then(h http.Handler) http.Handler {
	for i := len(c) - 1; i >= 0; i-- {
		h = c[i](h)
	}
	return h
}

// DefaultSlow is where the access log switches to warn
const DefaultSlow = 500 * time.Millisecond

// Root is the stack shared by the HTML page and the API: client ip, request
// id, request scoped logging, an LB heartbeat at /health, the access log,
// plain panic recovery and response compression
func Root(modelID string) Chain {
	return Chain{
		chimw.RealIP,
		chimw.RequestID,
		RequestLogger(modelID),
		chimw.Heartbeat("/health"),
		AccessLog(AccessLogOptions{Slow: DefaultSlow}),
		chimw.Recoverer,
		Compress(flate.DefaultCompression),
	}
}
