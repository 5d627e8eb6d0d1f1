package middleware

import (
	"io"
	"net/http"
	"time"

	pstrings "veritas/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// compressible lists the content types worth compressing
var compressible = []string{"text/html", "text/css", "application/json"}

// Compress negotiates zstd, gzip or deflate. gzip and zstd come from
// klauspost/compress, deflate stays chi's.
func Compress(level int) func(http.Handler) http.Handler {
	c := chimw.NewCompressor(level, compressible...)
	c.SetEncoder("gzip", func(w io.Writer, level int) io.Writer {
		gw, err := gzip.NewWriterLevel(w, level)
		if err != nil {
			return gzip.NewWriter(w)
		}
		return gw
	})
	c.SetEncoder("zstd", func(w io.Writer, _ int) io.Writer {
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest), zstd.WithEncoderConcurrency(1))
		if err != nil {
			return nil
		}
		return zw
	})
	return c.Handler
}

// NoCache forbids client and proxy caching
func NoCache() func(http.Handler) http.Handler { return chimw.NoCache }

// Timeout cancels the request context after d and answers 504 if the
// handler has not written yet
func Timeout(d time.Duration) func(http.Handler) http.Handler { return chimw.Timeout(d) }

// Throttle caps in-flight requests, zero or less turns it off
func Throttle(limit int) func(http.Handler) http.Handler {
	if limit > 0 {
		return chimw.Throttle(limit)
	}
	return func(next http.Handler) http.Handler { return next }
}

// CORSOptions is the part of go-chi/cors the API configures. Empty lists
// take the defaults below.
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string
	MaxAge         int
}

// CORS allows any origin by default, GET and POST, and exposes X-Request-ID
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: pstrings.IfEmpty(o.AllowedOrigins, []string{"*"}),
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, []string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Content-Type", "X-Request-ID"}),
		ExposedHeaders: pstrings.IfEmpty(o.ExposedHeaders, []string{"X-Request-ID"}),
		MaxAge:         o.MaxAge,
	})
}
