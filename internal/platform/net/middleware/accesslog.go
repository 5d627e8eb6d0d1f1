package middleware

import (
	"net/http"
	"time"

	"veritas/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions configures AccessLog
type AccessLogOptions struct {
	Slow time.Duration  // requests at least this slow log at warn, zero never
	Log  *logger.Logger // nil means logger.C of the request context
}

// AccessLog writes one line per request. Bodies are never logged.
func AccessLog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			took := time.Since(start)

			log := opt.Log
			if log == nil {
				log = logger.C(r.Context())
			}
			e := log.Info()
			if opt.Slow > 0 && took >= opt.Slow {
				e = log.Warn()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			e.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Int64("req_bytes", r.ContentLength).
				Dur("elapsed", took).
				Str("remote", r.RemoteAddr).
				Msg("request done")
		})
	}
}
