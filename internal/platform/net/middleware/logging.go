package middleware

import (
	"net/http"

	"veritas/internal/platform/logger"
	pnet "veritas/internal/platform/net"
)

// RequestLogger copies the chi request id onto the logger context so
// logger.C picks it up, and echoes it back as X-Request-ID. Install after
// RequestID.
func RequestLogger(modelID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := pnet.RequestID(r.Context())
			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			ctx := logger.WithRequest(r.Context(), reqID, modelID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
