// Package http provides http transport for the journal
package http

import (
	stdhttp "net/http"

	"veritas/internal/modkit/httpkit"
	"veritas/internal/platform/net/http/bind"
	"veritas/internal/services/journal/domain"
)

// Register mounts journal endpoints on the given router
func Register(r httpkit.Router, s domain.ReaderPort) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/recent", h.recent)
	httpkit.Get(r, "/stats", h.stats)
}

type handlers struct{ svc domain.ReaderPort }

// @Summary Most recent journal entries
// @Tags Journal
// @Produce json
// @Param limit query int false "1..500, default 50"
// @Success 200 {array} domain.EntryDTO "ok"
// @Router /journal/recent [get]
func (h *handlers) recent(r *stdhttp.Request) (any, error) {
	limit, err := bind.QueryInt(r, "limit", domain.DefaultLimit)
	if err != nil {
		return nil, err
	}
	if err := bind.Validate(domain.RecentInput{Limit: limit}); err != nil {
		return nil, err
	}
	return h.svc.Recent(r.Context(), limit)
}

// @Summary Label counts and mean fake probability
// @Tags Journal
// @Produce json
// @Success 200 {object} domain.Stats "ok"
// @Router /journal/stats [get]
func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	return h.svc.Stats(r.Context())
}
