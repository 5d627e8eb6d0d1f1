// Package http provides the JSON transport for predictions
package http

import (
	stdhttp "net/http"

	"veritas/internal/modkit/httpkit"
	pnet "veritas/internal/platform/net"
	"veritas/internal/services/predict/domain"
)

// Register mounts predict endpoints on the given router
func Register(r httpkit.Router, s domain.PredictorPort) {
	h := &handlers{svc: s}

	httpkit.PostJSON(r, "/", h.predict)
}

type handlers struct{ svc domain.PredictorPort }

// @Summary Classify a news article as real or fake
// @Tags Predict
// @Accept json
// @Produce json
// @Param body body domain.Input true "article text"
// @Success 200 {object} domain.Result "ok"
// @Failure 400 {object} httpkit.Envelope "blank text"
// @Router /predict/ [post]
func (h *handlers) predict(r *stdhttp.Request, in domain.Input) (any, error) {
	ctx := pnet.WithSurface(r.Context(), pnet.SurfaceAPI)
	return h.svc.Predict(ctx, in.Text)
}
