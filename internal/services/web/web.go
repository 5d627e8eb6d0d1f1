// Package web serves the single page form for checking an article
package web

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	stdhttp "net/http"
	"net/url"

	"veritas/internal/modkit/httpkit"
	perr "veritas/internal/platform/errors"
	"veritas/internal/platform/logger"
	pnet "veritas/internal/platform/net"
	predict "veritas/internal/services/predict/domain"
)

//go:embed templates/index.html
var files embed.FS

var page = template.Must(template.ParseFS(files, "templates/index.html"))

// FormField is the name of the article text area
const FormField = "article"

type view struct {
	Article string
	Error   string
	Result  *predict.Result
}

// Register mounts GET and POST / on r
func Register(r httpkit.Router, p predict.PredictorPort) {
	h := &handlers{svc: p}
	r.Get("/", h.show)
	r.Post("/", h.check)
}

type handlers struct{ svc predict.PredictorPort }

func (h *handlers) show(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	render(w, r, stdhttp.StatusOK, view{})
}

func (h *handlers) check(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.C(r.Context()).Warn().Err(err).Msg("read form body")
		render(w, r, stdhttp.StatusBadRequest, view{Error: "Could not read the submitted form."})
		return
	}
	form, err := url.ParseQuery(string(body))
	if err != nil {
		render(w, r, stdhttp.StatusBadRequest, view{Error: "Could not read the submitted form."})
		return
	}
	article := form.Get(FormField)

	ctx := pnet.WithSurface(r.Context(), pnet.SurfaceWeb)
	res, err := h.svc.Predict(ctx, article)
	if err != nil {
		status := perr.HTTPStatus(err)
		msg := "Something went wrong while checking this article."
		if e, ok := perr.As(err); ok && e.Code() == perr.ErrorCodeValidation {
			msg = predict.EmptyInputMessage
		} else {
			logger.C(ctx).Error().Err(err).Msg("web predict failed")
		}
		render(w, r, status, view{Article: article, Error: msg})
		return
	}
	render(w, r, stdhttp.StatusOK, view{Article: article, Result: &res})
}

func render(w stdhttp.ResponseWriter, r *stdhttp.Request, status int, v view) {
	var buf bytes.Buffer
	if err := page.Execute(&buf, v); err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("render page")
		stdhttp.Error(w, "internal error", stdhttp.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
