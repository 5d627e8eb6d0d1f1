package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	pnet "veritas/internal/platform/net"
	phttp "veritas/internal/platform/net/http"
	"veritas/internal/services/predict/domain"
)

type fakePredictor struct {
	calls   int
	surface string
}

func (f *fakePredictor) Predict(ctx context.Context, raw string) (domain.Result, error) {
	f.calls++
	f.surface = pnet.Surface(ctx)
	return domain.Result{ID: "x", LabelName: "fake", Label: 1, ProbReal: 0.1, ProbFake: 0.9, Cleaned: strings.ToLower(raw)}, nil
}

func post(t *testing.T, p domain.PredictorPort, body string) (*httptest.ResponseRecorder, pnet.Wire) {
	t.Helper()
	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	Register(phttp.AdaptChi(mux), p)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(stdhttp.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(rr, req)

	var w pnet.Wire
	if err := json.Unmarshal(rr.Body.Bytes(), &w); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	return rr, w
}

func TestPredict_OKEnvelope(t *testing.T) {
	p := &fakePredictor{}
	rr, w := post(t, p, `{"text":"Miracle Cure"}`)
	if rr.Code != stdhttp.StatusOK || w.StatusCode != 200 || w.RequestID == "" {
		t.Fatalf("code=%d wire=%+v", rr.Code, w)
	}
	if p.surface != pnet.SurfaceAPI {
		t.Fatalf("surface = %q", p.surface)
	}
	data, _ := w.Data.(map[string]any)
	if data["label_name"] != "fake" || data["cleaned"] != "miracle cure" {
		t.Fatalf("unexpected data %+v", w.Data)
	}
}

func TestPredict_BlankTextRejectedBeforeService(t *testing.T) {
	p := &fakePredictor{}
	for _, body := range []string{`{"text":""}`, `{"text":"  \n\t "}`, `{}`} {
		rr, w := post(t, p, body)
		if rr.Code != stdhttp.StatusBadRequest || w.Field != "text" {
			t.Fatalf("%s => %d %+v", body, rr.Code, w)
		}
	}
	if p.calls != 0 {
		t.Fatalf("service called %d times for blank input", p.calls)
	}
}

func TestPredict_MalformedJSON(t *testing.T) {
	for _, body := range []string{`{"text":`, `{"text":"a","extra":1}`, `{"text":"a"} {}`} {
		rr, _ := post(t, &fakePredictor{}, body)
		if rr.Code != stdhttp.StatusBadRequest {
			t.Fatalf("%s => %d", body, rr.Code)
		}
	}
}

func TestPredict_LargeBodyAccepted(t *testing.T) {
	text := strings.Repeat("word ", 1<<20)
	rr, _ := post(t, &fakePredictor{}, `{"text":"`+text+`"}`)
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("expected no size cap, got %d", rr.Code)
	}
}
