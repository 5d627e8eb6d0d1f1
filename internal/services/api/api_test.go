package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"veritas/internal/core/artifact/artifacttest"
	"veritas/internal/core/inference"
	"veritas/internal/modkit/module"
	phttp "veritas/internal/platform/net/http"
	"veritas/internal/platform/store"
	"veritas/internal/platform/testkit"
	journalmod "veritas/internal/services/journal/module"
)

func mount(t *testing.T, opt Options) *chi.Mux {
	t.Helper()
	t.Cleanup(module.Reset)

	e, err := inference.New(artifacttest.Bundle(t))
	if err != nil {
		t.Fatal(err)
	}
	opt.Engine = e

	mux := chi.NewRouter()
	if err := Mount(context.Background(), phttp.AdaptChi(mux), opt); err != nil {
		t.Fatal(err)
	}
	return mux
}

func do(mux http.Handler, method, path, ctype, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if ctype != "" {
		req.Header.Set("Content-Type", ctype)
	}
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestMount_WebAndAPIShareEngine(t *testing.T) {
	testkit.Serial(t)
	mux := mount(t, Options{})

	rr := do(mux, http.MethodGet, "/", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("GET / => %d", rr.Code)
	}
	testkit.MustContain(t, rr.Body.String(), "Fake News Detection System")

	form := url.Values{"article": {"The Fed RAISED rates by 0.25% today!!!"}}.Encode()
	rr = do(mux, http.MethodPost, "/", "application/x-www-form-urlencoded", form)
	testkit.MustContain(t, rr.Body.String(), "This news is predicted to be REAL.")

	rr = do(mux, http.MethodPost, "/api/v1/predict/", "application/json", `{"text":"The Fed RAISED rates by 0.25% today!!!"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("POST predict => %d %s", rr.Code, rr.Body.String())
	}
	testkit.MustContain(t, rr.Body.String(), `"label_name":"real"`)
	testkit.MustContain(t, rr.Body.String(), `"cleaned":"the fed raised rates by today"`)
}

func TestMount_APIErrorsAndMeta(t *testing.T) {
	testkit.Serial(t)
	mux := mount(t, Options{Store: &store.Store{}})

	rr := do(mux, http.MethodPost, "/api/v1/predict/", "application/json", `{"text":"   "}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("blank => %d", rr.Code)
	}
	testkit.MustContain(t, rr.Body.String(), `"field":"text"`)

	rr = do(mux, http.MethodGet, "/api/v1/journal/stats", "", "")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("journal without store => %d", rr.Code)
	}

	rr = do(mux, http.MethodGet, "/api/v1/meta/model", "", "")
	testkit.MustContain(t, rr.Body.String(), artifacttest.ModelID)

	if _, ok := module.PortsAs[any]("predict"); !ok {
		t.Fatal("expected predict ports registered")
	}
}

func TestMount_DocsOnlyWhenEnabled(t *testing.T) {
	testkit.Serial(t)
	rr := do(mount(t, Options{}), http.MethodGet, "/api/docs/doc.json", "", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("docs disabled => %d", rr.Code)
	}

	rr = do(mount(t, Options{EnableSwagger: true, SwaggerTitleSuffix: "test"}), http.MethodGet, "/api/docs/doc.json", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("docs enabled => %d", rr.Code)
	}
	testkit.MustContain(t, rr.Body.String(), "/predict/")
	testkit.MustContain(t, rr.Body.String(), `"x-model-id":"`+artifacttest.ModelID+`"`)
}

func TestMount_PublishesEachModuleOnce(t *testing.T) {
	testkit.Serial(t)
	seen := map[string]int{}
	testkit.Swap(t, &publish, func(name string, ports any) {
		seen[name]++
		module.Register(name, ports)
	})
	mount(t, Options{})

	if len(seen) != 3 || seen["meta"] != 1 || seen["predict"] != 1 || seen["journal"] != 1 {
		t.Fatalf("published %v, want each module once", seen)
	}
	if _, ok := module.PortsAs[journalmod.Ports]("journal"); !ok {
		t.Fatal("journal ports missing from registry")
	}
}
