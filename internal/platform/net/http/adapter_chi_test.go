package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func setHeader(name string) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.Header().Set(name, "1")
			next.ServeHTTP(w, req)
		})
	}
}

func write(body string, status int) Handler {
	return func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestAdaptChi_RootGroupRouteAndMux(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.Use(setHeader("X-Root"))

	r.Get("/", write("page", 200))
	r.Post("/", write("posted", 200))
	r.Head("/h", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.Header().Set("X-Head", "1") })
	r.Handle("/std", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		_, _ = w.Write([]byte("std"))
	}))

	r.Group(func(gr Router) {
		gr.Use(setHeader("X-Group"))
		if gr.Mux() == nil {
			t.Fatalf("group Mux() returned nil")
		}
		gr.Get("/g/ping", write("g", 200))
		gr.Group(func(ngr Router) {
			ngr.Get("/g/nested", write("nested", 200))
		})
	})

	r.Route("/api", func(sr Router) {
		sr.Use(setHeader("X-Route"))
		sr.Route("/v1", func(nr Router) {
			nr.Post("/predict", write("v1", 201))
		})
	})

	do := func(method, path string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(method, path, nil))
		return rr
	}

	cases := []struct {
		method, path string
		code         int
		body         string
		headers      []string
	}{
		{stdhttp.MethodGet, "/", 200, "page", []string{"X-Root"}},
		{stdhttp.MethodPost, "/", 200, "posted", []string{"X-Root"}},
		{stdhttp.MethodHead, "/h", 200, "", []string{"X-Head"}},
		{stdhttp.MethodGet, "/std", 200, "std", []string{"X-Root"}},
		{stdhttp.MethodGet, "/g/ping", 200, "g", []string{"X-Root", "X-Group"}},
		{stdhttp.MethodGet, "/g/nested", 200, "nested", []string{"X-Group"}},
		{stdhttp.MethodPost, "/api/v1/predict", 201, "v1", []string{"X-Root", "X-Route"}},
		{stdhttp.MethodGet, "/api/v1/predict", 405, "", nil},
	}
	for _, c := range cases {
		rr := do(c.method, c.path)
		if rr.Code != c.code {
			t.Fatalf("%s %s => code=%d want %d", c.method, c.path, rr.Code, c.code)
		}
		if c.body != "" && rr.Body.String() != c.body {
			t.Fatalf("%s %s => body=%q want %q", c.method, c.path, rr.Body.String(), c.body)
		}
		for _, h := range c.headers {
			if rr.Header().Get(h) != "1" {
				t.Fatalf("%s %s => missing header %s", c.method, c.path, h)
			}
		}
	}
}
