package httpkit

import (
	"net/http"

	phttp "veritas/internal/platform/net/http"
)

type route struct {
	verb, path string
	ph         phttp.Handler
	h          http.Handler
}

// fakeRouter records registrations and passes itself as subrouter
type fakeRouter struct {
	prefixes  []string
	useCalls  int
	lastMWLen int
	mountHits int
	routes    []route
}

func (f *fakeRouter) Mux() http.Handler { return http.NewServeMux() }

func (f *fakeRouter) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}

func (f *fakeRouter) Group(fn func(Router)) { fn(f) }

func (f *fakeRouter) Use(mw ...func(http.Handler) http.Handler) {
	f.useCalls++
	f.lastMWLen = len(mw)
}

func (f *fakeRouter) Handle(path string, h http.Handler) {
	f.routes = append(f.routes, route{"HANDLE", path, nil, h})
}

func (f *fakeRouter) Get(path string, h phttp.Handler) {
	f.routes = append(f.routes, route{"GET", path, h, nil})
}

func (f *fakeRouter) Post(path string, h phttp.Handler) {
	f.routes = append(f.routes, route{"POST", path, h, nil})
}

func (f *fakeRouter) Head(path string, h phttp.Handler) {
	f.routes = append(f.routes, route{"HEAD", path, h, nil})
}
