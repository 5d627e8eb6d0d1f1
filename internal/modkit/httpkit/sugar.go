package httpkit

import (
	"net/http"

	phttp "veritas/internal/platform/net/http"
	"veritas/internal/platform/net/http/bind"
)

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// PostJSON mounts a validated JSON handler under POST. Article bodies are
// read in full, there is no size cap.
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(h, bind.Unbounded()))
}
