// Package httpkit is what service modules import for routing, handler
// adapters and middleware stacks, so they never reach into the platform http
// packages themselves
package httpkit

import (
	"net/http"

	phttp "veritas/internal/platform/net/http"
)

type (
	Envelope = phttp.Envelope
	Response = phttp.Response
	Handler  = phttp.Handler
	Router   = phttp.Router
)

// OK is a 200 response carrying data
func OK(data any) Response { return phttp.OK(data) }

// Error is a response whose status comes from err
func Error(err error) Response { return phttp.Error(err) }

// Handle adapts a Response returning func
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// Call adapts a (value, error) handler. A returned Response is written as
// is, any other value goes out as a 200 envelope.
func Call(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return OK(out)
	})
}
