// Package http hosts the chi server, the Router facade over it and the
// writers for the JSON envelope
package http

import (
	"cmp"
	"encoding/json"
	stdhttp "net/http"

	pnet "veritas/internal/platform/net"
)

// Envelope is the body of every JSON response
type Envelope = pnet.Wire

// JSON writes v as application/json with status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError writes err as an envelope carrying the request id of r
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, env := pnet.Error(err, pnet.RequestID(r.Context()))
	JSON(w, status, env)
}

// Response is the value return style handlers hand back. An error Body
// picks its own status.
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// OK is a 200 carrying data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error is a response whose status and envelope come from err
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a Response returning func to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	hdr := w.Header()
	for k, vv := range resp.Header {
		hdr[k] = append(hdr[k], vv...)
	}
	if err, ok := resp.Body.(error); ok {
		RespondError(w, r, err)
		return
	}

	status := cmp.Or(resp.Status, stdhttp.StatusOK)
	_, env := pnet.OK(resp.Body, pnet.RequestID(r.Context()))
	env.StatusCode, env.Status = status, stdhttp.StatusText(status)
	JSON(w, status, env)
}
