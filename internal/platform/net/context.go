// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const keySurface ctxKey = "surface"

// Surfaces a prediction can arrive through
const (
	SurfaceWeb = "web"
	SurfaceAPI = "api"
	SurfaceCLI = "cli"
)

// WithRequest stores reqID where chimw.GetReqID can find it
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// WithSurface records which front end served the request
func WithSurface(ctx context.Context, surface string) context.Context {
	if surface == "" {
		return ctx
	}
	return context.WithValue(ctx, keySurface, surface)
}

// Surface returns the front end recorded on ctx, empty when unset
func Surface(ctx context.Context) string {
	if v, ok := ctx.Value(keySurface).(string); ok {
		return v
	}
	return ""
}
