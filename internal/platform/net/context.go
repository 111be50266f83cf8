// Package net provides utilities for working with request contexts and reply envelopes
package net

import (
	"context"

	"hebdate/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// HeaderRequestID is the header used to accept and echo request ids
const HeaderRequestID = "X-Request-ID"

// WithRequest annotates ctx with the request id for both chi and the logger
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	return logger.WithRequest(ctx, reqID, "")
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return logger.RequestID(ctx)
}
