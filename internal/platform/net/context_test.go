package net_test

import (
	"context"
	"testing"

	"hebdate/internal/platform/logger"
	pnet "hebdate/internal/platform/net"
)

func TestWithRequest(t *testing.T) {
	base := context.Background()

	ctx := pnet.WithRequest(base, "req-123")
	if got := pnet.RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID got %q want %q", got, "req-123")
	}
	if got := logger.RequestID(ctx); got != "req-123" {
		t.Fatalf("logger.RequestID got %q want %q", got, "req-123")
	}

	if pnet.WithRequest(base, "") != base {
		t.Fatalf("expected ctx to be unchanged when id is empty")
	}
	if got := pnet.RequestID(base); got != "" {
		t.Fatalf("RequestID got %q want empty", got)
	}
}

func TestRequestIDFallsBackToLogger(t *testing.T) {
	ctx := logger.WithRequest(context.Background(), "cli-1", "parse")
	if got := pnet.RequestID(ctx); got != "cli-1" {
		t.Fatalf("RequestID got %q want cli-1", got)
	}
}
