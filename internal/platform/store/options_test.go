package store

import (
	"bytes"
	"context"
	"testing"

	"hebdate/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestWithLogger_SetsOnStore(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := &Store{}
	if err := WithLogger(zerolog.New(&buf))(s); err != nil {
		t.Fatalf("WithLogger returned error: %v", err)
	}

	s.Log.Info().Str("backend", "pg").Msg("overrides store ready")
	testkit.MustContain(t, buf.String(), `"backend":"pg"`)
}

func TestOpen_KeepsLoggerFromOptions(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, err := Open(context.Background(), Config{}, WithLogger(zerolog.New(&buf)))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	s.Log.Warn().Msg("no backends")
	testkit.MustContain(t, buf.String(), "no backends")
}
