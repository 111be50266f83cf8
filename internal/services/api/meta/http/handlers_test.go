package http

import (
	stdctx "context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "hebdate/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(stdctx.Context) error

func (f pingFunc) Ping(ctx stdctx.Context) error { return f(ctx) }

func get(t *testing.T, h stdhttp.Handler, path string, out any) int {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, out))
	return rec.Code
}

func mount(d Deps) stdhttp.Handler {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Route("/meta", func(rr phttp.Router) { Register(rr, d) })
	RegisterLegacy(r)
	return mux
}

func TestReady(t *testing.T) {
	now := time.Date(2025, 4, 13, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name   string
		pg     Pinger
		status string
		check  string
	}{
		{"no pg", nil, "ok", "skipped"},
		{"pg up", pingFunc(func(stdctx.Context) error { return nil }), "ok", "ok"},
		{"pg down", pingFunc(func(stdctx.Context) error { return errors.New("refused") }), "fail", "fail"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := mount(Deps{PG: c.pg, Calendar: "local", Overrides: 8, Now: func() time.Time { return now }})

			var got ReadyResponse
			assert.Equal(t, stdhttp.StatusOK, get(t, h, "/meta/ready", &got))
			assert.Equal(t, c.status, got.Status)
			require.Len(t, got.Checks, 1)
			assert.Equal(t, c.check, got.Checks[0].Status)
			assert.Equal(t, "local", got.Calendar)
			assert.Equal(t, 8, got.Overrides)
			assert.Equal(t, "2025-04-13T12:00:00Z", got.Now)
		})
	}
}

func TestService_UptimeAndModules(t *testing.T) {
	start := time.Date(2025, 4, 13, 12, 0, 0, 0, time.UTC)
	h := mount(Deps{
		ServiceName: "hebdate-api",
		StartedAt:   start,
		Modules:     func() []string { return []string{"convert", "meta"} },
		Now:         func() time.Time { return start.Add(90 * time.Second) },
	})

	var got ServiceResponse
	get(t, h, "/meta/service", &got)
	assert.Equal(t, int64(90), got.Uptime)
	assert.Equal(t, []string{"convert", "meta"}, got.Modules)
	assert.Equal(t, "hebdate-api", got.Name)
}

func TestLegacyHealth(t *testing.T) {
	var got LegacyHealth
	assert.Equal(t, stdhttp.StatusOK, get(t, mount(Deps{}), "/health", &got))
	assert.Equal(t, "healthy", got.Status)
}
