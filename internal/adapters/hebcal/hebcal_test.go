package hebcal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hebdate/internal/adapters/localcal"
	"hebdate/internal/core/calendar"
	"hebdate/internal/platform/config"
	perr "hebdate/internal/platform/errors"
	pnet "hebdate/internal/platform/net"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConverter(t *testing.T, h http.HandlerFunc, o Options) *Converter {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	o.BaseURL = srv.URL
	if o.RPS == 0 {
		o.RPS = -1
	}
	return NewConverter(NewClient(o), localcal.New())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestGregorianToHebrew(t *testing.T) {
	var gotReqID, gotUA string
	conv := newTestConverter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/converter", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "json", q.Get("cfg"))
		assert.Equal(t, "2025", q.Get("gy"))
		assert.Equal(t, "4", q.Get("gm"))
		assert.Equal(t, "13", q.Get("gd"))
		assert.Equal(t, "1", q.Get("g2h"))
		gotReqID = r.Header.Get(pnet.HeaderRequestID)
		gotUA = r.Header.Get("User-Agent")
		writeJSON(w, map[string]any{
			"gy": 2025, "gm": 4, "gd": 13, "hy": 5785, "hm": "Nisan", "hd": 15, "hebrew": "ט״ו בְּנִיסָן תשפ״ה",
		})
	}, Options{})

	got, err := conv.GregorianToHebrew(context.Background(), calendar.Gregorian{Day: 13, Month: 4, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, calendar.HebrewResult{Year: 5785, MonthLabel: "Nisan", Day: 15, Formatted: "ט״ו בְּנִיסָן תשפ״ה"}, got)
	assert.Equal(t, defaultUA, gotUA)
	_, uerr := uuid.Parse(gotReqID)
	assert.NoError(t, uerr, "generated request id should be a uuid")
}

func TestHebrewToGregorianPropagatesRequestID(t *testing.T) {
	var gotReqID string
	conv := newTestConverter(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "5785", q.Get("hy"))
		assert.Equal(t, "Adar II", q.Get("hm"))
		assert.Equal(t, "14", q.Get("hd"))
		assert.Equal(t, "1", q.Get("h2g"))
		gotReqID = r.Header.Get(pnet.HeaderRequestID)
		writeJSON(w, map[string]any{"gy": 2025, "gm": 3, "gd": 14, "hebrew": "י״ד בַּאֲדָר תשפ״ה"})
	}, Options{})

	ctx := pnet.WithRequest(context.Background(), "req-42")
	got, err := conv.HebrewToGregorian(ctx, 14, "Adar II", 5785)
	require.NoError(t, err)
	assert.Equal(t, calendar.Gregorian{Day: 14, Month: 3, Year: 2025}, got.Date)
	assert.Equal(t, "14/3/2025", got.Formatted)
	assert.Equal(t, "req-42", gotReqID)
}

func TestFailuresAreExternal(t *testing.T) {
	cases := []struct {
		name string
		h    http.HandlerFunc
	}{
		{"error payload", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, map[string]any{"error": "Hebrew day out of valid range"})
		}},
		{"server error", func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"malformed payload", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		}},
		{"missing fields", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, map[string]any{"hebrew": "x"})
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conv := newTestConverter(t, tc.h, Options{})
			_, err := conv.HebrewToGregorian(context.Background(), 40, "Nisan", 5785)
			require.Error(t, err)
			assert.Equal(t, perr.ErrorCodeExternal, perr.CodeOf(err))
			assert.Equal(t, "EXTERNAL_API_ERROR", perr.WireFrom(err).Slug)
			assert.Equal(t, http.StatusBadGateway, perr.HTTPStatus(err))
		})
	}
}

func TestTimeoutIsTerminal(t *testing.T) {
	var hits atomic.Int32
	conv := newTestConverter(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, Options{Timeout: 50 * time.Millisecond})

	_, err := conv.HebrewToGregorian(context.Background(), 1, "Nisan", 5785)
	require.Error(t, err)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeExternal))
	assert.Equal(t, int32(1), hits.Load(), "no retries")
}

func TestCallerCancellation(t *testing.T) {
	release := make(chan struct{})
	conv := newTestConverter(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, Options{Timeout: time.Second})
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err := conv.GregorianToHebrew(ctx, calendar.Gregorian{Day: 1, Month: 1, Year: 2025})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeExternal))
}

func TestIdenticalRequestsCollapse(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	conv := newTestConverter(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		<-release
		writeJSON(w, map[string]any{"gy": 2024, "gm": 10, "gd": 3})
	}, Options{})

	const n = 5
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := conv.HebrewToGregorian(context.Background(), 1, "Tishrei", 5785)
			errs <- err
		}()
	}
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), hits.Load())
}

func TestYearSourceDelegates(t *testing.T) {
	conv := NewConverter(NewClient(Options{}), localcal.New())
	assert.Equal(t, "ה׳תשפ״ה", conv.FormatHebrewYear(5785))
	y, err := conv.CurrentHebrewYear(context.Background())
	require.NoError(t, err)
	assert.Greater(t, y, 5784)

	bare := NewConverter(NewClient(Options{}), nil)
	_, err = bare.CurrentHebrewYear(context.Background())
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnavailable))
	assert.Equal(t, "5785", bare.FormatHebrewYear(5785))
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Options{})
	assert.Equal(t, baseURLDefault, c.opts.BaseURL)
	assert.Equal(t, defaultTimeout, c.opts.Timeout)
	assert.NotNil(t, c.limiter)

	c = NewClient(Options{RPS: -1})
	assert.Nil(t, c.limiter)
}

func TestFromConfig(t *testing.T) {
	t.Setenv("TEST_HEBCAL_URL", "http://cal.local:8080")
	t.Setenv("TEST_HEBCAL_TIMEOUT", "2s")
	t.Setenv("TEST_HEBCAL_RPS", "-1")

	o := FromConfig(config.New().Prefix("TEST_"))
	assert.Equal(t, "http://cal.local:8080", o.BaseURL)
	assert.Equal(t, 2*time.Second, o.Timeout)
	assert.Equal(t, -1.0, o.RPS)
	assert.Equal(t, defaultBurst, o.Burst)
	assert.Equal(t, defaultUA, o.UserAgent)
}
