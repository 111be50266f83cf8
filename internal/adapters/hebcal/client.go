// Package hebcal is the remote calendar capability backed by the hebcal.com converter REST API
// Every failure is terminal for the call: there are no retries
package hebcal

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	perr "hebdate/internal/platform/errors"
	"hebdate/internal/platform/logger"
	pnet "hebdate/internal/platform/net"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	baseURLDefault = "https://www.hebcal.com"
	defaultTimeout = 10 * time.Second
	defaultUA      = "hebdate"
	defaultRPS     = 5
	defaultBurst   = 10
	maxBody        = 1 << 20
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// RPS and Burst bound outgoing requests; RPS < 0 disables the limiter
	RPS   float64
	Burst int
}

// Client calls the converter endpoint; identical concurrent lookups share one request
type Client struct {
	http    *http.Client
	opts    Options
	limiter *rate.Limiter
	group   singleflight.Group
	log     logger.Logger
	now     func() time.Time
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.RPS == 0 {
		o.RPS = defaultRPS
	}
	if o.Burst <= 0 {
		o.Burst = defaultBurst
	}
	var lim *rate.Limiter
	if o.RPS > 0 {
		lim = rate.NewLimiter(rate.Limit(o.RPS), o.Burst)
	}
	return &Client{
		http:    &http.Client{Timeout: o.Timeout},
		opts:    o,
		limiter: lim,
		log:     *logger.Named("hebcal"),
		now:     time.Now,
	}
}

// converter issues GET {base}/converter?cfg=json&... and decodes the payload
// The shared request is detached from any one caller's cancellation but bounded by Timeout
func (c *Client) converter(ctx context.Context, q url.Values) (response, error) {
	q.Set("cfg", "json")
	u := c.opts.BaseURL + "/converter?" + q.Encode()
	reqID := pnet.RequestID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}

	ch := c.group.DoChan(u, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.opts.Timeout)
		defer cancel()
		return c.fetch(fctx, u, reqID)
	})
	select {
	case <-ctx.Done():
		return response{}, perr.Externalf(ctx.Err(), "hebcal request abandoned")
	case res := <-ch:
		if res.Err != nil {
			return response{}, res.Err
		}
		return res.Val.(response), nil
	}
}

func (c *Client) fetch(ctx context.Context, u, reqID string) (response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return response{}, perr.Externalf(err, "hebcal rate limit wait")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return response{}, perr.Externalf(err, "hebcal new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(pnet.HeaderRequestID, reqID)

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		c.log.Warn().Err(err).Str("request_id", reqID).Dur("latency", lat).Msg("hebcal transport error")
		return response{}, perr.Externalf(err, "hebcal request failed")
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("url", u).
		Str("request_id", reqID).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("hebcal http response")

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return response{}, perr.Externalf(err, "hebcal read body")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		tail := body
		if len(tail) > 512 {
			tail = tail[:512]
		}
		return response{}, perr.Externalf(nil, "hebcal unexpected status %d body %s", resp.StatusCode, string(tail))
	}

	var out response
	if err := json.Unmarshal(body, &out); err != nil {
		return response{}, perr.Externalf(err, "hebcal malformed payload")
	}
	if out.Error != "" {
		c.log.Warn().Str("error", out.Error).Str("request_id", reqID).Msg("hebcal returned an error")
		return response{}, perr.Externalf(nil, "hebcal: %s", out.Error)
	}
	return out, nil
}
