package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"hebdate/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack; zero values get defaults
type StackOptions struct {
	// CORSOrigins defaults to "*"
	CORSOrigins []string
	// Timeout bounds each request; it should exceed the calendar client timeout
	Timeout time.Duration
	// Slow marks access log lines at warn level
	Slow time.Duration
}

// CommonStack returns the baseline middleware slice for the /api scope
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Slow <= 0 {
		o.Slow = 2 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RequestContext,
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),

		// cross-origin
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}
