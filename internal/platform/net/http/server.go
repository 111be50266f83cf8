package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"hebdate/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// ServerOptions configures the listener; zero values get defaults
type ServerOptions struct {
	Addr              string        // default ":10000"
	ReadHeaderTimeout time.Duration // default 10s
	ShutdownTimeout   time.Duration // default 15s
}

// Server is a thin wrapper over chi + stdlib http.Server
type Server struct {
	mux             *chi.Mux
	srv             *stdhttp.Server
	shutdownTimeout time.Duration
}

// NewServer creates a server over a fresh chi mux
// opts receive the *chi.Mux so callers can mount routes/mw
func NewServer(o ServerOptions, opts ...func(*chi.Mux)) *Server {
	if o.Addr == "" {
		o.Addr = ":10000"
	}
	if o.ReadHeaderTimeout <= 0 {
		o.ReadHeaderTimeout = 10 * time.Second
	}
	if o.ShutdownTimeout <= 0 {
		o.ShutdownTimeout = 15 * time.Second
	}
	m := chi.NewRouter()
	for _, fn := range opts {
		fn(m)
	}
	return &Server{
		mux:             m,
		shutdownTimeout: o.ShutdownTimeout,
		srv: &stdhttp.Server{
			Addr:              o.Addr,
			Handler:           m,
			ReadHeaderTimeout: o.ReadHeaderTimeout,
		},
	}
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the listening address
func (s *Server) Addr() string { return s.srv.Addr }

// Run serves until ctx is cancelled, then drains in-flight requests
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.srv.Addr).Msg("http listening")
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("http shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
