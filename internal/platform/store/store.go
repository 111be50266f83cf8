// Package store opens the optional storage backends the service can run with
package store

import (
	"context"
	"errors"
	"fmt"

	"hebdate/internal/platform/logger"
	"hebdate/internal/platform/store/pg"
)

// Store is the facade for optional backends
// zero value is safe but does nothing
type Store struct {
	// Log is the logger used by subclients
	// zero means a no op zerolog logger
	Log logger.Logger

	// PG holds supplemental overrides, nil when disabled
	PG *pg.PG
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// connect is a seam for tests
var connect = pg.Connect

// Open constructs a Store with the requested backends
// backends not enabled in cfg remain nil on the Store
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	// defaults for zero logger to avoid nil checks
	s.Log = s.Log.With().Logger()

	if cfg.PG.Enabled {
		var tracer pg.QueryTracer
		if cfg.PG.LogSQL {
			tracer = pg.Tracer(s.Log)
		}
		p, err := connect(ctx, pg.Config{
			URL:          cfg.PG.URL,
			MaxConns:     cfg.PG.MaxConns,
			SlowMs:       cfg.PG.SlowQueryMs,
			PingAttempts: cfg.PG.ConnectRetries,
			PingTimeout:  cfg.PG.PingTimeout,
		}, tracer)
		if err != nil {
			return nil, err
		}
		s.PG = p
	}

	return s, nil
}

// Guard verifies every configured backend answers a ping
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	if s.PG != nil {
		if err := s.PG.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("pg: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Close closes all initialized backends
// nil backends are ignored
func (s *Store) Close(_ context.Context) error {
	if s == nil {
		return nil
	}
	if s.PG != nil {
		s.PG.Close()
	}
	return nil
}
