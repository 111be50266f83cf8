// Package pg provides a Postgres client using pgxpool with optional query tracing
package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures pgxpool for pg
type Config struct {
	URL      string
	MaxConns int32
	SlowMs   int

	// PingAttempts and PingTimeout bound Connect; zero picks the defaults
	PingAttempts int
	PingTimeout  time.Duration
}

// PG is a postgres client with pool and optional tracer
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	SlowMs int
}

var (
	newPool = pgxpool.NewWithConfig
	ping    = func(ctx context.Context, p *pgxpool.Pool) error { return p.Ping(ctx) }
	sleep   = time.Sleep
)

// Open creates a new PG client with the given config, optional tracer, and optional pool config mutator
func Open(ctx context.Context, cfg Config, tracer QueryTracer, poolCfgMut func(*pgxpool.Config)) (*PG, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if poolCfgMut != nil {
		poolCfgMut(pcfg)
	}
	pool, err := newPool(ctx, pcfg) // use seam
	if err != nil {
		return nil, err
	}
	return &PG{
		Pool:   pool,
		Tracer: tracer,
		SlowMs: cfg.SlowMs,
	}, nil
}

// Connect opens the pool and pings it with backoff; the client is returned only once healthy
func Connect(ctx context.Context, cfg Config, tracer QueryTracer) (*PG, error) {
	p, err := Open(ctx, cfg, tracer, nil)
	if err != nil {
		return nil, err
	}

	attempts, timeout := cfg.PingAttempts, cfg.PingTimeout
	if attempts <= 0 {
		attempts = 6
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	const (
		backoffStart   = 150 * time.Millisecond
		backoffCeiling = 2 * time.Second
	)

	var lastErr error
	backoff := backoffStart
	for i := 0; i < attempts; i++ {
		toCtx, cancel := context.WithTimeout(ctx, timeout)
		lastErr = ping(toCtx, p.Pool)
		cancel()
		if lastErr == nil {
			return p, nil
		}
		if ctx.Err() != nil {
			p.Close()
			return nil, ctx.Err()
		}
		if i < attempts-1 {
			sleep(backoff)
			backoff = min(backoff*2, backoffCeiling)
		}
	}
	p.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, lastErr)
}

// Query runs sql on the pool and reports it to the tracer
func (p *PG) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	start := time.Now()
	rows, err := p.Pool.Query(ctx, sql, args...)
	p.trace(ctx, sql, args, start, err)
	return rows, err
}

func (p *PG) trace(ctx context.Context, sql string, args []any, start time.Time, err error) {
	if p.Tracer == nil {
		return
	}
	el := time.Since(start)
	p.Tracer.OnQuery(ctx, QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: el.Microseconds(),
		Err:       err,
		Slow:      p.SlowMs > 0 && el >= time.Duration(p.SlowMs)*time.Millisecond,
	})
}

// Ping checks the pool can reach the server
func (p *PG) Ping(ctx context.Context) error { return ping(ctx, p.Pool) }

// Close closes the pool
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
