// Package repo provides override lookups for conversions
package repo

import (
	"context"

	"hebdate/internal/core/history"
)

// Repo defines the repository contract for overrides
type Repo interface {
	Lookup(ctx context.Context, year int, monthLabel string, day int) (history.Entry, bool)
	Len() int
}

// table implements Repo over the read-only override arena
type table struct{ t *history.Table }

// NewTable binds a Repo to t; nil binds the embedded default
func NewTable(t *history.Table) Repo {
	if t == nil {
		t = history.MustDefault()
	}
	return table{t: t}
}

func (r table) Lookup(_ context.Context, year int, monthLabel string, day int) (history.Entry, bool) {
	return r.t.Lookup(history.Key(year, monthLabel, day))
}

func (r table) Len() int { return r.t.Len() }
