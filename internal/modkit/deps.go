package modkit

import (
	"hebdate/internal/core/calendar"
	"hebdate/internal/core/history"
	"hebdate/internal/platform/config"
	"hebdate/internal/platform/logger"
	"hebdate/internal/platform/store/pg"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// Calendar is the conversion capability, Years feeds the options listing
	Calendar     calendar.Converter
	Years        calendar.YearSource
	CalendarName string

	// History is the read-only override table; nil means the embedded default
	History *history.Table

	// PG is set only when overrides are supplemented from Postgres
	PG *pg.PG
}

// Overrides returns the configured table or the embedded default
func (d Deps) Overrides() *history.Table {
	if d.History != nil {
		return d.History
	}
	return history.MustDefault()
}

// YearSource prefers Years and falls back to Calendar when it can list years too
func (d Deps) YearSource() calendar.YearSource {
	if d.Years != nil {
		return d.Years
	}
	if ys, ok := d.Calendar.(calendar.YearSource); ok {
		return ys
	}
	return nil
}
