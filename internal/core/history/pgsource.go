package history

import (
	"context"

	perr "hebdate/internal/platform/errors"
	"hebdate/internal/platform/logger"

	"github.com/jackc/pgx/v5"
)

// Querier is the read surface the Postgres supplement needs; *pg.PG satisfies it
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// SchemaSQL creates the supplement table; operators own its contents
const SchemaSQL = `
create table if not exists historical_overrides (
	hyear     int  not null check (hyear > 0),
	hmonth    text not null,
	hday      int  not null check (hday > 0),
	hebrew    text not null,
	gregorian text not null,
	primary key (hyear, hmonth, hday)
)`

const selectOverrides = `
select hyear, hmonth, hday, hebrew, gregorian
from historical_overrides
order by hyear, hmonth, hday`

type overrideRow struct {
	Year, Day                int32
	Month, Hebrew, Gregorian string
}

// LoadPG reads supplemental overrides; a missing table yields no rows rather than an error
func LoadPG(ctx context.Context, q Querier) ([]Entry, error) {
	log := logger.Named("history")

	rows, err := q.Query(ctx, selectOverrides)
	if err != nil {
		if perr.IsUndefinedTable(err) {
			log.Warn().Msg("historical_overrides table not found; no supplement")
			return nil, nil
		}
		return nil, perr.FromPostgresf(err, "load historical overrides")
	}
	var (
		r   overrideRow
		out []Entry
	)
	_, err = pgx.ForEachRow(rows, []any{&r.Year, &r.Month, &r.Day, &r.Hebrew, &r.Gregorian}, func() error {
		e, err := NewEntry(int(r.Year), r.Month, int(r.Day), r.Hebrew, r.Gregorian)
		if err != nil {
			log.Warn().Err(err).Str("key", Key(int(r.Year), r.Month, int(r.Day))).Msg("skipping invalid override row")
			return nil
		}
		out = append(out, e)
		return nil
	})
	if err != nil {
		if perr.IsUndefinedTable(err) {
			log.Warn().Msg("historical_overrides table not found; no supplement")
			return nil, nil
		}
		return nil, perr.FromPostgresf(err, "scan historical overrides")
	}
	return out, nil
}

// WithPG supplements base with the Postgres rows; embedded keys win and collisions are logged
func WithPG(ctx context.Context, base *Table, q Querier) (*Table, error) {
	extra, err := LoadPG(ctx, q)
	if err != nil {
		return nil, err
	}
	t, skipped := base.Supplement(extra)
	log := logger.Named("history")
	for _, k := range skipped {
		log.Warn().Str("key", k).Msg("supplemental override ignored; embedded entry wins")
	}
	log.Info().Int("embedded", base.Len()).Int("supplemental", t.Len()-base.Len()).Msg("override table ready")
	return t, nil
}
