package history

import (
	"context"
	"errors"
	"fmt"
	"testing"

	perr "hebdate/internal/platform/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRows struct {
	data [][]any
	i    int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.data[r.i-1], nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.err != nil || r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan %d into %d", len(row), len(dest))
	}
	for i, v := range row {
		switch d := dest[i].(type) {
		case *int32:
			*d = v.(int32)
		case *string:
			*d = v.(string)
		default:
			return fmt.Errorf("unsupported dest %T", d)
		}
	}
	return nil
}

type fakeQuerier struct {
	rows *fakeRows
	err  error
	sql  string
}

func (q *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.sql = sql
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func row(y int32, m string, d int32, heb, greg string) []any { return []any{y, m, d, heb, greg} }

func TestLoadPG(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{data: [][]any{
		row(5785, "ניסן", 15, "ט״ו בְּנִיסָן ה׳תשפ״ה", "13/4/2025"),
		row(5785, "ניסן", 16, "ט״ז בְּנִיסָן ה׳תשפ״ה", "not-a-date"),
	}}}
	got, err := LoadPG(context.Background(), q)
	if err != nil {
		t.Fatalf("LoadPG: %v", err)
	}
	if len(got) != 1 || got[0].Key() != "5785-ניסן-15" || got[0].Gregorian.Year != 2025 {
		t.Fatalf("got %+v", got)
	}
}

func TestLoadPGMissingTable(t *testing.T) {
	missing := &pgconn.PgError{Code: "42P01", Message: `relation "historical_overrides" does not exist`}

	got, err := LoadPG(context.Background(), &fakeQuerier{err: missing})
	if err != nil || got != nil {
		t.Fatalf("query path: %v %v", got, err)
	}
	got, err = LoadPG(context.Background(), &fakeQuerier{rows: &fakeRows{err: missing}})
	if err != nil || got != nil {
		t.Fatalf("rows path: %v %v", got, err)
	}
}

func TestLoadPGFailure(t *testing.T) {
	_, err := LoadPG(context.Background(), &fakeQuerier{err: errors.New("connection reset")})
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("err = %v", err)
	}
}

func TestWithPG(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{data: [][]any{
		row(1948, "ניסן", 1, "x", "1/1/1"),
		row(5785, "ניסן", 15, "ט״ו בְּנִיסָן ה׳תשפ״ה", "13/4/2025"),
	}}}
	base := MustDefault()
	tbl, err := WithPG(context.Background(), base, q)
	if err != nil {
		t.Fatalf("WithPG: %v", err)
	}
	if tbl.Len() != base.Len()+1 {
		t.Fatalf("Len = %d", tbl.Len())
	}
	if e, _ := tbl.Lookup("1948-ניסן-1"); e.GregorianText != "16/3/-1812" {
		t.Fatalf("embedded entry replaced")
	}
}
