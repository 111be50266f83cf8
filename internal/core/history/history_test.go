package history

import (
	"slices"
	"testing"

	"hebdate/internal/core/calendar"
	perr "hebdate/internal/platform/errors"
)

func TestDefaultTable(t *testing.T) {
	tbl, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if tbl.Len() != 25 {
		t.Fatalf("Len = %d, want 25", tbl.Len())
	}

	e, ok := tbl.Lookup("1948-ניסן-1")
	if !ok {
		t.Fatalf("1948-ניסן-1 missing")
	}
	if e.Gregorian != (calendar.Gregorian{Day: 16, Month: 3, Year: -1812}) {
		t.Fatalf("gregorian = %+v", e.Gregorian)
	}
	if e.GregorianText != "16/3/-1812" || e.Hebrew != "א׳ בְּנִיסָן א׳תתקמ״ח" {
		t.Fatalf("stored strings changed: %q %q", e.Hebrew, e.GregorianText)
	}

	e, ok = tbl.Lookup(Key(5708, "אייר", 5))
	if !ok || e.Gregorian.String() != "14/5/1948" {
		t.Fatalf("5708-אייר-5 = %+v, %v", e, ok)
	}
	if _, ok := tbl.Lookup("5785-ניסן-1"); ok {
		t.Fatalf("unexpected hit")
	}
}

func TestDefaultEntriesAreConsistent(t *testing.T) {
	tbl := MustDefault()
	for _, e := range tbl.Entries() {
		if e.Gregorian.String() != e.GregorianText {
			t.Fatalf("%s: %q renders as %q", e.Key(), e.GregorianText, e.Gregorian.String())
		}
		got, ok := tbl.Lookup(e.Key())
		if !ok || got != e {
			t.Fatalf("%s does not look itself up", e.Key())
		}
	}
}

func TestEntriesIsACopy(t *testing.T) {
	tbl := MustDefault()
	es := tbl.Entries()
	es[0].Hebrew = "changed"
	if tbl.Entries()[0].Hebrew == "changed" {
		t.Fatalf("Entries leaked the arena")
	}
}

func TestKeyRoundTrip(t *testing.T) {
	k := Key(3622, "כסלו", 25)
	if k != "3622-כסלו-25" {
		t.Fatalf("Key = %q", k)
	}
	y, m, d, err := ParseKey("2448-סיון-6")
	if err != nil || y != 2448 || m != "סיון" || d != 6 {
		t.Fatalf("ParseKey = %d %q %d %v", y, m, d, err)
	}
	y, m, d, err = ParseKey("5784-אדר ב-14")
	if err != nil || y != 5784 || m != "אדר ב" || d != 14 {
		t.Fatalf("ParseKey = %d %q %d %v", y, m, d, err)
	}
	for _, bad := range []string{"", "1948", "1948-ניסן", "-ניסן-1", "x-ניסן-1", "1948--1", "1948-ניסן-"} {
		if _, _, _, err := ParseKey(bad); err == nil {
			t.Fatalf("ParseKey(%q) should fail", bad)
		}
	}
}

func mustEntry(t *testing.T, y int, m string, d int, g string) Entry {
	t.Helper()
	e, err := NewEntry(y, m, d, "טקסט", g)
	if err != nil {
		t.Fatalf("NewEntry: %v", err)
	}
	return e
}

func TestBuildRejectsDuplicates(t *testing.T) {
	a := mustEntry(t, 5000, "ניסן", 1, "1/1/1")
	if _, err := Build([]Entry{a, a}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("Build duplicate err = %v", err)
	}
}

func TestNewEntryValidates(t *testing.T) {
	cases := []struct {
		y    int
		m    string
		d    int
		heb  string
		greg string
	}{
		{0, "ניסן", 1, "x", "1/1/1"},
		{1, "", 1, "x", "1/1/1"},
		{1, "ניסן", 0, "x", "1/1/1"},
		{1, "ניסן", 1, " ", "1/1/1"},
		{1, "ניסן", 1, "x", "1-1-1"},
	}
	for _, c := range cases {
		if _, err := NewEntry(c.y, c.m, c.d, c.heb, c.greg); err == nil {
			t.Fatalf("NewEntry(%+v) should fail", c)
		}
	}
}

func TestSupplementEmbeddedWins(t *testing.T) {
	base := MustDefault()
	clash := mustEntry(t, 1948, "ניסן", 1, "1/1/1")
	fresh := mustEntry(t, 5785, "ניסן", 15, "13/4/2025")

	out, skipped := base.Supplement([]Entry{clash, fresh})
	if !slices.Equal(skipped, []string{"1948-ניסן-1"}) {
		t.Fatalf("skipped = %v", skipped)
	}
	if out.Len() != base.Len()+1 {
		t.Fatalf("Len = %d", out.Len())
	}
	e, _ := out.Lookup("1948-ניסן-1")
	if e.GregorianText != "16/3/-1812" {
		t.Fatalf("embedded entry replaced: %+v", e)
	}
	if _, ok := out.Lookup("5785-ניסן-15"); !ok {
		t.Fatalf("supplement missing")
	}
	if _, ok := base.Lookup("5785-ניסן-15"); ok {
		t.Fatalf("base table was mutated")
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode([]byte("overrides: [")); err == nil {
		t.Fatalf("bad yaml should fail")
	}
	_, err := Decode([]byte("overrides:\n  - key: \"nope\"\n    hebrew: x\n    gregorian: 1/1/1\n"))
	if perr.FieldOf(err) != "overrides[0].key" {
		t.Fatalf("field = %q (%v)", perr.FieldOf(err), err)
	}
}

func TestNilTable(t *testing.T) {
	var tbl *Table
	if _, ok := tbl.Lookup("x"); ok || tbl.Len() != 0 || tbl.Entries() != nil {
		t.Fatalf("nil table should be empty")
	}
}
