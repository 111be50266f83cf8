package main

import (
	"bytes"
	"encoding/json"
	"testing"

	perr "hebdate/internal/platform/errors"
	"hebdate/internal/platform/testkit"
	"hebdate/internal/services/api/convert/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(append(args, "--offline"))
	err := cmd.Execute()
	return out.String(), err
}

func TestParse_Text(t *testing.T) {
	out, err := run(t, "parse", `ה' בניסן תשפ"ה`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	testkit.MustContain(t, out, "= 3/4/2025")
}

func TestConvertHebrew_JSON(t *testing.T) {
	out, err := run(t, "convert-hebrew", "--day", "15", "--month", "ניסן", "--year", "5785", "--json")
	if err != nil {
		t.Fatalf("convert-hebrew: %v", err)
	}
	var r domain.Result
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if r.Gregorian != (domain.GregorianDate{Year: 2025, Month: 4, Day: 13}) || r.Source != domain.SourceCalendar {
		t.Fatalf("result = %+v", r)
	}
}

func TestConvert_Gregorian(t *testing.T) {
	out, err := run(t, "convert", "--year", "2025", "--month", "4", "--day", "13", "--json")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	var r domain.Result
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if r.Hebrew != (domain.HebrewDate{Year: 5785, Month: "ניסן", Day: 15}) {
		t.Fatalf("hebrew = %+v", r.Hebrew)
	}
}

func TestSplit_Historical(t *testing.T) {
	out, err := run(t, "split", "--thousands", "א", "--hundreds", "תתק", "--tens", "מ", "--ones", "ח", "--month", "ניסן", "--day", "א")
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	testkit.MustContain(t, out, "(historical)")
}

func TestErrorsCarrySlugs(t *testing.T) {
	cases := []struct {
		args []string
		slug string
	}{
		{[]string{"parse", "hello"}, "INVALID_HEBREW_DATE_FORMAT"},
		{[]string{"convert-hebrew", "--month", "ניסן", "--year", "5785"}, "MISSING_PARAMETERS"},
		{[]string{"split", "--month", "ניסן", "--day", "1"}, "MISSING_YEAR_PARTS"},
		{[]string{"convert", "--year", "2025", "--month", "13", "--day", "1"}, "INVALID_ARGUMENT"},
	}
	for _, c := range cases {
		_, err := run(t, c.args...)
		if got := perr.WireFrom(err).Slug; got != c.slug {
			t.Fatalf("%v: slug %q, want %q (err %v)", c.args, got, c.slug, err)
		}
	}
}

func TestOptions_Text(t *testing.T) {
	out, err := run(t, "options")
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	testkit.MustContain(t, out, "months: אדר א")
	testkit.MustContain(t, out, "years:")
}
