package hebrew

import (
	"testing"

	perr "hebdate/internal/platform/errors"
	kit "hebdate/internal/platform/testkit"
)

func TestYearFromToken(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"5785", 5785},
		{"תשפה", 5785},
		{`תשפ"ה`, 5785},
		{"התשפה", 5785},
		{"ה'תשפ\"ה", 5785},
		{"ג'תקמ\"ו", 3546},
		{"אנו", 1056},
		{"תשפ", 780},
		{"פה", 85},
		{"ה", 5},
		{"תתקצט", 5999},
	}
	for _, c := range cases {
		got, err := YearFromToken(c.in)
		if err != nil || got != c.want {
			t.Fatalf("YearFromToken(%q) = %d, %v; want %d", c.in, got, err, c.want)
		}
	}
}

func TestYearFromTokenFailures(t *testing.T) {
	for _, in := range []string{"", "0", "00", "abc", "תשפם", `"`, "-5785", "-1", " -0 "} {
		if _, err := YearFromToken(in); !perr.IsCode(err, perr.ErrorCodeInvalidNumeral) {
			t.Fatalf("YearFromToken(%q) err = %v", in, err)
		}
	}
}

func TestYearFromParts(t *testing.T) {
	cases := []struct {
		name string
		in   SplitYear
		want int
	}{
		{"thousands only", SplitYear{Thousands: "ה", Hundreds: "0", Tens: "0", Ones: "0"}, 5000},
		{"zero tens", SplitYear{Thousands: "א", Hundreds: "ק", Tens: "0", Ones: "ה"}, 1105},
		{"full", SplitYear{Thousands: "ה", Hundreds: "תש", Tens: "פ", Ones: "ה"}, 5785},
		{"multi letter hundreds", SplitYear{Thousands: "ה", Hundreds: "תתק", Tens: "צ", Ones: "ט"}, 5999},
		{"blank thousands", SplitYear{Hundreds: "תש", Tens: "פ", Ones: "ה"}, 785},
		{"geresh tolerated", SplitYear{Thousands: "ה׳", Ones: " ב "}, 5002},
	}
	for _, c := range cases {
		got, err := YearFromParts(c.in)
		if err != nil || got != c.want {
			t.Fatalf("%s: YearFromParts(%+v) = %d, %v; want %d", c.name, c.in, got, err, c.want)
		}
	}
}

func TestYearFromPartsFieldOrderDoesNotMatter(t *testing.T) {
	a, errA := YearFromParts(SplitYear{Tens: "פ", Thousands: "ה", Ones: "ה", Hundreds: "תש"})
	b, errB := YearFromParts(SplitYear{Hundreds: "תש", Ones: "ה", Thousands: "ה", Tens: "פ"})
	if errA != nil || errB != nil || a != b {
		t.Fatalf("order changed result: %d/%v vs %d/%v", a, errA, b, errB)
	}
}

func TestYearFromPartsMissing(t *testing.T) {
	for _, in := range []SplitYear{
		{},
		{Thousands: "0", Hundreds: "0", Tens: "0", Ones: "0"},
		{Thousands: " ", Ones: "0"},
	} {
		_, err := YearFromParts(in)
		kit.MustSlug(t, err, "MISSING_YEAR_PARTS")
	}
}

func TestYearFromPartsInvalidField(t *testing.T) {
	cases := []struct {
		in    SplitYear
		field string
		slug  string
	}{
		{SplitYear{Thousands: "x"}, PartThousands, "INVALID_THOUSANDS_PART"},
		{SplitYear{Thousands: "ה", Hundreds: "12"}, PartHundreds, "INVALID_HUNDREDS_PART"},
		{SplitYear{Thousands: "ה", Tens: "ךך"}, PartTens, "INVALID_TENS_PART"},
		{SplitYear{Thousands: "ה", Ones: "?"}, PartOnes, "INVALID_ONES_PART"},
	}
	for _, c := range cases {
		_, err := YearFromParts(c.in)
		if perr.FieldOf(err) != c.field {
			t.Fatalf("YearFromParts(%+v) field = %q, want %q", c.in, perr.FieldOf(err), c.field)
		}
		kit.MustSlug(t, err, c.slug)
	}
}
