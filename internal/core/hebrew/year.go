package hebrew

import (
	"strconv"
	"strings"

	perr "hebdate/internal/platform/errors"
)

// DefaultMillennium is assumed for year tokens longer than three letters with no millennium marker
// (תשפה → 5785). It is an approximation: such tokens can never name years 1..4999
const DefaultMillennium = 5000

// millennium letters א..ו may lead a year token
var millennium = map[rune]int{'א': 1, 'ב': 2, 'ג': 3, 'ד': 4, 'ה': 5, 'ו': 6}

// YearFromToken reconstructs a year from a single token
// - positive base 10 is used as is
// - a leading millennium letter followed by more letters scales that letter by 1000
// - a bare token of more than three letters gets DefaultMillennium
// - anything shorter decodes as is
func YearFromToken(token string) (int, error) {
	if n, ok := plainNumber(token); ok {
		if n > 0 {
			return n, nil
		}
		return 0, perr.InvalidNumeralf("year %q is not positive", token)
	}
	s := stripNumeralPunct(token)
	if s == "" {
		return 0, perr.InvalidNumeralf("empty year token")
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n > 0 {
			return n, nil
		}
		return 0, perr.InvalidNumeralf("year %q is not positive", token)
	}

	rs := []rune(s)
	base, rest := 0, s
	if v, ok := millennium[rs[0]]; ok && len(rs) > 1 {
		base, rest = v*1000, string(rs[1:])
	} else if len(rs) > 3 {
		base = DefaultMillennium
	}
	if n, err := DecodeNumeral(rest); err == nil {
		return base + n, nil
	}
	if n, err := DecodeNumeral(s); err == nil {
		return DefaultMillennium + n, nil
	}
	return 0, perr.InvalidNumeralf("year %q is not a numeral", token)
}

// Year part field names, carried by InvalidYearPart errors
const (
	PartThousands = "thousands"
	PartHundreds  = "hundreds"
	PartTens      = "tens"
	PartOnes      = "ones"
)

// SplitYear is a year entered as four separate numeral fields; "" and "0" contribute nothing
type SplitYear struct {
	Thousands string `json:"thousands" query:"h_thousands"`
	Hundreds  string `json:"hundreds" query:"h_hundreds"`
	Tens      string `json:"tens" query:"h_tens"`
	Ones      string `json:"ones" query:"h_ones"`
}

func partValue(field, raw string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" || v == "0" {
		return 0, nil
	}
	n, err := DecodeNumeral(v)
	if err != nil {
		return 0, perr.InvalidYearPart(field, raw)
	}
	return n, nil
}

// YearFromParts sums the split fields with thousands scaled by 1000
// A present field that fails to decode names itself in the error; an all-empty year is MissingYearParts
func YearFromParts(p SplitYear) (int, error) {
	parts := [...]struct {
		field, raw string
		scale      int
	}{
		{PartThousands, p.Thousands, 1000},
		{PartHundreds, p.Hundreds, 1},
		{PartTens, p.Tens, 1},
		{PartOnes, p.Ones, 1},
	}
	total := 0
	for _, part := range parts {
		n, err := partValue(part.field, part.raw)
		if err != nil {
			return 0, err
		}
		total += n * part.scale
	}
	if total == 0 {
		return 0, perr.New(perr.ErrorCodeMissingYearParts, "year parts are all empty")
	}
	return total, nil
}
