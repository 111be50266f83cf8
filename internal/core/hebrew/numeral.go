// Package hebrew decodes Hebrew date text: gematria numerals, month names, years and free text dates
// Everything here is pure and safe for concurrent use; the lookup tables are built once at init
package hebrew

import (
	"strconv"
	"strings"

	perr "hebdate/internal/platform/errors"
)

const (
	geresh    = '\u05f3'
	gershayim = '\u05f4'
)

// letterValues is the numeral alphabet; final forms are not members
var letterValues = map[rune]int{
	'א': 1, 'ב': 2, 'ג': 3, 'ד': 4, 'ה': 5, 'ו': 6, 'ז': 7, 'ח': 8, 'ט': 9,
	'י': 10, 'כ': 20, 'ל': 30, 'מ': 40, 'נ': 50, 'ס': 60, 'ע': 70, 'פ': 80, 'צ': 90,
	'ק': 100, 'ר': 200, 'ש': 300, 'ת': 400,
}

// numeralPunct are the geresh/gershayim look-alikes users type between letters
const numeralPunct = "'\"׳״’“”«»‹›‼‽‾‿⁀/-"

func isNumeralPunct(r rune) bool { return strings.ContainsRune(numeralPunct, r) }

// plainNumber reads a base 10 token with its sign, before any punctuation is stripped
func plainNumber(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil
}

// stripNumeralPunct removes numeral punctuation and surrounding spaces
func stripNumeralPunct(s string) string {
	s = strings.TrimSpace(s)
	if strings.IndexFunc(s, isNumeralPunct) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !isNumeralPunct(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// DecodeNumeral returns the additive gematria value of token
// Any rune outside the alphabet invalidates the whole token; there is no partial sum
func DecodeNumeral(token string) (int, error) {
	s := stripNumeralPunct(token)
	if s == "" {
		return 0, perr.InvalidNumeralf("empty numeral %q", token)
	}
	sum := 0
	for _, r := range s {
		v, ok := letterValues[r]
		if !ok {
			return 0, perr.InvalidNumeralf("numeral %q contains %q", token, r)
		}
		sum += v
	}
	return sum, nil
}

// IsNumeral reports whether token decodes as a gematria numeral
func IsNumeral(token string) bool {
	_, err := DecodeNumeral(token)
	return err == nil
}

var (
	hundredLetters = [...]rune{0, 'ק', 'ר', 'ש', 'ת'}
	tenLetters     = [...]rune{0, 'י', 'כ', 'ל', 'מ', 'נ', 'ס', 'ע', 'פ', 'צ'}
	oneLetters     = [...]rune{0, 'א', 'ב', 'ג', 'ד', 'ה', 'ו', 'ז', 'ח', 'ט'}
)

// letters spells n without punctuation; 400s repeat, 15 and 16 avoid the divine name
func letters(n int) []rune {
	out := make([]rune, 0, 6)
	for n >= 400 {
		out = append(out, 'ת')
		n -= 400
	}
	if n >= 100 {
		out = append(out, hundredLetters[n/100])
		n %= 100
	}
	switch n {
	case 15:
		return append(out, 'ט', 'ו')
	case 16:
		return append(out, 'ט', 'ז')
	}
	if n >= 10 {
		out = append(out, tenLetters[n/10])
		n %= 10
	}
	if n > 0 {
		out = append(out, oneLetters[n])
	}
	return out
}

// punctuate adds a geresh after a single letter or gershayim before the last one
func punctuate(rs []rune) string {
	switch len(rs) {
	case 0:
		return ""
	case 1:
		return string(rs) + string(geresh)
	}
	last := len(rs) - 1
	return string(rs[:last]) + string(gershayim) + string(rs[last])
}

// Letters spells n without geresh or gershayim, as in option lists: 15 → טו
func Letters(n int) string {
	if n < 1 || n > 999 {
		return strconv.Itoa(n)
	}
	return string(letters(n))
}

// EncodeNumeral renders 1..999 the conventional way: 15 → ט״ו, 1 → א׳, 785 → תשפ״ה
// Values outside that range fall back to base 10
func EncodeNumeral(n int) string {
	if n < 1 || n > 999 {
		return strconv.Itoa(n)
	}
	return punctuate(letters(n))
}

// FormatYear renders a full year with its millennium letter: 5785 → ה׳תשפ״ה
func FormatYear(year int) string {
	if year < 1 || year > 9999 {
		return strconv.Itoa(year)
	}
	th, rem := year/1000, year%1000
	if th == 0 {
		return EncodeNumeral(rem)
	}
	prefix := string(oneLetters[th]) + string(geresh)
	if rem == 0 {
		return prefix
	}
	return prefix + EncodeNumeral(rem)
}
