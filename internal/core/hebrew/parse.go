package hebrew

import (
	"strconv"
	"strings"

	perr "hebdate/internal/platform/errors"
	"hebdate/internal/platform/logger"
)

// DayFromToken reads a day of month written in gematria or base 10
func DayFromToken(token string) (int, error) {
	if n, ok := plainNumber(token); ok {
		if n > 0 {
			return n, nil
		}
		return 0, perr.InvalidNumeralf("day %q is not positive", token)
	}
	s := stripNumeralPunct(token)
	if s == "" {
		return 0, perr.InvalidNumeralf("empty day token")
	}
	if n, err := DecodeNumeral(s); err == nil {
		return n, nil
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n, nil
	}
	return 0, perr.InvalidNumeralf("day %q is neither a numeral nor a number", token)
}

// Parse reads free text such as "ה' בניסן תשפ"ה" or "15 אב 5785"
// Every occurrence of the matched month label separates the text; the day precedes the first
// and the year follows it
func Parse(text string) (Date, error) {
	if strings.TrimSpace(text) == "" {
		return Date{}, perr.MissingParamsf("date text is required")
	}
	log := logger.Named("parser")

	cleaned := Clean(text)
	log.Debug().Str("input", text).Str("cleaned", cleaned).Msg("cleaned date text")

	month, _, ok := FindMonth(cleaned)
	if !ok {
		log.Warn().Str("input", text).Msg("no month name in date text")
		return Date{}, perr.InvalidDateFormatf("no month name in %q", text)
	}
	parts := strings.Split(cleaned, month.Label())
	dayPart := strings.TrimSpace(parts[0])
	yearPart := strings.TrimSpace(parts[1])
	log.Debug().Str("month", month.Label()).Str("day_part", dayPart).Str("year_part", yearPart).
		Msg("matched month")

	day, err := DayFromToken(dayPart)
	if err != nil {
		log.Warn().Str("input", text).Str("day_part", dayPart).Msg("day not resolved")
		return Date{}, perr.Wrapf(err, perr.ErrorCodeInvalidDateFormat, "cannot read day in %q", text)
	}
	year, err := YearFromToken(yearPart)
	if err != nil {
		log.Warn().Str("input", text).Str("year_part", yearPart).Msg("year not resolved")
		return Date{}, perr.Wrapf(err, perr.ErrorCodeInvalidDateFormat, "cannot read year in %q", text)
	}
	d, err := NewDate(day, month, year)
	if err != nil {
		return Date{}, perr.Wrapf(err, perr.ErrorCodeInvalidDateFormat, "invalid date in %q", text)
	}
	return d, nil
}
