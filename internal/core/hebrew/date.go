package hebrew

import (
	perr "hebdate/internal/platform/errors"
)

// Date is a resolved Hebrew date; build it with NewDate
type Date struct {
	Day   int
	Month Month
	Year  int
}

// NewDate validates all three fields at once so no partial date escapes
func NewDate(day int, month Month, year int) (Date, error) {
	switch {
	case !month.Valid():
		return Date{}, perr.InvalidMonthf("unknown month %d", month)
	case day < 1:
		return Date{}, perr.WithField(perr.InvalidArgf("day %d must be positive", day), "day")
	case year < 1:
		return Date{}, perr.WithField(perr.InvalidArgf("year %d must be positive", year), "year")
	}
	return Date{Day: day, Month: month, Year: year}, nil
}

// Format renders the date the way the override table stores it: א׳ בְּתִשְׁרֵי ה׳קנ״ה
func (d Date) Format() string {
	return EncodeNumeral(d.Day) + " " + d.Month.InMonth() + " " + FormatYear(d.Year)
}

func (d Date) String() string { return d.Format() }
