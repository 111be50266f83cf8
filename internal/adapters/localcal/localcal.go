// Package localcal is an offline calendar: the arithmetic Hebrew calendar (molad of Tishrei plus the
// postponement rules) against the proleptic Gregorian calendar
// It implements calendar.Converter and calendar.YearSource without any network access
package localcal

import (
	"context"

	"hebdate/internal/core/calendar"
	"hebdate/internal/core/hebrew"
	perr "hebdate/internal/platform/errors"
	ptime "hebdate/internal/platform/time"
)

// Calendar is stateless apart from its clock
type Calendar struct {
	clock ptime.Clock
}

// Option configures a Calendar
type Option func(*Calendar)

// WithClock sets the clock used for CurrentHebrewYear
func WithClock(c ptime.Clock) Option { return func(cal *Calendar) { cal.clock = c } }

// New returns an offline calendar
func New(opts ...Option) *Calendar {
	c := &Calendar{}
	for _, o := range opts {
		o(c)
	}
	c.clock = ptime.OrSystem(c.clock)
	return c
}

var (
	_ calendar.Converter  = (*Calendar)(nil)
	_ calendar.YearSource = (*Calendar)(nil)
)

// toAstronomical maps the signed historical year (-1 is 1 BCE) onto astronomical numbering
func toAstronomical(y int) int {
	if y < 0 {
		return y + 1
	}
	return y
}

func fromAstronomical(y int) int {
	if y <= 0 {
		return y - 1
	}
	return y
}

// monthFor picks the canonical entry for a month number in year y
func monthFor(y, m int) hebrew.Month {
	switch m {
	case 1:
		return hebrew.Nisan
	case 2:
		return hebrew.Iyyar
	case 3:
		return hebrew.Sivan
	case 4:
		return hebrew.Tammuz
	case 5:
		return hebrew.Av
	case 6:
		return hebrew.Elul
	case 7:
		return hebrew.Tishrei
	case 8:
		return hebrew.Cheshvan
	case 9:
		return hebrew.Kislev
	case 10:
		return hebrew.Tevet
	case 11:
		return hebrew.Shvat
	case 12:
		if hebrewLeap(y) {
			return hebrew.AdarI
		}
		return hebrew.Adar
	case 13:
		return hebrew.AdarII
	}
	return hebrew.MonthNone
}

// monthNumber resolves a month in year y; Adar II in a common year is Adar
func monthNumber(y int, m hebrew.Month) int {
	n := m.Ordinal()
	if n == adarII && !hebrewLeap(y) {
		return adar
	}
	return n
}

// GregorianToHebrew converts a Gregorian date
func (c *Calendar) GregorianToHebrew(ctx context.Context, g calendar.Gregorian) (calendar.HebrewResult, error) {
	if err := ctx.Err(); err != nil {
		return calendar.HebrewResult{}, err
	}
	if err := g.Validate(); err != nil {
		return calendar.HebrewResult{}, err
	}
	ay := toAstronomical(g.Year)
	if g.Day > gregorianMonthDays(ay, g.Month) {
		return calendar.HebrewResult{}, perr.WithField(
			perr.InvalidArgf("%d/%d has no day %d", g.Month, g.Year, g.Day), "day")
	}
	fixed := fixedFromGregorian(ay, g.Month, g.Day)
	if fixed < newYear(1) {
		return calendar.HebrewResult{}, perr.InvalidArgf("%s is before the Hebrew epoch", g)
	}
	y, m, d := hebrewFromFixed(fixed)
	month := monthFor(y, m)
	hd, err := hebrew.NewDate(d, month, y)
	if err != nil {
		return calendar.HebrewResult{}, err
	}
	return calendar.HebrewResult{
		Year:       y,
		MonthLabel: month.External(),
		Day:        d,
		Formatted:  hd.Format(),
	}, nil
}

// HebrewToGregorian converts a Hebrew date; monthLabel is an external label such as "Nisan"
func (c *Calendar) HebrewToGregorian(ctx context.Context, day int, monthLabel string, year int) (calendar.GregorianResult, error) {
	if err := ctx.Err(); err != nil {
		return calendar.GregorianResult{}, err
	}
	month, ok := hebrew.MonthByExternal(monthLabel)
	if !ok {
		return calendar.GregorianResult{}, perr.InvalidMonthf("unknown month %q", monthLabel)
	}
	if year < 1 {
		return calendar.GregorianResult{}, perr.WithField(perr.InvalidArgf("year %d must be positive", year), "year")
	}
	m := monthNumber(year, month)
	if day < 1 || day > hebrewMonthDays(year, m) {
		return calendar.GregorianResult{}, perr.WithField(
			perr.InvalidArgf("%s %d has no day %d", monthLabel, year, day), "day")
	}
	ay, gm, gd := gregorianFromFixed(fixedFromHebrew(year, m, day))
	g := calendar.Gregorian{Day: gd, Month: gm, Year: fromAstronomical(ay)}
	hd, err := hebrew.NewDate(day, monthFor(year, m), year)
	if err != nil {
		return calendar.GregorianResult{}, err
	}
	return calendar.GregorianResult{Date: g, Formatted: g.String(), Hebrew: hd.Format()}, nil
}

// CurrentHebrewYear is the Hebrew year containing today's date
func (c *Calendar) CurrentHebrewYear(ctx context.Context) (int, error) {
	now := c.clock.Now()
	r, err := c.GregorianToHebrew(ctx, calendar.Gregorian{Day: now.Day(), Month: int(now.Month()), Year: now.Year()})
	if err != nil {
		return 0, err
	}
	return r.Year, nil
}

// FormatHebrewYear renders a year in gematria with its millennium letter
func (c *Calendar) FormatHebrewYear(year int) string { return hebrew.FormatYear(year) }
