// Package calendar defines the calendar capability the conversion service depends on
// and the Gregorian value type shared by its implementations
package calendar

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	perr "hebdate/internal/platform/errors"
)

// Gregorian is a proleptic Gregorian date; years before 1 CE are negative as in the override table
type Gregorian struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// String renders d/m/y without padding: 16/3/-1812
func (g Gregorian) String() string { return fmt.Sprintf("%d/%d/%d", g.Day, g.Month, g.Year) }

// Validate checks field ranges; day is checked against 31 only
func (g Gregorian) Validate() error {
	switch {
	case g.Month < 1 || g.Month > 12:
		return perr.WithField(perr.InvalidArgf("month %d out of range", g.Month), "month")
	case g.Day < 1 || g.Day > 31:
		return perr.WithField(perr.InvalidArgf("day %d out of range", g.Day), "day")
	case g.Year == 0:
		return perr.WithField(perr.InvalidArgf("year 0 does not exist"), "year")
	}
	return nil
}

// ParseGregorian reads the d/m/y form
func ParseGregorian(s string) (Gregorian, error) {
	fields := strings.Split(strings.TrimSpace(s), "/")
	if len(fields) != 3 {
		return Gregorian{}, perr.InvalidArgf("gregorian date %q is not d/m/y", s)
	}
	var n [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Gregorian{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "gregorian date %q", s)
		}
		n[i] = v
	}
	g := Gregorian{Day: n[0], Month: n[1], Year: n[2]}
	if err := g.Validate(); err != nil {
		return Gregorian{}, err
	}
	return g, nil
}

// HebrewResult is what a capability returns for a Gregorian date
// MonthLabel is the capability's own label (Nisan, Adar II)
type HebrewResult struct {
	Year       int
	MonthLabel string
	Day        int
	Formatted  string
}

// GregorianResult is what a capability returns for a Hebrew date
// Hebrew is the capability's rendering of the input date, empty when it offers none
type GregorianResult struct {
	Date      Gregorian
	Formatted string
	Hebrew    string
}

// Converter converts single dates in both directions
// Implementations bound their own wait and return one terminal error; callers never retry
type Converter interface {
	GregorianToHebrew(ctx context.Context, g Gregorian) (HebrewResult, error)
	HebrewToGregorian(ctx context.Context, day int, monthLabel string, year int) (GregorianResult, error)
}

// YearSource feeds the options listing
type YearSource interface {
	CurrentHebrewYear(ctx context.Context) (int, error)
	FormatHebrewYear(year int) string
}
