package hebcal

import (
	"context"
	"net/url"
	"strconv"

	"hebdate/internal/core/calendar"
	perr "hebdate/internal/platform/errors"
)

// Converter adapts Client to calendar.Converter and calendar.YearSource
// Year helpers come from years, typically the offline calendar; hebcal has no such endpoint
type Converter struct {
	client *Client
	years  calendar.YearSource
}

var (
	_ calendar.Converter  = (*Converter)(nil)
	_ calendar.YearSource = (*Converter)(nil)
)

// NewConverter wires a client and a year source
func NewConverter(c *Client, years calendar.YearSource) *Converter {
	return &Converter{client: c, years: years}
}

// GregorianToHebrew calls the converter with g2h=1
func (c *Converter) GregorianToHebrew(ctx context.Context, g calendar.Gregorian) (calendar.HebrewResult, error) {
	q := url.Values{}
	q.Set("gy", strconv.Itoa(g.Year))
	q.Set("gm", strconv.Itoa(g.Month))
	q.Set("gd", strconv.Itoa(g.Day))
	q.Set("g2h", "1")
	r, err := c.client.converter(ctx, q)
	if err != nil {
		return calendar.HebrewResult{}, err
	}
	if r.HY == 0 || r.HM == "" || r.HD == 0 {
		return calendar.HebrewResult{}, perr.Externalf(nil, "hebcal payload has no hebrew date")
	}
	return calendar.HebrewResult{Year: r.HY, MonthLabel: r.HM, Day: r.HD, Formatted: r.Hebrew}, nil
}

// HebrewToGregorian calls the converter with h2g=1
func (c *Converter) HebrewToGregorian(ctx context.Context, day int, monthLabel string, year int) (calendar.GregorianResult, error) {
	q := url.Values{}
	q.Set("hy", strconv.Itoa(year))
	q.Set("hm", monthLabel)
	q.Set("hd", strconv.Itoa(day))
	q.Set("h2g", "1")
	r, err := c.client.converter(ctx, q)
	if err != nil {
		return calendar.GregorianResult{}, err
	}
	if !r.hasGregorian() {
		return calendar.GregorianResult{}, perr.Externalf(nil, "hebcal payload has no gregorian date")
	}
	g := calendar.Gregorian{Day: r.GD, Month: r.GM, Year: r.GY}
	return calendar.GregorianResult{Date: g, Formatted: g.String(), Hebrew: r.Hebrew}, nil
}

// CurrentHebrewYear delegates to the year source
func (c *Converter) CurrentHebrewYear(ctx context.Context) (int, error) {
	if c.years == nil {
		return 0, perr.Unavailablef("no year source configured")
	}
	return c.years.CurrentHebrewYear(ctx)
}

// FormatHebrewYear delegates to the year source
func (c *Converter) FormatHebrewYear(year int) string {
	if c.years == nil {
		return strconv.Itoa(year)
	}
	return c.years.FormatHebrewYear(year)
}
