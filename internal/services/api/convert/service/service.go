// Package service contains conversion workflows: override lookup first, then the calendar capability
package service

import (
	"context"
	"strings"

	"hebdate/internal/core/calendar"
	"hebdate/internal/core/hebrew"
	perr "hebdate/internal/platform/errors"
	"hebdate/internal/platform/logger"
	"hebdate/internal/services/api/convert/domain"
	"hebdate/internal/services/api/convert/repo"
)

// Service defines the service contract for conversions
type Service interface {
	domain.ServicePort
	domain.CorePort
}

// Svc implements the Service interface
type Svc struct {
	Repo  repo.Repo
	cal   calendar.Converter
	years calendar.YearSource
}

// New creates a conversion service; years may be nil, in which case Options reports unavailable
func New(cal calendar.Converter, years calendar.YearSource, r repo.Repo) *Svc {
	if cal == nil {
		panic("convert.Service requires a non nil calendar.Converter")
	}
	if r == nil {
		panic("convert.Service requires a non nil Repo")
	}
	return &Svc{Repo: r, cal: cal, years: years}
}

var _ Service = (*Svc)(nil)

// Convert returns the stored override verbatim when one exists, otherwise asks the calendar
func (s *Svc) Convert(ctx context.Context, d hebrew.Date) (domain.Result, error) {
	label := d.Month.Label()
	if label == "" {
		return domain.Result{}, perr.WithField(perr.InvalidMonthf("month %d is not canonical", d.Month), "hmonth")
	}
	hd := domain.HebrewDate{Year: d.Year, Month: label, Day: d.Day}
	log := logger.C(ctx)

	if e, ok := s.Repo.Lookup(ctx, d.Year, label, d.Day); ok {
		log.Debug().Str("key", e.Key()).Msg("historical override")
		return domain.Result{
			Hebrew:             hd,
			Gregorian:          gregorianDate(e.Gregorian),
			HebrewFormatted:    e.Hebrew,
			GregorianFormatted: e.GregorianText,
			Source:             domain.SourceOverride,
		}, nil
	}

	ext := d.Month.External()
	if ext == "" {
		return domain.Result{}, perr.WithField(perr.InvalidMonthf("no calendar label for %q", label), "hmonth")
	}
	r, err := s.cal.HebrewToGregorian(ctx, d.Day, ext, d.Year)
	if err != nil {
		log.Warn().Err(err).Int("day", d.Day).Str("month", ext).Int("year", d.Year).Msg("hebrew to gregorian failed")
		return domain.Result{}, external(err)
	}
	formatted := r.Hebrew
	if formatted == "" {
		formatted = d.Format()
	}
	return domain.Result{
		Hebrew:             hd,
		Gregorian:          gregorianDate(r.Date),
		HebrewFormatted:    formatted,
		GregorianFormatted: r.Formatted,
		Source:             domain.SourceCalendar,
	}, nil
}

// ConvertGregorian delegates to the calendar; the numeric Gregorian side echoes g
func (s *Svc) ConvertGregorian(ctx context.Context, g calendar.Gregorian) (domain.Result, error) {
	if err := g.Validate(); err != nil {
		return domain.Result{}, err
	}
	r, err := s.cal.GregorianToHebrew(ctx, g)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("date", g.String()).Msg("gregorian to hebrew failed")
		return domain.Result{}, external(err)
	}
	month := r.MonthLabel
	if m, ok := hebrew.MonthByExternal(r.MonthLabel); ok {
		month = m.Label()
	}
	return domain.Result{
		Hebrew:             domain.HebrewDate{Year: r.Year, Month: month, Day: r.Day},
		Gregorian:          gregorianDate(g),
		HebrewFormatted:    r.Formatted,
		GregorianFormatted: g.String(),
		Source:             domain.SourceCalendar,
	}, nil
}

// ParseAndConvert parses free text and converts the result
func (s *Svc) ParseAndConvert(ctx context.Context, text string) (domain.Result, error) {
	d, err := hebrew.Parse(text)
	if err != nil {
		return domain.Result{}, perr.WithField(err, "dateString")
	}
	return s.Convert(ctx, d)
}

// ConvertFields converts separate day, month and year fields; day and year accept gematria or digits
func (s *Svc) ConvertFields(ctx context.Context, day, month, year string) (domain.Result, error) {
	if err := required(map[string]string{"hday": day, "hmonth": month, "hyear": year}); err != nil {
		return domain.Result{}, err
	}
	m, err := resolveMonth(month)
	if err != nil {
		return domain.Result{}, err
	}
	d, err := resolveDay(day)
	if err != nil {
		return domain.Result{}, err
	}
	y, err := hebrew.YearFromToken(year)
	if err != nil {
		return domain.Result{}, perr.WithField(err, "hyear")
	}
	return s.convertTriple(ctx, d, m, y)
}

// ConvertSplit converts a date whose year arrives as four numeral fields
func (s *Svc) ConvertSplit(ctx context.Context, day, month string, year hebrew.SplitYear) (domain.Result, error) {
	if err := required(map[string]string{"hday": day, "hmonth": month}); err != nil {
		return domain.Result{}, err
	}
	d, err := resolveDay(day)
	if err != nil {
		return domain.Result{}, err
	}
	y, err := hebrew.YearFromParts(year)
	if err != nil {
		return domain.Result{}, err
	}
	m, err := resolveMonth(month)
	if err != nil {
		return domain.Result{}, err
	}
	return s.convertTriple(ctx, d, m, y)
}

func (s *Svc) convertTriple(ctx context.Context, day int, m hebrew.Month, year int) (domain.Result, error) {
	d, err := hebrew.NewDate(day, m, year)
	if err != nil {
		return domain.Result{}, err
	}
	return s.Convert(ctx, d)
}

// ParseFreeText is the parser alone
func (s *Svc) ParseFreeText(text string) (hebrew.Date, error) { return hebrew.Parse(text) }

// ReconstructYear reads a single year token
func (s *Svc) ReconstructYear(token string) (int, error) { return hebrew.YearFromToken(token) }

// ReconstructSplitYear sums split year fields
func (s *Svc) ReconstructSplitYear(parts hebrew.SplitYear) (int, error) {
	return hebrew.YearFromParts(parts)
}

// ResolveMonth resolves an exact month token
func (s *Svc) ResolveMonth(token string) (hebrew.Month, bool) { return hebrew.ResolveMonth(token) }

// external keeps capability failures on one code; an already external error passes through
func external(err error) error {
	if perr.IsCode(err, perr.ErrorCodeExternal) {
		return err
	}
	return perr.Externalf(err, "calendar conversion failed")
}

func gregorianDate(g calendar.Gregorian) domain.GregorianDate {
	return domain.GregorianDate{Year: g.Year, Month: g.Month, Day: g.Day}
}

// required reports the first blank field in a stable order
func required(fields map[string]string) error {
	for _, name := range []string{"hyear", "hmonth", "hday"} {
		v, ok := fields[name]
		if ok && strings.TrimSpace(v) == "" {
			return perr.WithField(perr.MissingParamsf("%s is required", name), name)
		}
	}
	return nil
}

func resolveMonth(token string) (hebrew.Month, error) {
	m, ok := hebrew.ResolveMonth(token)
	if !ok {
		return hebrew.MonthNone, perr.WithField(perr.InvalidMonthf("unknown hebrew month %q", token), "hmonth")
	}
	return m, nil
}

func resolveDay(token string) (int, error) {
	d, err := hebrew.DayFromToken(token)
	if err != nil {
		return 0, perr.WithField(perr.Wrapf(err, perr.ErrorCodeInvalidDay, "invalid hebrew day %q", token), "hday")
	}
	return d, nil
}
