package service

import (
	"context"

	"hebdate/internal/core/hebrew"
	perr "hebdate/internal/platform/errors"
	"hebdate/internal/services/api/convert/domain"
)

const (
	maxDay     = 30
	yearSpan   = 50
	zeroMarker = "0"
)

// split year choices, largest first; "0" leaves a field empty
var yearParts = domain.YearParts{
	Thousands: []string{"ה", "ד", "ג", "ב", "א"},
	Hundreds:  []string{"תתק", "תת", "תש", "תר", "תק", "ת", "ש", "ר", "ק", zeroMarker},
	Tens:      []string{"צ", "פ", "ע", "ס", "נ", "מ", "ל", "כ", "י", zeroMarker},
	Ones:      []string{"ט", "ח", "ז", "ו", "ה", "ד", "ג", "ב", "א", zeroMarker},
}

// Options lists days א..ל, months in display order and the current year ±50
func (s *Svc) Options(ctx context.Context) (domain.Options, error) {
	if s.years == nil {
		return domain.Options{}, perr.Unavailablef("no year source configured")
	}
	current, err := s.years.CurrentHebrewYear(ctx)
	if err != nil {
		return domain.Options{}, err
	}

	days := make([]string, 0, maxDay)
	for d := 1; d <= maxDay; d++ {
		days = append(days, hebrew.Letters(d))
	}
	years := make([]string, 0, 2*yearSpan+1)
	for y := current - yearSpan; y <= current+yearSpan; y++ {
		years = append(years, s.years.FormatHebrewYear(y))
	}
	return domain.Options{
		Days:      days,
		Months:    hebrew.MonthLabels(),
		Years:     years,
		YearParts: cloneParts(yearParts),
	}, nil
}

func cloneParts(p domain.YearParts) domain.YearParts {
	return domain.YearParts{
		Thousands: append([]string(nil), p.Thousands...),
		Hundreds:  append([]string(nil), p.Hundreds...),
		Tens:      append([]string(nil), p.Tens...),
		Ones:      append([]string(nil), p.Ones...),
	}
}
