package domain

import (
	"context"

	"hebdate/internal/core/calendar"
	"hebdate/internal/core/hebrew"
)

// ServicePort defines the service contract for conversions
type ServicePort interface {
	// Convert maps a resolved Hebrew date to Gregorian, overrides first
	Convert(ctx context.Context, d hebrew.Date) (Result, error)
	// ConvertGregorian maps a Gregorian date to Hebrew; there are no overrides in this direction
	ConvertGregorian(ctx context.Context, g calendar.Gregorian) (Result, error)

	ParseAndConvert(ctx context.Context, text string) (Result, error)
	ConvertFields(ctx context.Context, day, month, year string) (Result, error)
	ConvertSplit(ctx context.Context, day, month string, year hebrew.SplitYear) (Result, error)

	Options(ctx context.Context) (Options, error)
}

// CorePort exposes the parsing core without any conversion
type CorePort interface {
	ParseFreeText(text string) (hebrew.Date, error)
	ReconstructYear(token string) (int, error)
	ReconstructSplitYear(parts hebrew.SplitYear) (int, error)
	ResolveMonth(token string) (hebrew.Month, bool)
}
