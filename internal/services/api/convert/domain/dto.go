// Package domain holds DTOs for convert http and service contracts
package domain

import "hebdate/internal/core/hebrew"

// Result sources
const (
	SourceOverride = "override"
	SourceCalendar = "calendar"
)

// GregorianInput is a Gregorian date from the query; all three fields are required
type GregorianInput struct {
	Year  int `json:"year" query:"year" validate:"required" example:"2025"`
	Month int `json:"month" query:"month" validate:"required,min=1,max=12" example:"4"`
	Day   int `json:"day" query:"day" validate:"required,min=1,max=31" example:"13"`
}

// HebrewInput is a Hebrew date from the query; day and year may be gematria or digits
type HebrewInput struct {
	Year  string `json:"hyear" query:"hyear" validate:"required" example:"5785"`
	Month string `json:"hmonth" query:"hmonth" validate:"required" example:"ניסן"`
	Day   string `json:"hday" query:"hday" validate:"required" example:"15"`
}

// ParseInput is free Hebrew date text
type ParseInput struct {
	DateString string `json:"dateString" query:"dateString" validate:"required" example:"ה' בניסן תשפ\"ה"`
}

// SplitInput carries the year as four numeral fields; "0" or absent contributes nothing
type SplitInput struct {
	Thousands string `json:"h_thousands" query:"h_thousands" example:"ה"`
	Hundreds  string `json:"h_hundreds" query:"h_hundreds" example:"תש"`
	Tens      string `json:"h_tens" query:"h_tens" example:"פ"`
	Ones      string `json:"h_ones" query:"h_ones" example:"ה"`
	Month     string `json:"hmonth" query:"hmonth" validate:"required" example:"ניסן"`
	Day       string `json:"hday" query:"hday" validate:"required" example:"ט״ו"`
}

// Year returns the split fields in core form
func (in SplitInput) Year() hebrew.SplitYear {
	return hebrew.SplitYear{Thousands: in.Thousands, Hundreds: in.Hundreds, Tens: in.Tens, Ones: in.Ones}
}

// HebrewDate is the numeric Hebrew side of a result; Month is the canonical Hebrew label
type HebrewDate struct {
	Year  int    `json:"year" example:"5785"`
	Month string `json:"month" example:"ניסן"`
	Day   int    `json:"day" example:"15"`
}

// GregorianDate is the numeric Gregorian side of a result; BCE years are negative
type GregorianDate struct {
	Year  int `json:"year" example:"2025"`
	Month int `json:"month" example:"4"`
	Day   int `json:"day" example:"13"`
}

// Result is one converted date with both renderings
type Result struct {
	Hebrew             HebrewDate    `json:"hebrew"`
	Gregorian          GregorianDate `json:"gregorian"`
	HebrewFormatted    string        `json:"hebrew_formatted" example:"ט״ו בְּנִיסָן ה׳תשפ״ה"`
	GregorianFormatted string        `json:"gregorian_formatted" example:"13/4/2025"`
	Source             string        `json:"source" example:"calendar"`
}

// YearParts are the choices for each split year field, largest first
type YearParts struct {
	Thousands []string `json:"thousands"`
	Hundreds  []string `json:"hundreds"`
	Tens      []string `json:"tens"`
	Ones      []string `json:"ones"`
}

// Options feeds the form dropdowns
type Options struct {
	Days      []string  `json:"days"`
	Months    []string  `json:"months"`
	Years     []string  `json:"years"`
	YearParts YearParts `json:"hebrew_year_parts"`
}
