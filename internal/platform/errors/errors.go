// Package errors provides a structured error type with wrapping and metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorCode defines supported error codes used across services
// Values are stable for wire compatibility; add sparingly
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic is for panics recovered by middleware
	ErrorCodePanic

	// ErrorCodeUnavailable is for transient errors where retry may succeed
	ErrorCodeUnavailable

	// ErrorCodeTooManyRequests is for rate limiting
	ErrorCodeTooManyRequests

	// ErrorCodeInvalidArgument is for bad input parameters
	ErrorCodeInvalidArgument

	// ErrorCodeValidation is for validation failures (input data)
	ErrorCodeValidation

	// ErrorCodeJSON is for JSON parsing/validation errors
	ErrorCodeJSON

	// ErrorCodeNotFound is for missing resources
	ErrorCodeNotFound

	// ErrorCodeDB is for general database errors
	ErrorCodeDB

	// ErrorCodeMissingParameters is for an absent required field or date string
	ErrorCodeMissingParameters

	// ErrorCodeInvalidNumeral is for a gematria token with a rune outside the numeral alphabet
	ErrorCodeInvalidNumeral

	// ErrorCodeInvalidMonth is for a month token that matches no canonical name
	ErrorCodeInvalidMonth

	// ErrorCodeInvalidDateFormat is for free text that did not yield day, month and year together
	ErrorCodeInvalidDateFormat

	// ErrorCodeMissingYearParts is for split year fields that were all absent or zero
	ErrorCodeMissingYearParts

	// ErrorCodeInvalidYearPart is for a split year field that failed to decode; field carries which one
	ErrorCodeInvalidYearPart

	// ErrorCodeExternal is for failures of the external calendar capability
	ErrorCodeExternal

	// ErrorCodeInvalidDay is for a day field that is neither gematria nor a positive number
	ErrorCodeInvalidDay
)

// HTTPStatusCode turns an ErrorCode into an http status code
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case ErrorCodeValidation, ErrorCodeJSON,
		ErrorCodeMissingParameters, ErrorCodeInvalidNumeral, ErrorCodeInvalidMonth,
		ErrorCodeInvalidDateFormat, ErrorCodeMissingYearParts, ErrorCodeInvalidYearPart, ErrorCodeInvalidDay:
		return http.StatusBadRequest
	case ErrorCodeTooManyRequests:
		return http.StatusTooManyRequests
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeExternal:
		return http.StatusBadGateway
	case ErrorCodeDB, ErrorCodePanic, ErrorCodeUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// slugs are the machine readable names clients already key on
var slugs = map[ErrorCode]string{
	ErrorCodeUnknown:           "INTERNAL_SERVER_ERROR",
	ErrorCodePanic:             "INTERNAL_SERVER_ERROR",
	ErrorCodeUnavailable:       "UNAVAILABLE",
	ErrorCodeTooManyRequests:   "TOO_MANY_REQUESTS",
	ErrorCodeInvalidArgument:   "INVALID_ARGUMENT",
	ErrorCodeValidation:        "VALIDATION_ERROR",
	ErrorCodeJSON:              "INVALID_JSON",
	ErrorCodeNotFound:          "NOT_FOUND",
	ErrorCodeDB:                "DATABASE_ERROR",
	ErrorCodeMissingParameters: "MISSING_PARAMETERS",
	ErrorCodeInvalidNumeral:    "INVALID_NUMERAL",
	ErrorCodeInvalidMonth:      "INVALID_HEBREW_MONTH",
	ErrorCodeInvalidDateFormat: "INVALID_HEBREW_DATE_FORMAT",
	ErrorCodeMissingYearParts:  "MISSING_YEAR_PARTS",
	ErrorCodeInvalidYearPart:   "INVALID_YEAR_PART",
	ErrorCodeExternal:          "EXTERNAL_API_ERROR",
	ErrorCodeInvalidDay:        "INVALID_HEBREW_DAY",
}

// Slug returns the stable string name for c
func Slug(c ErrorCode) string {
	if s, ok := slugs[c]; ok {
		return s
	}
	return slugs[ErrorCodeUnknown]
}

// Error is the structured error type with wrapping and metadata
// msg is human/developer facing; code is machine facing
// field is optional (for validation); op is optional operation tag
// orig is the wrapped cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
	op    string
}

// Wire is the JSON-serializable form returned by the API
type Wire struct {
	Code    ErrorCode `json:"code"`
	Slug    string    `json:"error_code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// Slug returns the wire slug; year part errors name their field (INVALID_TENS_PART)
func (e *Error) Slug() string {
	if e.code == ErrorCodeInvalidYearPart && e.field != "" {
		return "INVALID_" + strings.ToUpper(e.field) + "_PART"
	}
	return Slug(e.code)
}

// ToWire converts an *Error to a Wire payload
func (e *Error) ToWire() Wire {
	return Wire{Code: e.code, Slug: e.Slug(), Message: e.msg, Field: e.field}
}

// WireFrom converts any error into a Wire payload with best-effort mapping
// If err is nil, returns the zero-value Wire (no error)
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Slug: Slug(ErrorCodeUnknown), Message: err.Error()}
}

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// FieldOf returns the field attached to err, if any
func FieldOf(err error) string {
	if e, ok := As(err); ok {
		return e.field
	}
	return ""
}

// HTTPStatus returns the mapped HTTP status for any error
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Mutators (copy-on-write)

// WithField attaches a field to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp attaches an operation label to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// Constructors

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// Sugar

// MissingParamsf returns a missing parameters error
func MissingParamsf(format string, a ...any) error {
	return Newf(ErrorCodeMissingParameters, format, a...)
}

// InvalidNumeralf returns an invalid numeral token error
func InvalidNumeralf(format string, a ...any) error {
	return Newf(ErrorCodeInvalidNumeral, format, a...)
}

// InvalidMonthf returns an invalid month name error
func InvalidMonthf(format string, a ...any) error { return Newf(ErrorCodeInvalidMonth, format, a...) }

// InvalidDateFormatf returns an invalid date format error
func InvalidDateFormatf(format string, a ...any) error {
	return Newf(ErrorCodeInvalidDateFormat, format, a...)
}

// InvalidYearPart returns an invalid year part error naming the offending field
func InvalidYearPart(field, value string) error {
	return &Error{
		code:  ErrorCodeInvalidYearPart,
		msg:   fmt.Sprintf("invalid %s year part %q", field, value),
		field: field,
	}
}

// InvalidDayf returns an invalid day error
func InvalidDayf(format string, a ...any) error { return Newf(ErrorCodeInvalidDay, format, a...) }

// Externalf wraps a calendar capability failure
func Externalf(orig error, format string, a ...any) error {
	return Wrapf(orig, ErrorCodeExternal, format, a...)
}

// InvalidArgf returns an invalid argument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// JSONErrf returns a JSON error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf returns a panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Unavailablef returns an unavailable error
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }

// Internalf returns a generic internal error
func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }

// HTTP bundles status + wire in one shot (nice for handlers)
func HTTP(err error) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{}
	}
	return HTTPStatus(err), WireFrom(err)
}
