// Package http provides http transport for conversions
package http

import (
	stdhttp "net/http"

	"hebdate/internal/core/calendar"
	"hebdate/internal/modkit/httpkit"
	"hebdate/internal/services/api/convert/domain"
	svc "hebdate/internal/services/api/convert/service"
)

// Register mounts the versioned conversion endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.GetQuery[domain.GregorianInput](r, "/gregorian", h.gregorian)
	httpkit.GetQuery[domain.HebrewInput](r, "/hebrew", h.hebrew)
	httpkit.GetQuery[domain.SplitInput](r, "/split", h.split)

	// free text, as a query or a JSON body
	httpkit.GetQuery[domain.ParseInput](r, "/parse", h.parse)
	httpkit.PostJSON[domain.ParseInput](r, "/parse", h.parse)

	httpkit.Get(r, "/options", h.options)
}

// RegisterLegacy mounts the flat paths existing clients call, on a router scoped to /api
func RegisterLegacy(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.GetQuery[domain.GregorianInput](r, "/convert", h.gregorian)
	httpkit.GetQuery[domain.HebrewInput](r, "/convert-hebrew", h.hebrew)
	httpkit.GetQuery[domain.ParseInput](r, "/parse-and-convert-hebrew", h.parse)
	httpkit.GetQuery[domain.SplitInput](r, "/convert-hebrew-split", h.split)
	httpkit.Get(r, "/get-options", h.options)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /convert/gregorian Convert convertGregorian
// @Summary Gregorian date to Hebrew
// @Tags Convert
// @Produce json
// @Param year query int true "Gregorian year, negative for BCE"
// @Param month query int true "1-12"
// @Param day query int true "1-31"
// @Success 200 {object} domain.Result "ok"
// @Failure 400 {object} httpkit.Envelope "invalid input"
// @Failure 502 {object} httpkit.Envelope "calendar unavailable"
// @Router /convert/gregorian [get]
func (h *handlers) gregorian(r *stdhttp.Request, in domain.GregorianInput) (any, error) {
	return h.svc.ConvertGregorian(r.Context(), calendar.Gregorian{Day: in.Day, Month: in.Month, Year: in.Year})
}

// swagger:route GET /convert/hebrew Convert convertHebrew
// @Summary Hebrew date fields to Gregorian
// @Tags Convert
// @Produce json
// @Param hyear query string true "year, digits or gematria"
// @Param hmonth query string true "Hebrew month name"
// @Param hday query string true "day, digits or gematria"
// @Success 200 {object} domain.Result "ok"
// @Failure 400 {object} httpkit.Envelope "invalid input"
// @Failure 502 {object} httpkit.Envelope "calendar unavailable"
// @Router /convert/hebrew [get]
func (h *handlers) hebrew(r *stdhttp.Request, in domain.HebrewInput) (any, error) {
	return h.svc.ConvertFields(r.Context(), in.Day, in.Month, in.Year)
}

// swagger:route GET /convert/parse Convert convertParse
// @Summary Free Hebrew date text to Gregorian
// @Tags Convert
// @Produce json
// @Param dateString query string true "e.g. ה' בניסן תשפ\"ה"
// @Success 200 {object} domain.Result "ok"
// @Failure 400 {object} httpkit.Envelope "unparseable text"
// @Router /convert/parse [get]
func (h *handlers) parse(r *stdhttp.Request, in domain.ParseInput) (any, error) {
	return h.svc.ParseAndConvert(r.Context(), in.DateString)
}

// swagger:route GET /convert/split Convert convertSplit
// @Summary Hebrew date with the year split into thousands, hundreds, tens and ones
// @Tags Convert
// @Produce json
// @Param h_thousands query string false "ה ד ג ב א or 0"
// @Param h_hundreds query string false "hundreds letters or 0"
// @Param h_tens query string false "tens letter or 0"
// @Param h_ones query string false "ones letter or 0"
// @Param hmonth query string true "Hebrew month name"
// @Param hday query string true "day, digits or gematria"
// @Success 200 {object} domain.Result "ok"
// @Failure 400 {object} httpkit.Envelope "invalid input"
// @Router /convert/split [get]
func (h *handlers) split(r *stdhttp.Request, in domain.SplitInput) (any, error) {
	return h.svc.ConvertSplit(r.Context(), in.Day, in.Month, in.Year())
}

// swagger:route GET /convert/options Convert convertOptions
// @Summary Dropdown choices for days, months, years and split year parts
// @Tags Convert
// @Produce json
// @Success 200 {object} domain.Options "ok"
// @Router /convert/options [get]
func (h *handlers) options(r *stdhttp.Request) (any, error) {
	return h.svc.Options(r.Context())
}
