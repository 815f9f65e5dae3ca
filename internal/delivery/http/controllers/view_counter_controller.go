package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"festivalcms/internal/delivery/http/helpers"
	"festivalcms/internal/domain"
)

// Cookies read and set by the view counter.
const (
	ConsentCookie = "cookieConsent"
	VisitorCookie = "userID"
)

const visitorCookieTTL = 30 * 24 * time.Hour

type ViewCounterController struct {
	Logger       *slog.Logger
	Service      domain.ViewCounterService
	CookieSecure bool
}

func NewViewCounterController(logger *slog.Logger, svc domain.ViewCounterService, cookieSecure bool) *ViewCounterController {
	return &ViewCounterController{Logger: logger, Service: svc, CookieSecure: cookieSecure}
}

// TrackResponse reports whether the request was counted as a new visit.
type TrackResponse struct {
	Message string `json:"message"`
	Counted bool   `json:"counted"`
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

// Track godoc
// @Summary Count a site visit
// @Description Counts only visitors with cookieConsent=true and no userID cookie. New visitors get a userID cookie.
// @Tags views
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains message and counted"
// @Router / [get]
func (c *ViewCounterController) Track(w http.ResponseWriter, r *http.Request) {
	if cookieValue(r, ConsentCookie) != "true" {
		helpers.WriteJSONSuccess(w, http.StatusOK, TrackResponse{Message: "Tracking requires cookie consent"})
		return
	}
	id, counted, err := c.Service.Track(r.Context(), cookieValue(r, VisitorCookie))
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	if !counted {
		helpers.WriteJSONSuccess(w, http.StatusOK, TrackResponse{Message: "Returning visitor"})
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     VisitorCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(visitorCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   c.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
	helpers.WriteJSONSuccess(w, http.StatusOK, TrackResponse{Message: "Visit counted", Counted: true})
}

// ListViews godoc
// @Summary Daily views and unique visitors
// @Tags views
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains daily tallies"
// @Router /getView [get]
func (c *ViewCounterController) ListViews(w http.ResponseWriter, r *http.Request) {
	views, err := c.Service.List(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, views)
}
