package controllers

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"festivalcms/internal/delivery/http/helpers"
	"festivalcms/internal/domain"
)

// EventRequest is the request body for adding or updating an event. Dates are YYYY-MM-DD
// or RFC 3339. Year and month default to the start date's.
type EventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Year        int    `json:"year" validate:"omitempty,min=1900,max=9999"`
	Month       int    `json:"month" validate:"omitempty,min=1,max=12"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate" validate:"required"`
}

func (e EventRequest) input() domain.EventInput {
	return domain.EventInput{
		Name:        strings.TrimSpace(e.Name),
		Description: e.Description,
		Location:    strings.TrimSpace(e.Location),
		Year:        e.Year,
		Month:       e.Month,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
	}
}

// AddEventResponse is the data of a successful add.
type AddEventResponse struct {
	EventID string `json:"eventId"`
}

// EventDayRequest is the request body for updating an event day.
type EventDayRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type EventController struct {
	Logger   *slog.Logger
	Service  domain.EventService
	Renderer domain.ScheduleRenderer
}

func NewEventController(logger *slog.Logger, svc domain.EventService, renderer domain.ScheduleRenderer) *EventController {
	return &EventController{Logger: logger, Service: svc, Renderer: renderer}
}

// AddEvent godoc
// @Summary Add an event
// @Description Creates an event and one day per calendar day in its range. The name must be unique and the range must not overlap another event.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data.eventId"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /event/addEvent [post]
func (c *EventController) AddEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), req.input())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, AddEventResponse{EventID: event.ID})
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Replaces the event's dates and regenerates its days. Existing days and their time slots are removed.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param event body EventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /event/updateEvent/{eventId} [post]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), r.PathValue("eventId"), req.input())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event together with its days and their time slots.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains deletion counts"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /event/deleteEvent/{eventId} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	res, err := c.Service.DeleteEvent(r.Context(), r.PathValue("eventId"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

// GetEvents godoc
// @Summary List events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains events ordered by start date"
// @Router /event/getEvent [get]
func (c *EventController) GetEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetSchedule godoc
// @Summary Get an event's full schedule
// @Description Returns the event with its days in day order and each day's time slots in start-time order.
// @Tags events
// @Produce json
// @Param eventId query string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the schedule"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /event/getFullEvent [get]
func (c *EventController) GetSchedule(w http.ResponseWriter, r *http.Request) {
	eventID, ok := requireQuery(w, r, "eventId")
	if !ok {
		return
	}
	schedule, err := c.Service.GetSchedule(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, schedule)
}

// GetEventDays godoc
// @Summary List an event's days
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventId query string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains days ordered by day number"
// @Router /event/getEventDay [get]
func (c *EventController) GetEventDays(w http.ResponseWriter, r *http.Request) {
	eventID, ok := requireQuery(w, r, "eventId")
	if !ok {
		return
	}
	days, err := c.Service.ListEventDays(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, days)
}

// UpdateEventDay godoc
// @Summary Update an event day
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventDayId path string true "Event day ID"
// @Param day body EventDayRequest true "Day name and description"
// @Success 201 {object} helpers.APIResponse "data contains the day"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /event/updateEventDay/{eventDayId} [post]
func (c *EventController) UpdateEventDay(w http.ResponseWriter, r *http.Request) {
	var req EventDayRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	day, err := c.Service.UpdateEventDay(r.Context(), r.PathValue("eventDayId"), strings.TrimSpace(req.Name), req.Description)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event day")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, day)
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// GeneratePDF godoc
// @Summary Download the schedule as PDF
// @Tags events
// @Produce application/pdf
// @Param eventId query string true "Event ID"
// @Success 200 {file} binary
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /event/generatePdf [get]
func (c *EventController) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	c.download(w, r, "application/pdf", "_schedule.pdf", c.Renderer.RenderPDF)
}

// Calendar godoc
// @Summary Subscribe to the schedule as iCalendar
// @Tags events
// @Produce text/calendar
// @Param eventId query string true "Event ID"
// @Success 200 {file} binary
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /event/calendar.ics [get]
func (c *EventController) Calendar(w http.ResponseWriter, r *http.Request) {
	c.download(w, r, "text/calendar; charset=utf-8", "_schedule.ics", c.Renderer.RenderICS)
}

// download renders the schedule into memory first so a rendering failure can still be
// answered with a JSON error.
func (c *EventController) download(w http.ResponseWriter, r *http.Request, contentType, suffix string,
	render func(w io.Writer, s *domain.Schedule) error) {
	eventID, ok := requireQuery(w, r, "eventId")
	if !ok {
		return
	}
	schedule, err := c.Service.GetSchedule(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event")
		return
	}
	var buf bytes.Buffer
	if err := render(&buf, schedule); err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	name := unsafeFilename.ReplaceAllString(schedule.Event.Name, "_")
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+name+suffix)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
