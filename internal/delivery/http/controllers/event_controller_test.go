package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festivalcms/internal/delivery/http/helpers"
	"festivalcms/internal/domain"
)

func TestEventController_AddEvent(t *testing.T) {
	existing := &domain.Event{
		Name:      "Lit Fest",
		StartDate: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC),
	}
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{"created", `{"name":"Lit Fest","startDate":"2025-12-01","endDate":"2025-12-03"}`, nil, http.StatusCreated, ""},
		{"missing dates", `{"name":"Lit Fest"}`, nil, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"bad month", `{"name":"x","startDate":"2025-12-01","endDate":"2025-12-03","month":13}`, nil, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"invalid format", `{"name":"x","startDate":"soon","endDate":"later"}`, domain.ErrInvalidFormat, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"name conflict", `{"name":"Lit Fest","startDate":"2026-01-01","endDate":"2026-01-02"}`,
			&domain.EventConflictError{Err: domain.ErrNameConflict, Event: existing}, http.StatusConflict, helpers.ErrCodeConflict},
		{"internal", `{"name":"x","startDate":"2026-01-01","endDate":"2026-01-02"}`, errors.New("db down"), http.StatusInternalServerError, helpers.ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeEventService{err: tt.svcErr, createResult: &domain.Event{ID: "ev-1"}}
			c := NewEventController(testLogger, svc, &fakeRenderer{})
			rr := httptest.NewRecorder()
			c.AddEvent(rr, jsonRequest(http.MethodPost, "/api/v1/event/addEvent", tt.body))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode == "" {
				var got AddEventResponse
				decodeData(t, rr, &got)
				assert.Equal(t, "ev-1", got.EventID)
				assert.Equal(t, "Lit Fest", svc.lastCreate.Name)
				return
			}
			env := decodeEnvelope(t, rr)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.Equal(t, "internal server error", env.Error.Message)
			}
		})
	}
}

func TestEventController_DeleteEvent(t *testing.T) {
	svc := &fakeEventService{deleteResult: &domain.EventDeletion{EventID: "ev-1", DeletedEventDays: 3, DeletedTimeEntries: 7}}
	c := NewEventController(testLogger, svc, &fakeRenderer{})
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/event/deleteEvent/ev-1", nil)
	req.SetPathValue("eventId", "ev-1")
	rr := httptest.NewRecorder()
	c.DeleteEvent(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":{"deletedEvent":"ev-1","deletedEventDays":3,"deletedTimeEntries":7},"error":null}`, rr.Body.String())

	svc.err = domain.ErrNotFound
	rr = httptest.NewRecorder()
	c.DeleteEvent(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "event not found", decodeEnvelope(t, rr).Error.Message)
}

func TestEventController_GetSchedule(t *testing.T) {
	svc := &fakeEventService{schedule: &domain.Schedule{Event: &domain.Event{ID: "ev-1", Name: "Lit Fest"}}}
	c := NewEventController(testLogger, svc, &fakeRenderer{})

	rr := httptest.NewRecorder()
	c.GetSchedule(rr, httptest.NewRequest(http.MethodGet, "/api/v1/event/getFullEvent", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "missing eventId", decodeEnvelope(t, rr).Error.Message)

	rr = httptest.NewRecorder()
	c.GetSchedule(rr, httptest.NewRequest(http.MethodGet, "/api/v1/event/getFullEvent?eventId=ev-1", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ev-1", svc.lastScheduleID)
	var got domain.Schedule
	decodeData(t, rr, &got)
	assert.Equal(t, "Lit Fest", got.Event.Name)
}

func TestEventController_AddTimeConflict(t *testing.T) {
	svc := &fakeEventService{err: &domain.TimeConflictError{Slot: &domain.TimeSlot{Title: "Opening", StartTime: 540, EndTime: 600}}}
	c := NewEventController(testLogger, svc, &fakeRenderer{})
	req := jsonRequest(http.MethodPost, "/api/v1/event/addTime/ev-1/day/d-1", `{"startTime":"09:30","endTime":"10:30","title":"Panel"}`)
	req.SetPathValue("eventId", "ev-1")
	req.SetPathValue("eventDayId", "d-1")
	rr := httptest.NewRecorder()
	c.AddTime(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, decodeEnvelope(t, rr).Error.Message, "Please choose a different time slot")
	assert.Equal(t, [2]string{"ev-1", "d-1"}, svc.lastSlotIDs)
	assert.Equal(t, "Panel", svc.lastSlotInput.Title)
}

func TestEventController_AddTimeValidation(t *testing.T) {
	c := NewEventController(testLogger, &fakeEventService{}, &fakeRenderer{})
	rr := httptest.NewRecorder()
	c.AddTime(rr, jsonRequest(http.MethodPost, "/", `{"startTime":"09:00","endTime":"10:00","title":"x","type":"lunch"}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeEnvelope(t, rr).Error.Message, "type must be one of")
}

func TestEventController_GetTimeFilter(t *testing.T) {
	svc := &fakeEventService{slot: &domain.TimeSlot{ID: "s-1", StartTime: 540, EndTime: 600}}
	c := NewEventController(testLogger, svc, &fakeRenderer{})
	rr := httptest.NewRecorder()
	c.GetTime(rr, httptest.NewRequest(http.MethodGet, "/api/v1/event/getTime?eventId=ev-1&dayId=d-2", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.TimeSlotFilter{EventID: "ev-1", DayID: "d-2"}, svc.lastFilter)
	assert.Contains(t, rr.Body.String(), `"startTime":"09:00"`)
}

func TestEventController_Downloads(t *testing.T) {
	svc := &fakeEventService{schedule: &domain.Schedule{Event: &domain.Event{ID: "ev-1", Name: "Lit Fest 2025"}}}
	c := NewEventController(testLogger, svc, &fakeRenderer{})

	rr := httptest.NewRecorder()
	c.GeneratePDF(rr, httptest.NewRequest(http.MethodGet, "/api/v1/event/generatePdf?eventId=ev-1", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=Lit_Fest_2025_schedule.pdf", rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3 Lit Fest 2025", rr.Body.String())

	rr = httptest.NewRecorder()
	c.Calendar(rr, httptest.NewRequest(http.MethodGet, "/api/v1/event/calendar.ics?eventId=ev-1", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/calendar")
	assert.Equal(t, "attachment; filename=Lit_Fest_2025_schedule.ics", rr.Header().Get("Content-Disposition"))
}

func TestEventController_DownloadRenderError(t *testing.T) {
	svc := &fakeEventService{schedule: &domain.Schedule{Event: &domain.Event{ID: "ev-1", Name: "x"}}}
	c := NewEventController(testLogger, svc, &fakeRenderer{err: errors.New("font missing")})
	rr := httptest.NewRecorder()
	c.GeneratePDF(rr, httptest.NewRequest(http.MethodGet, "/?eventId=ev-1", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestEventController_UpdateEventDay(t *testing.T) {
	c := NewEventController(testLogger, &fakeEventService{}, &fakeRenderer{})
	req := jsonRequest(http.MethodPost, "/", `{"name":"  Opening day ","description":"Keynotes"}`)
	req.SetPathValue("eventDayId", "d-1")
	rr := httptest.NewRecorder()
	c.UpdateEventDay(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	var got domain.EventDay
	decodeData(t, rr, &got)
	assert.Equal(t, domain.EventDay{ID: "d-1", Name: "Opening day", Description: "Keynotes"}, got)
}
