package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"festivalcms/internal/delivery/http/helpers"
	"festivalcms/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// envelope decodes an APIResponse, keeping data raw for the caller to unmarshal.
type envelope struct {
	Data  json.RawMessage   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	return env
}

func decodeData(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	env := decodeEnvelope(t, rr)
	require.Nil(t, env.Error)
	require.NoError(t, json.Unmarshal(env.Data, dest))
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type formFile struct {
	field, name, content string
}

func multipartRequest(t *testing.T, target string, values map[string]string, files ...formFile) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range values {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = io.WriteString(fw, f.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	err error

	createResult   *domain.Event
	lastCreate     domain.EventInput
	deleteResult   *domain.EventDeletion
	events         []*domain.Event
	schedule       *domain.Schedule
	lastScheduleID string
	days           []*domain.EventDay
	slot           *domain.TimeSlot
	lastSlotInput  domain.TimeSlotInput
	lastSlotIDs    [2]string
	lastFilter     domain.TimeSlotFilter
}

func (f *fakeEventService) CreateEvent(_ context.Context, in domain.EventInput) (*domain.Event, error) {
	f.lastCreate = in
	return f.createResult, f.err
}

func (f *fakeEventService) UpdateEvent(_ context.Context, id string, in domain.EventInput) (*domain.Event, error) {
	f.lastCreate = in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Event{ID: id, Name: in.Name}, nil
}

func (f *fakeEventService) DeleteEvent(context.Context, string) (*domain.EventDeletion, error) {
	return f.deleteResult, f.err
}

func (f *fakeEventService) ListEvents(context.Context) ([]*domain.Event, error) {
	return f.events, f.err
}

func (f *fakeEventService) GetSchedule(_ context.Context, id string) (*domain.Schedule, error) {
	f.lastScheduleID = id
	return f.schedule, f.err
}

func (f *fakeEventService) ListEventDays(context.Context, string) ([]*domain.EventDay, error) {
	return f.days, f.err
}

func (f *fakeEventService) UpdateEventDay(_ context.Context, id, name, description string) (*domain.EventDay, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.EventDay{ID: id, Name: name, Description: description}, nil
}

func (f *fakeEventService) AddTimeSlot(_ context.Context, eventID, dayID string, in domain.TimeSlotInput) (*domain.TimeSlot, error) {
	f.lastSlotIDs = [2]string{eventID, dayID}
	f.lastSlotInput = in
	return f.slot, f.err
}

func (f *fakeEventService) UpdateTimeSlot(_ context.Context, dayID, slotID string, in domain.TimeSlotInput) (*domain.TimeSlot, error) {
	f.lastSlotIDs = [2]string{dayID, slotID}
	f.lastSlotInput = in
	return f.slot, f.err
}

func (f *fakeEventService) DeleteTimeSlot(_ context.Context, id string) error {
	f.lastSlotIDs = [2]string{"", id}
	return f.err
}

func (f *fakeEventService) ListTimeSlots(_ context.Context, filter domain.TimeSlotFilter) ([]*domain.TimeSlot, error) {
	f.lastFilter = filter
	if f.slot == nil {
		return nil, f.err
	}
	return []*domain.TimeSlot{f.slot}, f.err
}

type fakeRenderer struct {
	err error
}

func (f *fakeRenderer) RenderPDF(w io.Writer, s *domain.Schedule) error {
	if f.err != nil {
		return f.err
	}
	_, err := io.WriteString(w, "%PDF-1.3 "+s.Event.Name)
	return err
}

func (f *fakeRenderer) RenderICS(w io.Writer, s *domain.Schedule) error {
	if f.err != nil {
		return f.err
	}
	_, err := io.WriteString(w, "BEGIN:VCALENDAR")
	return err
}
