package controllers

import (
	"net/http"
	"strings"

	"festivalcms/internal/delivery/http/helpers"
	"festivalcms/internal/domain"
)

// TimeSlotRequest is the request body for adding or updating a time slot. Times are HH:MM.
type TimeSlotRequest struct {
	StartTime   string `json:"startTime" validate:"required"`
	EndTime     string `json:"endTime" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Type        string `json:"type" validate:"omitempty,oneof=event break"`
	Speaker     string `json:"speaker"`
}

func (t TimeSlotRequest) input() domain.TimeSlotInput {
	return domain.TimeSlotInput{
		StartTime:   t.StartTime,
		EndTime:     t.EndTime,
		Title:       strings.TrimSpace(t.Title),
		Description: t.Description,
		Type:        t.Type,
		Speaker:     strings.TrimSpace(t.Speaker),
	}
}

// AddTime godoc
// @Summary Add a time slot to an event day
// @Description The slot must end after it starts and must not overlap another slot of the same day.
// @Tags time
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param eventDayId path string true "Event day ID"
// @Param slot body TimeSlotRequest true "Time slot"
// @Success 201 {object} helpers.APIResponse "data contains the slot"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /event/addTime/{eventId}/day/{eventDayId} [post]
func (c *EventController) AddTime(w http.ResponseWriter, r *http.Request) {
	var req TimeSlotRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	slot, err := c.Service.AddTimeSlot(r.Context(), r.PathValue("eventId"), r.PathValue("eventDayId"), req.input())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event or event day")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, slot)
}

// UpdateTime godoc
// @Summary Update a time slot
// @Tags time
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dayId path string true "Event day ID"
// @Param timeId path string true "Time slot ID"
// @Param slot body TimeSlotRequest true "Time slot"
// @Success 200 {object} helpers.APIResponse "data contains the slot"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /event/updateTime/day/{dayId}/time/{timeId} [post]
func (c *EventController) UpdateTime(w http.ResponseWriter, r *http.Request) {
	var req TimeSlotRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	slot, err := c.Service.UpdateTimeSlot(r.Context(), r.PathValue("dayId"), r.PathValue("timeId"), req.input())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "time slot")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, slot)
}

// DeleteTime godoc
// @Summary Delete a time slot
// @Tags time
// @Produce json
// @Security BearerAuth
// @Param timeId path string true "Time slot ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /event/deleteTime/{timeId} [delete]
func (c *EventController) DeleteTime(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteTimeSlot(r.Context(), r.PathValue("timeId")); err != nil {
		writeServiceError(c.Logger, w, r, err, "time slot")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Time deleted successfully"})
}

// GetTime godoc
// @Summary List time slots
// @Tags time
// @Produce json
// @Security BearerAuth
// @Param eventId query string false "Event ID"
// @Param dayId query string false "Event day ID"
// @Success 200 {object} helpers.APIResponse "data contains slots"
// @Router /event/getTime [get]
func (c *EventController) GetTime(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	slots, err := c.Service.ListTimeSlots(r.Context(), domain.TimeSlotFilter{EventID: q.Get("eventId"), DayID: q.Get("dayId")})
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, slots)
}
