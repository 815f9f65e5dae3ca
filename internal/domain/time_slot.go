package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a wall-clock time of day expressed as minutes since midnight.
type ClockTime int

// ParseClock parses "HH:MM" (or "H:MM") into a ClockTime.
func ParseClock(s string) (ClockTime, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: time %q, use HH:MM", ErrInvalidFormat, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: time %q, use HH:MM", ErrInvalidFormat, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: time %q, use HH:MM", ErrInvalidFormat, s)
	}
	return ClockTime(h*60 + m), nil
}

// String formats the time zero-padded, e.g. "09:05".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Duration returns the offset from midnight.
func (c ClockTime) Duration() time.Duration {
	return time.Duration(c) * time.Minute
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// SlotType distinguishes scheduled items from breaks.
type SlotType string

const (
	SlotTypeEvent SlotType = "event"
	SlotTypeBreak SlotType = "break"
)

// Valid reports whether t is a known slot type.
func (t SlotType) Valid() bool {
	return t == SlotTypeEvent || t == SlotTypeBreak
}

// TimeSlot is a scheduled item within one EventDay. The half-open range
// [StartTime, EndTime) never overlaps another slot of the same day.
// swagger:model TimeSlot
type TimeSlot struct {
	ID          string    `json:"id"`
	EventID     string    `json:"eventId"`
	DayID       string    `json:"dayId"`
	StartTime   ClockTime `json:"startTime" swaggertype:"string" example:"09:00"`
	EndTime     ClockTime `json:"endTime" swaggertype:"string" example:"10:00"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        SlotType  `json:"type"`
	Speaker     string    `json:"speaker"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TimeSlotInput carries the client-supplied fields for a time slot. Times are raw
// "HH:MM" strings and are parsed by the validator.
type TimeSlotInput struct {
	StartTime   string
	EndTime     string
	Title       string
	Description string
	Type        string
	Speaker     string
}

// TimeSlotFilter narrows slot listings. Empty fields match everything.
type TimeSlotFilter struct {
	EventID string
	DayID   string
}

// TimeConflictError names the existing slot that overlaps a proposed one.
// It unwraps to ErrTimeConflict.
type TimeConflictError struct {
	Slot *TimeSlot
}

func (e *TimeConflictError) Error() string {
	return fmt.Sprintf("time slot conflicts with %q (%s-%s)", e.Slot.Title, e.Slot.StartTime, e.Slot.EndTime)
}

func (e *TimeConflictError) Unwrap() error { return ErrTimeConflict }

// TimeSlotRepository defines the interface for time slot storage.
type TimeSlotRepository interface {
	Create(ctx context.Context, slot *TimeSlot) error
	GetByID(ctx context.Context, id string) (*TimeSlot, error)
	List(ctx context.Context, filter TimeSlotFilter) ([]*TimeSlot, error)
	Update(ctx context.Context, slot *TimeSlot) error
	Delete(ctx context.Context, id string) error
	DeleteByDayIDs(ctx context.Context, dayIDs []string) (int64, error)
	DeleteOrphans(ctx context.Context) (int64, error)
}
