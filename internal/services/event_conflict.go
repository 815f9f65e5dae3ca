package services

import (
	"fmt"
	"strings"
	"time"

	"festivalcms/internal/domain"
)

const oneDay = 24 * time.Hour

// ParseEventDate accepts a calendar date ("2006-01-02") or an RFC 3339 timestamp.
func ParseEventDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: date %q", domain.ErrInvalidFormat, s)
}

// TotalDays is the inclusive number of calendar days between start and end.
func TotalDays(start, end time.Time) int {
	return int(end.Sub(start)/oneDay) + 1
}

// checkEventSpan rejects events longer than domain.MaxEventDays.
func checkEventSpan(start, end time.Time) error {
	if n := TotalDays(start, end); n > domain.MaxEventDays {
		return fmt.Errorf("%w: an event spans at most %d days, got %d", domain.ErrInvalidRange, domain.MaxEventDays, n)
	}
	return nil
}

// CheckEventConflict reports whether a proposed event may be created alongside the
// existing ones. A shared name is a conflict regardless of dates; otherwise any existing
// event with existing.start < end and existing.end > start is a date conflict.
func CheckEventConflict(name string, start, end time.Time, existing []*domain.Event) error {
	if !end.After(start) {
		return domain.ErrInvalidRange
	}
	if err := checkEventSpan(start, end); err != nil {
		return err
	}
	for _, e := range existing {
		if e.Name == name {
			return &domain.EventConflictError{Err: domain.ErrNameConflict, Event: e}
		}
	}
	for _, e := range existing {
		if e.StartDate.Before(end) && e.EndDate.After(start) {
			return &domain.EventConflictError{Err: domain.ErrDateConflict, Event: e}
		}
	}
	return nil
}

// buildEventDays generates days 1..n for the event.
func buildEventDays(eventID string, n int, description string, now time.Time) []*domain.EventDay {
	days := make([]*domain.EventDay, 0, n)
	for i := 1; i <= n; i++ {
		days = append(days, domain.NewEventDay(eventID, i, description, now))
	}
	return days
}
