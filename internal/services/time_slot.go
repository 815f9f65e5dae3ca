package services

import "festivalcms/internal/domain"

// ValidateTimeSlot parses the proposed range and checks it against the existing slots
// of the same day. The slot with id excludeID, if any, is ignored so an update does
// not conflict with itself.
func ValidateTimeSlot(start, end string, existing []*domain.TimeSlot, excludeID string) (domain.ClockTime, domain.ClockTime, error) {
	s, err := domain.ParseClock(start)
	if err != nil {
		return 0, 0, err
	}
	e, err := domain.ParseClock(end)
	if err != nil {
		return 0, 0, err
	}
	if e <= s {
		return 0, 0, domain.ErrInvalidRange
	}
	for _, slot := range existing {
		if excludeID != "" && slot.ID == excludeID {
			continue
		}
		if s < slot.EndTime && slot.StartTime < e {
			return 0, 0, &domain.TimeConflictError{Slot: slot}
		}
	}
	return s, e, nil
}
