package domain

import "io"

// ScheduleDay is an event day together with its time slots ordered by start time.
type ScheduleDay struct {
	*EventDay
	Times []*TimeSlot `json:"times"`
}

// Schedule is an event with its ordered days and their time slots.
// swagger:model Schedule
type Schedule struct {
	Event *Event        `json:"event"`
	Days  []ScheduleDay `json:"days"`
}

// ScheduleRenderer renders a schedule into a downloadable document format.
type ScheduleRenderer interface {
	RenderPDF(w io.Writer, s *Schedule) error
	RenderICS(w io.Writer, s *Schedule) error
}
