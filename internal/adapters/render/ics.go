package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"festivalcms/internal/domain"
)

// RenderICS writes the schedule as an iCalendar feed with one VEVENT per time slot. Day N
// of an event falls N-1 days after the event's start date.
func (r *scheduleRenderer) RenderICS(w io.Writer, s *domain.Schedule) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(r.prodID)
	cal.SetXWRCalName(s.Event.Name)
	if s.Event.Description != "" {
		cal.SetXWRCalDesc(s.Event.Description)
	}

	stamp := r.now().UTC()
	for _, day := range s.Days {
		for _, slot := range day.Times {
			ev := cal.AddEvent(slot.ID + "@festivalcms")
			ev.SetDtStampTime(stamp)
			ev.SetStartAt(r.slotTime(s.Event.StartDate, day.DayNumber, slot.StartTime))
			ev.SetEndAt(r.slotTime(s.Event.StartDate, day.DayNumber, slot.EndTime))
			ev.SetSummary(slot.Title)
			if desc := slotDescription(slot); desc != "" {
				ev.SetDescription(desc)
			}
			if s.Event.Location != "" {
				ev.SetLocation(s.Event.Location)
			}
			ev.AddProperty(ical.ComponentPropertyCategories, strings.ToUpper(string(slot.Type)))
		}
	}
	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("write ics: %w", err)
	}
	return nil
}

func (r *scheduleRenderer) slotTime(start time.Time, dayNumber int, c domain.ClockTime) time.Time {
	y, m, d := start.Date()
	return time.Date(y, m, d+dayNumber-1, int(c)/60, int(c)%60, 0, 0, r.loc)
}

func slotDescription(slot *domain.TimeSlot) string {
	switch {
	case slot.Speaker == "":
		return slot.Description
	case slot.Description == "":
		return "Speaker: " + slot.Speaker
	default:
		return slot.Description + "\n\nSpeaker: " + slot.Speaker
	}
}
