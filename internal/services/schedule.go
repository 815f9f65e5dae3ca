package services

import (
	"sort"

	"festivalcms/internal/domain"
)

// BuildSchedule joins slots to their days. Days are ordered by day number and slots by
// start time; days without slots are kept with an empty list. Slots whose day is not
// among days are dropped.
func BuildSchedule(event *domain.Event, days []*domain.EventDay, slots []*domain.TimeSlot) *domain.Schedule {
	out := &domain.Schedule{Event: event, Days: make([]domain.ScheduleDay, 0, len(days))}
	index := make(map[string]int, len(days))

	sorted := append([]*domain.EventDay(nil), days...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].DayNumber < sorted[j].DayNumber })
	for i, d := range sorted {
		index[d.ID] = i
		out.Days = append(out.Days, domain.ScheduleDay{EventDay: d, Times: []*domain.TimeSlot{}})
	}

	for _, s := range slots {
		i, ok := index[s.DayID]
		if !ok {
			continue
		}
		out.Days[i].Times = append(out.Days[i].Times, s)
	}
	for i := range out.Days {
		times := out.Days[i].Times
		sort.SliceStable(times, func(a, b int) bool {
			if times[a].StartTime != times[b].StartTime {
				return times[a].StartTime < times[b].StartTime
			}
			if times[a].EndTime != times[b].EndTime {
				return times[a].EndTime < times[b].EndTime
			}
			return times[a].Title < times[b].Title
		})
	}
	return out
}
