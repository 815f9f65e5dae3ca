package services

import (
	"testing"

	"festivalcms/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSchedule(t *testing.T) {
	ev := &domain.Event{ID: "ev-1", Name: "Lit Fest"}
	days := []*domain.EventDay{
		{ID: "d2", EventID: "ev-1", DayNumber: 2},
		{ID: "d1", EventID: "ev-1", DayNumber: 1},
		{ID: "d3", EventID: "ev-1", DayNumber: 3},
	}
	slots := []*domain.TimeSlot{
		{ID: "a", DayID: "d1", StartTime: clock("14:00"), EndTime: clock("15:00"), Title: "Talk"},
		{ID: "b", DayID: "d1", StartTime: clock("09:00"), EndTime: clock("10:00"), Title: "Opening"},
		{ID: "c", DayID: "d2", StartTime: clock("10:00"), EndTime: clock("11:00"), Title: "Reading"},
		{ID: "d", DayID: "gone", StartTime: clock("10:00"), EndTime: clock("11:00"), Title: "Orphan"},
	}

	s := BuildSchedule(ev, days, slots)
	require.Len(t, s.Days, 3)
	assert.Same(t, ev, s.Event)
	assert.Equal(t, []int{1, 2, 3}, []int{s.Days[0].DayNumber, s.Days[1].DayNumber, s.Days[2].DayNumber})

	require.Len(t, s.Days[0].Times, 2)
	assert.Equal(t, "b", s.Days[0].Times[0].ID)
	assert.Equal(t, "a", s.Days[0].Times[1].ID)
	require.Len(t, s.Days[1].Times, 1)
	assert.NotNil(t, s.Days[2].Times)
	assert.Empty(t, s.Days[2].Times)
}

func TestBuildSchedule_TieBreak(t *testing.T) {
	days := []*domain.EventDay{{ID: "d1", DayNumber: 1}}
	slots := []*domain.TimeSlot{
		{ID: "long", DayID: "d1", StartTime: clock("09:00"), EndTime: clock("11:00"), Title: "A"},
		{ID: "z", DayID: "d1", StartTime: clock("09:00"), EndTime: clock("10:00"), Title: "Z"},
		{ID: "y", DayID: "d1", StartTime: clock("09:00"), EndTime: clock("10:00"), Title: "Y"},
	}
	s := BuildSchedule(&domain.Event{}, days, slots)
	got := []string{s.Days[0].Times[0].ID, s.Days[0].Times[1].ID, s.Days[0].Times[2].ID}
	assert.Equal(t, []string{"y", "z", "long"}, got)
}

func TestBuildSchedule_NoDays(t *testing.T) {
	s := BuildSchedule(&domain.Event{ID: "ev"}, nil, nil)
	assert.NotNil(t, s.Days)
	assert.Empty(t, s.Days)
}
