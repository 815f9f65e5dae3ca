package services

import (
	"context"
	"testing"
	"time"

	"festivalcms/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeViewRepo struct {
	visits map[time.Time][]string
}

func (f *fakeViewRepo) RecordVisit(ctx context.Context, day time.Time, visitorID string) error {
	f.visits[day] = append(f.visits[day], visitorID)
	return nil
}

func (f *fakeViewRepo) List(ctx context.Context) ([]*domain.DailyViews, error) {
	var out []*domain.DailyViews
	for d, ids := range f.visits {
		out = append(out, &domain.DailyViews{Date: d, Views: len(ids), UniqueVisitors: len(ids)})
	}
	return out, nil
}

func TestViewCounterService_Track(t *testing.T) {
	ctx := context.Background()
	repo := &fakeViewRepo{visits: map[time.Time][]string{}}
	svc := NewViewCounterService(repo, testTimeout).(*viewCounterService)
	svc.now = func() time.Time { return time.Date(2024, 1, 10, 18, 45, 0, 0, time.UTC) }
	svc.newID = func() string { return "visitor-1" }

	id, counted, err := svc.Track(ctx, "")
	require.NoError(t, err)
	assert.True(t, counted)
	assert.Equal(t, "visitor-1", id)
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"visitor-1"}, repo.visits[day])

	id, counted, err = svc.Track(ctx, "visitor-1")
	require.NoError(t, err)
	assert.False(t, counted)
	assert.Equal(t, "visitor-1", id)
	assert.Len(t, repo.visits[day], 1)

	views, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 1, views[0].Views)
}
