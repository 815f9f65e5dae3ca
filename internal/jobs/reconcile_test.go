package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festivalcms/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeTx struct{ calls int }

func (f *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeDays struct {
	domain.EventDayRepository
	orphans int64
	err     error
}

func (f *fakeDays) DeleteOrphans(context.Context) (int64, error) {
	return f.orphans, f.err
}

type fakeSlots struct {
	domain.TimeSlotRepository
	orphans int64
	called  bool
}

func (f *fakeSlots) DeleteOrphans(context.Context) (int64, error) {
	f.called = true
	return f.orphans, nil
}

func TestReconciler_RunOnce(t *testing.T) {
	tx := &fakeTx{}
	days := &fakeDays{orphans: 2}
	slots := &fakeSlots{orphans: 7}
	r := NewReconciler(tx, days, slots, testLogger, time.Second)

	d, s, err := r.RunOnce(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, d)
	assert.EqualValues(t, 7, s)
	assert.Equal(t, 1, tx.calls)
}

func TestReconciler_RunOnce_DayError(t *testing.T) {
	days := &fakeDays{err: errors.New("db down")}
	slots := &fakeSlots{}
	r := NewReconciler(&fakeTx{}, days, slots, testLogger, time.Second)

	_, _, err := r.RunOnce(context.Background())
	require.Error(t, err)
	assert.False(t, slots.called)
}

func TestReconciler_StartRejectsBadSchedule(t *testing.T) {
	r := NewReconciler(&fakeTx{}, &fakeDays{}, &fakeSlots{}, testLogger, time.Second)
	require.Error(t, r.Start("every tuesday"))

	require.NoError(t, r.Start(""))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	r.Stop(ctx)
}
