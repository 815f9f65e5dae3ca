// Package jobs holds background work scheduled alongside the HTTP server.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"festivalcms/internal/domain"
)

// DefaultReconcileSchedule runs the orphan sweep at the top of every hour.
const DefaultReconcileSchedule = "@hourly"

// Reconciler removes event days and time slots left behind by an interrupted cascade.
type Reconciler struct {
	tx      domain.Transactor
	days    domain.EventDayRepository
	slots   domain.TimeSlotRepository
	logger  *slog.Logger
	timeout time.Duration
	cron    *cron.Cron
}

func NewReconciler(tx domain.Transactor, days domain.EventDayRepository, slots domain.TimeSlotRepository, logger *slog.Logger, timeout time.Duration) *Reconciler {
	return &Reconciler{tx: tx, days: days, slots: slots, logger: logger, timeout: timeout}
}

// RunOnce deletes days whose event is gone, then slots whose day or event is gone.
func (r *Reconciler) RunOnce(ctx context.Context) (days, slots int64, err error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err = r.tx.WithinTx(ctx, func(ctx context.Context) error {
		if days, err = r.days.DeleteOrphans(ctx); err != nil {
			return fmt.Errorf("delete orphan days: %w", err)
		}
		if slots, err = r.slots.DeleteOrphans(ctx); err != nil {
			return fmt.Errorf("delete orphan slots: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	if days > 0 || slots > 0 {
		r.logger.InfoContext(ctx, "orphans removed", "days", days, "slots", slots)
	}
	return days, slots, nil
}

// Start schedules RunOnce on schedule (cron syntax or a descriptor such as "@hourly"). A run
// still in progress makes the next one skip.
func (r *Reconciler) Start(schedule string) error {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}
	logger := cron.PrintfLogger(slog.NewLogLogger(r.logger.Handler(), slog.LevelInfo))
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(logger)), cron.WithLogger(logger))
	if _, err := c.AddFunc(schedule, func() {
		if _, _, err := r.RunOnce(context.Background()); err != nil {
			r.logger.Error("reconcile failed", "err", err)
		}
	}); err != nil {
		return fmt.Errorf("schedule reconciler %q: %w", schedule, err)
	}
	r.cron = c
	c.Start()
	r.logger.Info("reconciler started", "schedule", schedule)
	return nil
}

// Stop stops the schedule and waits for a running sweep to finish or ctx to expire.
func (r *Reconciler) Stop(ctx context.Context) {
	if r.cron == nil {
		return
	}
	select {
	case <-r.cron.Stop().Done():
	case <-ctx.Done():
	}
}
