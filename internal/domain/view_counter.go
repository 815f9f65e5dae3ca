package domain

import (
	"context"
	"time"
)

// DailyViews is the visit tally of one calendar day (UTC).
// swagger:model DailyViews
type DailyViews struct {
	Date           time.Time `json:"date"`
	Views          int       `json:"views"`
	UniqueVisitors int       `json:"uniqueVisitors"`
}

// ViewCounterRepository defines the interface for visit tallies.
type ViewCounterRepository interface {
	RecordVisit(ctx context.Context, day time.Time, visitorID string) error
	List(ctx context.Context) ([]*DailyViews, error)
}

// ViewCounterService tracks site visits of consenting visitors. Track counts a visit only
// for a first-time visitor (empty visitorID) and returns the id assigned to them.
type ViewCounterService interface {
	Track(ctx context.Context, visitorID string) (id string, counted bool, err error)
	List(ctx context.Context) ([]*DailyViews, error)
}
