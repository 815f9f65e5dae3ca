package domain

import (
	"context"
	"fmt"
	"time"
)

// MaxEventDays bounds the span of one event; every day is materialized as a row.
const MaxEventDays = 366

// Event is a top-level scheduled occurrence, e.g. a festival, spanning a date range.
// Name is the business key; uniqueness is enforced by the conflict check on create.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	TotalDays   int       `json:"totalDays"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EventDay is one calendar day within an event, numbered from 1.
// swagger:model EventDay
type EventDay struct {
	ID          string    `json:"id"`
	EventID     string    `json:"eventId"`
	DayNumber   int       `json:"dayNumber"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewEventDay returns day number n of the event with its generated display name.
func NewEventDay(eventID string, n int, description string, now time.Time) *EventDay {
	if description == "" {
		description = fmt.Sprintf("Day %d description", n)
	}
	return &EventDay{
		EventID:     eventID,
		DayNumber:   n,
		Name:        fmt.Sprintf("Day %d", n),
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// EventInput carries the client-supplied fields for creating or updating an event.
// Dates are raw strings so that parsing errors surface as ErrInvalidFormat.
type EventInput struct {
	Name        string
	Description string
	Location    string
	Year        int
	Month       int
	StartDate   string
	EndDate     string
}

// EventDeletion reports what a cascade delete removed.
type EventDeletion struct {
	EventID            string `json:"deletedEvent"`
	DeletedEventDays   int    `json:"deletedEventDays"`
	DeletedTimeEntries int    `json:"deletedTimeEntries"`
}

// EventConflictError names the existing event that blocks a create.
// It unwraps to ErrNameConflict or ErrDateConflict.
type EventConflictError struct {
	Err   error
	Event *Event
}

func (e *EventConflictError) Error() string {
	return fmt.Sprintf("event conflict: %q (%s - %s)",
		e.Event.Name, e.Event.StartDate.Format(time.DateOnly), e.Event.EndDate.Format(time.DateOnly))
}

func (e *EventConflictError) Unwrap() error { return e.Err }

// Transactor runs fn inside a single datastore transaction. Repositories called with the
// context passed to fn take part in that transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}

// EventDayRepository defines the interface for event day storage.
type EventDayRepository interface {
	CreateMany(ctx context.Context, days []*EventDay) error
	GetByID(ctx context.Context, id string) (*EventDay, error)
	ListByEventID(ctx context.Context, eventID string) ([]*EventDay, error)
	Update(ctx context.Context, day *EventDay) error
	DeleteByEventID(ctx context.Context, eventID string) (int64, error)
	DeleteOrphans(ctx context.Context) (int64, error)
}

// EventService is the business logic for the event lifecycle, days, time slots and the
// aggregated schedule.
type EventService interface {
	CreateEvent(ctx context.Context, in EventInput) (*Event, error)
	UpdateEvent(ctx context.Context, eventID string, in EventInput) (*Event, error)
	DeleteEvent(ctx context.Context, eventID string) (*EventDeletion, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	GetSchedule(ctx context.Context, eventID string) (*Schedule, error)

	ListEventDays(ctx context.Context, eventID string) ([]*EventDay, error)
	UpdateEventDay(ctx context.Context, dayID, name, description string) (*EventDay, error)

	AddTimeSlot(ctx context.Context, eventID, dayID string, in TimeSlotInput) (*TimeSlot, error)
	UpdateTimeSlot(ctx context.Context, dayID, slotID string, in TimeSlotInput) (*TimeSlot, error)
	DeleteTimeSlot(ctx context.Context, slotID string) error
	ListTimeSlots(ctx context.Context, filter TimeSlotFilter) ([]*TimeSlot, error)
}
