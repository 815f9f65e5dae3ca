package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"festivalcms/internal/domain"
)

type eventService struct {
	tx             domain.Transactor
	eventRepo      domain.EventRepository
	dayRepo        domain.EventDayRepository
	slotRepo       domain.TimeSlotRepository
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewEventService returns the event lifecycle service. Cascading writes across events,
// days and time slots run inside tx.
func NewEventService(
	tx domain.Transactor,
	eventRepo domain.EventRepository,
	dayRepo domain.EventDayRepository,
	slotRepo domain.TimeSlotRepository,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		tx:             tx,
		eventRepo:      eventRepo,
		dayRepo:        dayRepo,
		slotRepo:       slotRepo,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, in domain.EventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	start, err := ParseEventDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseEventDate(in.EndDate)
	if err != nil {
		return nil, err
	}

	existing, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if err := CheckEventConflict(name, start, end, existing); err != nil {
		return nil, err
	}

	now := s.now()
	event := &domain.Event{
		Name:        name,
		Description: in.Description,
		Location:    in.Location,
		StartDate:   start,
		EndDate:     end,
		TotalDays:   TotalDays(start, end),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	event.Year, event.Month = yearMonth(in, start)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.eventRepo.Create(ctx, event); err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		days := buildEventDays(event.ID, event.TotalDays, event.Description, now)
		if err := s.dayRepo.CreateMany(ctx, days); err != nil {
			return fmt.Errorf("create event days: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "event created", "event_id", event.ID, "name", event.Name, "total_days", event.TotalDays)
	return event, nil
}

// UpdateEvent rewrites the event and regenerates its days from scratch. All time slots
// of the previous days are destroyed, even for day numbers that still exist.
func (s *eventService) UpdateEvent(ctx context.Context, eventID string, in domain.EventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	start, err := ParseEventDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseEventDate(in.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, domain.ErrInvalidRange
	}
	if err := checkEventSpan(start, end); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	now := s.now()
	if name := strings.TrimSpace(in.Name); name != "" {
		event.Name = name
	}
	event.Description = in.Description
	if in.Location != "" {
		event.Location = in.Location
	}
	event.StartDate = start
	event.EndDate = end
	event.TotalDays = TotalDays(start, end)
	event.Year, event.Month = yearMonth(in, start)
	event.UpdatedAt = now

	var removedSlots, removedDays int64
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.eventRepo.Update(ctx, event); err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		days, err := s.dayRepo.ListByEventID(ctx, event.ID)
		if err != nil {
			return fmt.Errorf("list event days: %w", err)
		}
		if removedSlots, err = s.slotRepo.DeleteByDayIDs(ctx, dayIDs(days)); err != nil {
			return fmt.Errorf("delete time slots: %w", err)
		}
		if removedDays, err = s.dayRepo.DeleteByEventID(ctx, event.ID); err != nil {
			return fmt.Errorf("delete event days: %w", err)
		}
		if err := s.dayRepo.CreateMany(ctx, buildEventDays(event.ID, event.TotalDays, "", now)); err != nil {
			return fmt.Errorf("create event days: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	s.logger.InfoContext(ctx, "event updated",
		"event_id", event.ID,
		"total_days", event.TotalDays,
		"removed_days", removedDays,
		"removed_time_slots", removedSlots,
	)
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID string) (*domain.EventDeletion, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	res := &domain.EventDeletion{EventID: eventID}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		days, err := s.dayRepo.ListByEventID(ctx, eventID)
		if err != nil {
			return fmt.Errorf("list event days: %w", err)
		}
		slots, err := s.slotRepo.DeleteByDayIDs(ctx, dayIDs(days))
		if err != nil {
			return fmt.Errorf("delete time slots: %w", err)
		}
		removed, err := s.dayRepo.DeleteByEventID(ctx, eventID)
		if err != nil {
			return fmt.Errorf("delete event days: %w", err)
		}
		if err := s.eventRepo.Delete(ctx, eventID); err != nil {
			return fmt.Errorf("delete event: %w", err)
		}
		res.DeletedEventDays = int(removed)
		res.DeletedTimeEntries = int(slots)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	s.logger.InfoContext(ctx, "event deleted",
		"event_id", eventID,
		"deleted_days", res.DeletedEventDays,
		"deleted_time_slots", res.DeletedTimeEntries,
	)
	return res, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) GetSchedule(ctx context.Context, eventID string) (*domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	days, err := s.dayRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event days: %w", err)
	}
	slots, err := s.slotRepo.List(ctx, domain.TimeSlotFilter{EventID: eventID})
	if err != nil {
		return nil, fmt.Errorf("list time slots: %w", err)
	}
	return BuildSchedule(event, days, slots), nil
}

// ListEventDays returns the days of eventID; an unknown or deleted event has none.
func (s *eventService) ListEventDays(ctx context.Context, eventID string) ([]*domain.EventDay, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	days, err := s.dayRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event days: %w", err)
	}
	if days == nil {
		days = []*domain.EventDay{}
	}
	return days, nil
}

func (s *eventService) UpdateEventDay(ctx context.Context, dayID, name, description string) (*domain.EventDay, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	d, err := s.dayRepo.GetByID(ctx, dayID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event day: %w", err)
	}
	if name = strings.TrimSpace(name); name != "" {
		d.Name = name
	}
	d.Description = description
	d.UpdatedAt = s.now()
	if err := s.dayRepo.Update(ctx, d); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event day: %w", err)
	}
	return d, nil
}

func (s *eventService) AddTimeSlot(ctx context.Context, eventID, dayID string, in domain.TimeSlotInput) (*domain.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	d, err := s.dayRepo.GetByID(ctx, dayID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event day: %w", err)
	}
	if d.EventID != eventID {
		return nil, domain.ErrNotFound
	}
	slotType, err := parseSlotType(in.Type)
	if err != nil {
		return nil, err
	}

	existing, err := s.slotRepo.List(ctx, domain.TimeSlotFilter{DayID: dayID})
	if err != nil {
		return nil, fmt.Errorf("list time slots: %w", err)
	}
	start, end, err := ValidateTimeSlot(in.StartTime, in.EndTime, existing, "")
	if err != nil {
		return nil, err
	}

	now := s.now()
	slot := &domain.TimeSlot{
		EventID:     eventID,
		DayID:       dayID,
		StartTime:   start,
		EndTime:     end,
		Title:       in.Title,
		Description: in.Description,
		Type:        slotType,
		Speaker:     in.Speaker,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.slotRepo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create time slot: %w", err)
	}
	return slot, nil
}

func (s *eventService) UpdateTimeSlot(ctx context.Context, dayID, slotID string, in domain.TimeSlotInput) (*domain.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get time slot: %w", err)
	}
	if slot.DayID != dayID {
		return nil, domain.ErrNotFound
	}
	slotType, err := parseSlotType(in.Type)
	if err != nil {
		return nil, err
	}

	existing, err := s.slotRepo.List(ctx, domain.TimeSlotFilter{DayID: dayID})
	if err != nil {
		return nil, fmt.Errorf("list time slots: %w", err)
	}
	start, end, err := ValidateTimeSlot(in.StartTime, in.EndTime, existing, slotID)
	if err != nil {
		return nil, err
	}

	slot.StartTime = start
	slot.EndTime = end
	slot.Title = in.Title
	slot.Description = in.Description
	slot.Type = slotType
	slot.Speaker = in.Speaker
	slot.UpdatedAt = s.now()
	if err := s.slotRepo.Update(ctx, slot); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update time slot: %w", err)
	}
	return slot, nil
}

func (s *eventService) DeleteTimeSlot(ctx context.Context, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete time slot: %w", err)
	}
	return nil
}

func (s *eventService) ListTimeSlots(ctx context.Context, filter domain.TimeSlotFilter) ([]*domain.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	slots, err := s.slotRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list time slots: %w", err)
	}
	if slots == nil {
		slots = []*domain.TimeSlot{}
	}
	return slots, nil
}

// yearMonth prefers the client-supplied year and month and falls back to the start date.
func yearMonth(in domain.EventInput, start time.Time) (int, int) {
	year, month := in.Year, in.Month
	if year == 0 {
		year = start.Year()
	}
	if month < 1 || month > 12 {
		month = int(start.Month())
	}
	return year, month
}

func parseSlotType(s string) (domain.SlotType, error) {
	if s == "" {
		return domain.SlotTypeEvent, nil
	}
	t := domain.SlotType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: type must be \"event\" or \"break\"", domain.ErrInvalidInput)
	}
	return t, nil
}

func dayIDs(days []*domain.EventDay) []string {
	ids := make([]string, 0, len(days))
	for _, d := range days {
		ids = append(ids, d.ID)
	}
	return ids
}
