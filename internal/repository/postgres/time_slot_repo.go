package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"festivalcms/internal/domain"
)

const timeSlotColumns = `id, event_id, day_id, start_minute, end_minute, title, description, slot_type, speaker, created_at, updated_at`

type timeSlotRepository struct {
	DB *sql.DB
}

func NewTimeSlotRepository(db *sql.DB) domain.TimeSlotRepository {
	return &timeSlotRepository{DB: db}
}

func scanTimeSlot(row interface{ Scan(...any) error }) (*domain.TimeSlot, error) {
	s := &domain.TimeSlot{}
	var start, end int
	var slotType string
	err := row.Scan(&s.ID, &s.EventID, &s.DayID, &start, &end, &s.Title, &s.Description, &slotType, &s.Speaker, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.StartTime, s.EndTime = domain.ClockTime(start), domain.ClockTime(end)
	s.Type = domain.SlotType(slotType)
	return s, nil
}

func (r *timeSlotRepository) Create(ctx context.Context, s *domain.TimeSlot) error {
	query := `
		INSERT INTO time_slots (event_id, day_id, start_minute, end_minute, title, description, slot_type, speaker, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return conn(ctx, r.DB).QueryRowContext(ctx, query,
		s.EventID, s.DayID, int(s.StartTime), int(s.EndTime), s.Title, s.Description, string(s.Type), s.Speaker, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
}

func (r *timeSlotRepository) GetByID(ctx context.Context, id string) (*domain.TimeSlot, error) {
	query := `SELECT ` + timeSlotColumns + ` FROM time_slots WHERE id = $1`
	s, err := scanTimeSlot(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, noRows(err)
	}
	return s, nil
}

func (r *timeSlotRepository) List(ctx context.Context, filter domain.TimeSlotFilter) ([]*domain.TimeSlot, error) {
	var where []string
	var args []any
	if filter.EventID != "" {
		args = append(args, filter.EventID)
		where = append(where, fmt.Sprintf("event_id = $%d", len(args)))
	}
	if filter.DayID != "" {
		args = append(args, filter.DayID)
		where = append(where, fmt.Sprintf("day_id = $%d", len(args)))
	}
	query := `SELECT ` + timeSlotColumns + ` FROM time_slots`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY day_id, start_minute`

	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, args...)
	if invalidID(err) {
		return []*domain.TimeSlot{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	slots := make([]*domain.TimeSlot, 0)
	for rows.Next() {
		s, err := scanTimeSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

func (r *timeSlotRepository) Update(ctx context.Context, s *domain.TimeSlot) error {
	query := `
		UPDATE time_slots
		SET start_minute = $1, end_minute = $2, title = $3, description = $4, slot_type = $5, speaker = $6, updated_at = $7
		WHERE id = $8
	`
	return affected(conn(ctx, r.DB).ExecContext(ctx, query,
		int(s.StartTime), int(s.EndTime), s.Title, s.Description, string(s.Type), s.Speaker, s.UpdatedAt, s.ID))
}

func (r *timeSlotRepository) Delete(ctx context.Context, id string) error {
	return affected(conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM time_slots WHERE id = $1`, id))
}

func (r *timeSlotRepository) DeleteByDayIDs(ctx context.Context, dayIDs []string) (int64, error) {
	if len(dayIDs) == 0 {
		return 0, nil
	}
	result, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM time_slots WHERE day_id = ANY($1)`, pq.Array(dayIDs))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteOrphans removes slots whose day or event no longer exists.
func (r *timeSlotRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	query := `
		DELETE FROM time_slots t
		WHERE NOT EXISTS (SELECT 1 FROM event_days d WHERE d.id = t.day_id)
		   OR NOT EXISTS (SELECT 1 FROM events e WHERE e.id = t.event_id)
	`
	result, err := conn(ctx, r.DB).ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
