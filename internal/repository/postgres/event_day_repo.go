package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"festivalcms/internal/domain"
)

const eventDayColumns = `id, event_id, day_number, name, description, created_at, updated_at`

type eventDayRepository struct {
	DB *sql.DB
}

func NewEventDayRepository(db *sql.DB) domain.EventDayRepository {
	return &eventDayRepository{DB: db}
}

func scanEventDay(row interface{ Scan(...any) error }) (*domain.EventDay, error) {
	d := &domain.EventDay{}
	if err := row.Scan(&d.ID, &d.EventID, &d.DayNumber, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	return d, nil
}

// CreateMany inserts all days in one statement and assigns the generated ids by day number.
func (r *eventDayRepository) CreateMany(ctx context.Context, days []*domain.EventDay) error {
	if len(days) == 0 {
		return nil
	}
	const cols = 6
	values := make([]string, 0, len(days))
	args := make([]any, 0, len(days)*cols)
	byNumber := make(map[int]*domain.EventDay, len(days))
	for i, d := range days {
		n := i * cols
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4, n+5, n+6))
		args = append(args, d.EventID, d.DayNumber, d.Name, d.Description, d.CreatedAt, d.UpdatedAt)
		byNumber[d.DayNumber] = d
	}
	query := `
		INSERT INTO event_days (event_id, day_number, name, description, created_at, updated_at)
		VALUES ` + strings.Join(values, ", ") + `
		RETURNING id, day_number
	`
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return err
		}
		if d, ok := byNumber[n]; ok {
			d.ID = id
		}
	}
	return rows.Err()
}

func (r *eventDayRepository) GetByID(ctx context.Context, id string) (*domain.EventDay, error) {
	query := `SELECT ` + eventDayColumns + ` FROM event_days WHERE id = $1`
	d, err := scanEventDay(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, noRows(err)
	}
	return d, nil
}

func (r *eventDayRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.EventDay, error) {
	query := `SELECT ` + eventDayColumns + ` FROM event_days WHERE event_id = $1 ORDER BY day_number`
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, eventID)
	if invalidID(err) {
		return []*domain.EventDay{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	days := make([]*domain.EventDay, 0)
	for rows.Next() {
		d, err := scanEventDay(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

func (r *eventDayRepository) Update(ctx context.Context, d *domain.EventDay) error {
	query := `UPDATE event_days SET name = $1, description = $2, updated_at = $3 WHERE id = $4`
	return affected(conn(ctx, r.DB).ExecContext(ctx, query, d.Name, d.Description, d.UpdatedAt, d.ID))
}

func (r *eventDayRepository) DeleteByEventID(ctx context.Context, eventID string) (int64, error) {
	result, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM event_days WHERE event_id = $1`, eventID)
	if invalidID(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteOrphans removes days whose event no longer exists.
func (r *eventDayRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	query := `
		DELETE FROM event_days d
		WHERE NOT EXISTS (SELECT 1 FROM events e WHERE e.id = d.event_id)
	`
	result, err := conn(ctx, r.DB).ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
