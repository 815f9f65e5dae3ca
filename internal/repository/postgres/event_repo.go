package postgres

import (
	"context"
	"database/sql"

	"festivalcms/internal/domain"
)

const eventColumns = `id, name, description, location, year, month, start_date, end_date, total_days, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(&e.ID, &e.Name, &e.Description, &e.Location, &e.Year, &e.Month,
		&e.StartDate, &e.EndDate, &e.TotalDays, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, description, location, year, month, start_date, end_date, total_days, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return conn(ctx, r.DB).QueryRowContext(ctx, query,
		e.Name, e.Description, e.Location, e.Year, e.Month, e.StartDate, e.EndDate, e.TotalDays, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, noRows(err)
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY start_date, name`
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET name = $1, description = $2, location = $3, year = $4, month = $5,
		    start_date = $6, end_date = $7, total_days = $8, updated_at = $9
		WHERE id = $10
	`
	return affected(conn(ctx, r.DB).ExecContext(ctx, query,
		e.Name, e.Description, e.Location, e.Year, e.Month, e.StartDate, e.EndDate, e.TotalDays, e.UpdatedAt, e.ID))
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	return affected(conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id))
}
