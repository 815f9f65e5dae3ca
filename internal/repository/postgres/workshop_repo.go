package postgres

import (
	"context"
	"database/sql"

	"festivalcms/internal/domain"
)

const workshopColumns = `id, event_id, name, about, image_url, registration_form_url, created_at, updated_at`

type workshopRepository struct {
	DB *sql.DB
}

func NewWorkshopRepository(db *sql.DB) domain.WorkshopRepository {
	return &workshopRepository{DB: db}
}

func scanWorkshop(row interface{ Scan(...any) error }) (*domain.Workshop, error) {
	w := &domain.Workshop{}
	if err := row.Scan(&w.ID, &w.EventID, &w.Name, &w.About, &w.ImageURL, &w.RegistrationFormURL, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return w, nil
}

func (r *workshopRepository) Create(ctx context.Context, w *domain.Workshop) error {
	query := `
		INSERT INTO workshops (event_id, name, about, image_url, registration_form_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return conn(ctx, r.DB).QueryRowContext(ctx, query,
		w.EventID, w.Name, w.About, w.ImageURL, w.RegistrationFormURL, w.CreatedAt, w.UpdatedAt).Scan(&w.ID)
}

func (r *workshopRepository) GetByID(ctx context.Context, id string) (*domain.Workshop, error) {
	w, err := scanWorkshop(conn(ctx, r.DB).QueryRowContext(ctx, `SELECT `+workshopColumns+` FROM workshops WHERE id = $1`, id))
	if err != nil {
		return nil, noRows(err)
	}
	return w, nil
}

func (r *workshopRepository) List(ctx context.Context) ([]*domain.Workshop, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx, `SELECT `+workshopColumns+` FROM workshops ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.Workshop, 0)
	for rows.Next() {
		w, err := scanWorkshop(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *workshopRepository) Update(ctx context.Context, w *domain.Workshop) error {
	query := `
		UPDATE workshops SET name = $1, about = $2, image_url = $3, registration_form_url = $4, updated_at = $5
		WHERE id = $6
	`
	return affected(conn(ctx, r.DB).ExecContext(ctx, query, w.Name, w.About, w.ImageURL, w.RegistrationFormURL, w.UpdatedAt, w.ID))
}

func (r *workshopRepository) Delete(ctx context.Context, id string) error {
	return affected(conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM workshops WHERE id = $1`, id))
}
