package postgres

import (
	"context"
	"database/sql"

	"festivalcms/internal/domain"
)

const speakerColumns = `id, event_id, name, about, image_url, created_at, updated_at`

type speakerRepository struct {
	DB *sql.DB
}

func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &speakerRepository{DB: db}
}

func scanSpeaker(row interface{ Scan(...any) error }) (*domain.Speaker, error) {
	s := &domain.Speaker{}
	if err := row.Scan(&s.ID, &s.EventID, &s.Name, &s.About, &s.ImageURL, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *speakerRepository) Create(ctx context.Context, s *domain.Speaker) error {
	query := `
		INSERT INTO speakers (event_id, name, about, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return conn(ctx, r.DB).QueryRowContext(ctx, query, s.EventID, s.Name, s.About, s.ImageURL, s.CreatedAt, s.UpdatedAt).Scan(&s.ID)
}

func (r *speakerRepository) GetByID(ctx context.Context, id string) (*domain.Speaker, error) {
	s, err := scanSpeaker(conn(ctx, r.DB).QueryRowContext(ctx, `SELECT `+speakerColumns+` FROM speakers WHERE id = $1`, id))
	if err != nil {
		return nil, noRows(err)
	}
	return s, nil
}

func (r *speakerRepository) List(ctx context.Context) ([]*domain.Speaker, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx, `SELECT `+speakerColumns+` FROM speakers ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.Speaker, 0)
	for rows.Next() {
		s, err := scanSpeaker(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *speakerRepository) Update(ctx context.Context, s *domain.Speaker) error {
	query := `UPDATE speakers SET name = $1, about = $2, image_url = $3, updated_at = $4 WHERE id = $5`
	return affected(conn(ctx, r.DB).ExecContext(ctx, query, s.Name, s.About, s.ImageURL, s.UpdatedAt, s.ID))
}

func (r *speakerRepository) Delete(ctx context.Context, id string) error {
	return affected(conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM speakers WHERE id = $1`, id))
}
