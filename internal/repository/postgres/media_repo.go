package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"festivalcms/internal/domain"
)

var mediaTables = map[domain.MediaKind]string{
	domain.MediaBanner:   "banners",
	domain.MediaBrochure: "brochures",
}

type mediaRepository struct {
	DB *sql.DB
}

// NewMediaRepository stores each media kind in its own table with an identical layout.
func NewMediaRepository(db *sql.DB) domain.MediaRepository {
	return &mediaRepository{DB: db}
}

func mediaTable(kind domain.MediaKind) (string, error) {
	t, ok := mediaTables[kind]
	if !ok {
		return "", fmt.Errorf("%w: unknown media kind %q", domain.ErrInvalidInput, kind)
	}
	return t, nil
}

func (r *mediaRepository) Create(ctx context.Context, m *domain.Media) error {
	table, err := mediaTable(m.Kind)
	if err != nil {
		return err
	}
	query := `INSERT INTO ` + table + ` (file_url, created_at, updated_at) VALUES ($1, $2, $3) RETURNING id`
	return conn(ctx, r.DB).QueryRowContext(ctx, query, m.FileURL, m.CreatedAt, m.UpdatedAt).Scan(&m.ID)
}

func (r *mediaRepository) GetByID(ctx context.Context, kind domain.MediaKind, id string) (*domain.Media, error) {
	table, err := mediaTable(kind)
	if err != nil {
		return nil, err
	}
	m := &domain.Media{Kind: kind}
	query := `SELECT id, file_url, created_at, updated_at FROM ` + table + ` WHERE id = $1`
	if err := conn(ctx, r.DB).QueryRowContext(ctx, query, id).Scan(&m.ID, &m.FileURL, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, noRows(err)
	}
	return m, nil
}

func (r *mediaRepository) List(ctx context.Context, kind domain.MediaKind) ([]*domain.Media, error) {
	table, err := mediaTable(kind)
	if err != nil {
		return nil, err
	}
	rows, err := conn(ctx, r.DB).QueryContext(ctx, `SELECT id, file_url, created_at, updated_at FROM `+table+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.Media, 0)
	for rows.Next() {
		m := &domain.Media{Kind: kind}
		if err := rows.Scan(&m.ID, &m.FileURL, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *mediaRepository) Update(ctx context.Context, m *domain.Media) error {
	table, err := mediaTable(m.Kind)
	if err != nil {
		return err
	}
	query := `UPDATE ` + table + ` SET file_url = $1, updated_at = $2 WHERE id = $3`
	return affected(conn(ctx, r.DB).ExecContext(ctx, query, m.FileURL, m.UpdatedAt, m.ID))
}

func (r *mediaRepository) Delete(ctx context.Context, kind domain.MediaKind, id string) error {
	table, err := mediaTable(kind)
	if err != nil {
		return err
	}
	return affected(conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id))
}
