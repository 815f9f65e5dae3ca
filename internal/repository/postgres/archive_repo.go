package postgres

import (
	"context"
	"database/sql"

	"festivalcms/internal/domain"
)

const (
	archiveYearColumns  = `id, year, month, total_days, created_at, updated_at`
	archiveImageColumns = `id, year_id, day_label, image_url, created_at`
)

type archiveRepository struct {
	DB *sql.DB
}

func NewArchiveRepository(db *sql.DB) domain.ArchiveRepository {
	return &archiveRepository{DB: db}
}

func scanArchiveYear(row interface{ Scan(...any) error }) (*domain.ArchiveYear, error) {
	y := &domain.ArchiveYear{}
	if err := row.Scan(&y.ID, &y.Year, &y.Month, &y.TotalDays, &y.CreatedAt, &y.UpdatedAt); err != nil {
		return nil, err
	}
	return y, nil
}

func scanArchiveImage(row interface{ Scan(...any) error }) (*domain.ArchiveImage, error) {
	img := &domain.ArchiveImage{}
	if err := row.Scan(&img.ID, &img.YearID, &img.DayLabel, &img.ImageURL, &img.CreatedAt); err != nil {
		return nil, err
	}
	return img, nil
}

func (r *archiveRepository) CreateYear(ctx context.Context, y *domain.ArchiveYear) error {
	query := `
		INSERT INTO archive_years (year, month, total_days, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query, y.Year, y.Month, y.TotalDays, y.CreatedAt, y.UpdatedAt).Scan(&y.ID)
	if isUniqueViolation(err) {
		return domain.ErrInvalidInput
	}
	return err
}

func (r *archiveRepository) GetYearByID(ctx context.Context, id string) (*domain.ArchiveYear, error) {
	y, err := scanArchiveYear(conn(ctx, r.DB).QueryRowContext(ctx, `SELECT `+archiveYearColumns+` FROM archive_years WHERE id = $1`, id))
	if err != nil {
		return nil, noRows(err)
	}
	return y, nil
}

func (r *archiveRepository) FindYear(ctx context.Context, year, month int) (*domain.ArchiveYear, error) {
	query := `SELECT ` + archiveYearColumns + ` FROM archive_years WHERE year = $1 AND month = $2`
	y, err := scanArchiveYear(conn(ctx, r.DB).QueryRowContext(ctx, query, year, month))
	if err != nil {
		return nil, noRows(err)
	}
	return y, nil
}

func (r *archiveRepository) ListYears(ctx context.Context) ([]*domain.ArchiveYear, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx, `SELECT `+archiveYearColumns+` FROM archive_years ORDER BY year DESC, month DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.ArchiveYear, 0)
	for rows.Next() {
		y, err := scanArchiveYear(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, y)
	}
	return out, rows.Err()
}

func (r *archiveRepository) DeleteYear(ctx context.Context, id string) error {
	return affected(conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM archive_years WHERE id = $1`, id))
}

func (r *archiveRepository) CreateImage(ctx context.Context, img *domain.ArchiveImage) error {
	query := `
		INSERT INTO archive_images (year_id, day_label, image_url, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return conn(ctx, r.DB).QueryRowContext(ctx, query, img.YearID, img.DayLabel, img.ImageURL, img.CreatedAt).Scan(&img.ID)
}

func (r *archiveRepository) GetImageByID(ctx context.Context, id string) (*domain.ArchiveImage, error) {
	img, err := scanArchiveImage(conn(ctx, r.DB).QueryRowContext(ctx, `SELECT `+archiveImageColumns+` FROM archive_images WHERE id = $1`, id))
	if err != nil {
		return nil, noRows(err)
	}
	return img, nil
}

func (r *archiveRepository) ListImages(ctx context.Context, yearID string) ([]*domain.ArchiveImage, error) {
	query := `SELECT ` + archiveImageColumns + ` FROM archive_images WHERE year_id = $1 ORDER BY day_label, created_at`
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, yearID)
	if invalidID(err) {
		return []*domain.ArchiveImage{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.ArchiveImage, 0)
	for rows.Next() {
		img, err := scanArchiveImage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

func (r *archiveRepository) DeleteImage(ctx context.Context, id string) error {
	return affected(conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM archive_images WHERE id = $1`, id))
}

func (r *archiveRepository) DeleteImagesByYear(ctx context.Context, yearID string) (int64, error) {
	result, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM archive_images WHERE year_id = $1`, yearID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
