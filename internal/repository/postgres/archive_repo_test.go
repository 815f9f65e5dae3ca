package postgres

import (
	"context"
	"testing"

	"festivalcms/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestArchiveRepository_Years(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO archive_years \(year, month, total_days, created_at, updated_at\)`).
		WithArgs(2024, 11, 3, t0, t0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("y-1"))
	mock.ExpectQuery(`INSERT INTO archive_years`).
		WithArgs(2024, 11, 3, t0, t0).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectQuery(`SELECT id, year, month, total_days, created_at, updated_at FROM archive_years WHERE year = \$1 AND month = \$2`).
		WithArgs(2023, 11).
		WillReturnRows(sqlmock.NewRows([]string{"id", "year", "month", "total_days", "created_at", "updated_at"}))

	repo := NewArchiveRepository(db)
	y := &domain.ArchiveYear{Year: 2024, Month: 11, TotalDays: 3, CreatedAt: t0, UpdatedAt: t0}
	require.NoError(t, repo.CreateYear(context.Background(), y))
	require.Equal(t, "y-1", y.ID)

	dup := &domain.ArchiveYear{Year: 2024, Month: 11, TotalDays: 3, CreatedAt: t0, UpdatedAt: t0}
	require.ErrorIs(t, repo.CreateYear(context.Background(), dup), domain.ErrInvalidInput)

	_, err = repo.FindYear(context.Background(), 2023, 11)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveRepository_Images(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, year_id, day_label, image_url, created_at FROM archive_images WHERE year_id = \$1 ORDER BY day_label, created_at`).
		WithArgs("y-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "year_id", "day_label", "image_url", "created_at"}).
			AddRow("i-1", "y-1", "Day 1", "/uploads/archive/a.jpg", t0).
			AddRow("i-2", "y-1", "Day 2", "/uploads/archive/b.jpg", t0))
	mock.ExpectExec(`DELETE FROM archive_images WHERE year_id = \$1`).
		WithArgs("y-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM archive_images WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewArchiveRepository(db)
	images, err := repo.ListImages(context.Background(), "y-1")
	require.NoError(t, err)
	require.Len(t, images, 2)
	require.Equal(t, "Day 2", images[1].DayLabel)

	n, err := repo.DeleteImagesByYear(context.Background(), "y-1")
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	require.ErrorIs(t, repo.DeleteImage(context.Background(), "missing"), domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
