package postgres

import (
	"context"
	"testing"

	"festivalcms/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestSpeakerRepository_CreateAndGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO speakers \(event_id, name, about, image_url, created_at, updated_at\)`).
		WithArgs("ev-1", "Mamang Dai", "Poet", "/uploads/speakers/m.png", t0, t0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("sp-1"))
	mock.ExpectQuery(`SELECT id, event_id, name, about, image_url, created_at, updated_at FROM speakers WHERE id = \$1`).
		WithArgs("sp-2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "name", "about", "image_url", "created_at", "updated_at"}))

	repo := NewSpeakerRepository(db)
	s := &domain.Speaker{EventID: "ev-1", Name: "Mamang Dai", About: "Poet", ImageURL: "/uploads/speakers/m.png", CreatedAt: t0, UpdatedAt: t0}
	require.NoError(t, repo.Create(context.Background(), s))
	require.Equal(t, "sp-1", s.ID)

	_, err = repo.GetByID(context.Background(), "sp-2")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
