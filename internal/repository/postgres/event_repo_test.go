package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"festivalcms/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var (
	t0     = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	start0 = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end0   = time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
)

var eventRowColumns = []string{"id", "name", "description", "location", "year", "month", "start_date", "end_date", "total_days", "created_at", "updated_at"}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events \(name, description, location, year, month, start_date, end_date, total_days, created_at, updated_at\)`).
					WithArgs("Lit Fest", "Readings", "Itanagar", 2024, 1, start0, end0, 3, t0, t0).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-uuid-1"))
			},
			wantID: "ev-uuid-1",
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			e := &domain.Event{
				Name: "Lit Fest", Description: "Readings", Location: "Itanagar", Year: 2024, Month: 1,
				StartDate: start0, EndDate: end0, TotalDays: 3, CreatedAt: t0, UpdatedAt: t0,
			}
			err = NewEventRepository(db).Create(ctx, e)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, e.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Event
		errIs   error
		wantErr bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, description, location, year, month, start_date, end_date, total_days, created_at, updated_at FROM events WHERE id = \$1`).
					WithArgs("ev-1").
					WillReturnRows(sqlmock.NewRows(eventRowColumns).
						AddRow("ev-1", "Lit Fest", "", "", 2024, 1, start0, end0, 3, t0, t0))
			},
			want: &domain.Event{ID: "ev-1", Name: "Lit Fest", Year: 2024, Month: 1, StartDate: start0, EndDate: end0, TotalDays: 3, CreatedAt: t0, UpdatedAt: t0},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM events WHERE id`).WithArgs("ev-1").WillReturnError(sql.ErrNoRows)
			},
			errIs:   domain.ErrNotFound,
			wantErr: true,
		},
		{
			name: "malformed id",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM events WHERE id`).WithArgs("ev-1").
					WillReturnError(&pq.Error{Code: "22P02", Message: "invalid input syntax for type uuid"})
			},
			errIs:   domain.ErrNotFound,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			got, err := NewEventRepository(db).GetByID(ctx, "ev-1")
			if tt.wantErr {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM events ORDER BY start_date, name`).
		WillReturnRows(sqlmock.NewRows(eventRowColumns).
			AddRow("ev-1", "A", "", "", 2024, 1, start0, end0, 3, t0, t0).
			AddRow("ev-2", "B", "", "", 2024, 2, start0.AddDate(0, 1, 0), end0.AddDate(0, 1, 0), 3, t0, t0))

	got, err := NewEventRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "ev-2", got[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	e := &domain.Event{ID: "ev-1", Name: "Lit Fest", Year: 2024, Month: 1, StartDate: start0, EndDate: end0, TotalDays: 3, UpdatedAt: t0}
	mock.ExpectExec(`UPDATE events`).
		WithArgs("Lit Fest", "", "", 2024, 1, start0, end0, 3, t0, "ev-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE events`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).WithArgs("ev-1").WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewEventRepository(db)
	require.NoError(t, repo.Update(ctx, e))
	require.ErrorIs(t, repo.Update(ctx, e), domain.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, "ev-1"), domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_DeleteMalformedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).WithArgs("abc").
		WillReturnError(&pq.Error{Code: "22P02"})

	require.ErrorIs(t, NewEventRepository(db).Delete(context.Background(), "abc"), domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
