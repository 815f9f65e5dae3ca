package postgres

import (
	"context"
	"database/sql"
	"testing"

	"festivalcms/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "name", "email", "password_hash", "role", "created_at", "updated_at"}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users \(name, email, password_hash, role, created_at, updated_at\)`).
					WithArgs("Ana", "ana@example.com", "hash", "admin", t0, t0).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("u-1"))
			},
			wantID: "u-1",
		},
		{
			name: "duplicate email",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrDuplicateEmail,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			u := domain.NewUser("Ana", "ana@example.com", "hash", domain.RoleAdmin, t0)
			err = NewUserRepository(db).Create(context.Background(), u)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, u.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow("u-1", "Ana", "ana@example.com", "hash", "admin", t0, t0))
	mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
		WithArgs("bob@example.com").
		WillReturnError(sql.ErrNoRows)

	repo := NewUserRepository(db)
	u, err := repo.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, u.Role)
	require.Equal(t, "hash", u.PasswordHash)

	_, err = repo.GetByEmail(ctx, "bob@example.com")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE users SET`).WillReturnError(&pq.Error{Code: "23505"})

	u := domain.NewUser("Ana", "taken@example.com", "hash", domain.RoleUser, t0)
	u.ID = "u-1"
	err = NewUserRepository(db).Update(context.Background(), u)
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	require.NoError(t, mock.ExpectationsWereMet())
}
