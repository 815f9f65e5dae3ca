package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"festivalcms/internal/domain"
)

func TestTransactor_WithinTx(t *testing.T) {
	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		fn      func(ctx context.Context, repo *eventRepository) error
		wantErr error
	}{
		{
			name: "commit on success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs("ev-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			fn: func(ctx context.Context, repo *eventRepository) error {
				return repo.Delete(ctx, "ev-1")
			},
		},
		{
			name: "rollback on error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM events`).
					WithArgs("ev-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectRollback()
			},
			fn: func(ctx context.Context, repo *eventRepository) error {
				if err := repo.Delete(ctx, "ev-1"); err != nil {
					return err
				}
				return errStop
			},
			wantErr: errStop,
		},
		{
			name: "begin fails",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("conn refused"))
			},
			fn: func(ctx context.Context, repo *eventRepository) error {
				t.Fatal("fn must not run")
				return nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := &eventRepository{DB: db}
			err = NewTransactor(db).WithinTx(context.Background(), func(ctx context.Context) error {
				return tt.fn(ctx, repo)
			})
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.name == "begin fails":
				require.Error(t, err)
			default:
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTransactor_NestedJoinsOuter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	tx := NewTransactor(db)
	err = tx.WithinTx(context.Background(), func(ctx context.Context) error {
		return tx.WithinTx(ctx, func(ctx context.Context) error { return nil })
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoRows(t *testing.T) {
	malformed := &pq.Error{Code: "22P02", Message: `invalid input syntax for type uuid: "abc"`}
	require.ErrorIs(t, noRows(sql.ErrNoRows), domain.ErrNotFound)
	require.ErrorIs(t, noRows(malformed), domain.ErrNotFound)
	require.ErrorIs(t, noRows(fmt.Errorf("scan: %w", malformed)), domain.ErrNotFound)
	require.ErrorIs(t, noRows(sql.ErrConnDone), sql.ErrConnDone)
	require.NoError(t, noRows(nil))
}

func TestAffected(t *testing.T) {
	require.NoError(t, affected(sqlmock.NewResult(0, 1), nil))
	require.ErrorIs(t, affected(sqlmock.NewResult(0, 0), nil), domain.ErrNotFound)
	require.ErrorIs(t, affected(nil, &pq.Error{Code: "22P02"}), domain.ErrNotFound)
	require.ErrorIs(t, affected(nil, sql.ErrConnDone), sql.ErrConnDone)
}

var errStop = errors.New("stop")
