package postgres

import (
	"context"
	"database/sql/driver"
	"fmt"
	"testing"
	"time"

	"oxvocab/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

var userRowColumns = []string{"id", "username", "password_hash", "total_score", "created_at", "updated_at"}

func TestUserRepo_Create(t *testing.T) {
	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedError error
	}{
		{
			name:     "created",
			mockRows: sqlmock.NewRows(userRowColumns).AddRow(1, "budi", "hash", 0, time.Now(), time.Now()),
		},
		{
			name:          "username taken",
			mockError:     &pq.Error{Code: "23505", Constraint: "users_username_key"},
			expectedError: domain.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			exp := mock.ExpectQuery("INSERT INTO users \\(username, password_hash\\)").WithArgs("budi", "hash")
			if tt.mockError != nil {
				exp.WillReturnError(tt.mockError)
			} else {
				exp.WillReturnRows(tt.mockRows)
			}

			user, err := repo.Create(context.Background(), "budi", "hash")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), user.ID)
				assert.Equal(t, "budi", user.Username)
				assert.Equal(t, 0, user.TotalScore)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_GetByUsername(t *testing.T) {
	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		expectedError error
	}{
		{
			name:     "found",
			mockRows: sqlmock.NewRows(userRowColumns).AddRow(7, "budi", "hash", 12, time.Now(), time.Now()),
		},
		{
			name:          "not found",
			mockRows:      sqlmock.NewRows(userRowColumns),
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			mock.ExpectQuery("SELECT id, username, password_hash, total_score, created_at, updated_at FROM users WHERE username = \\$1").
				WithArgs("budi").
				WillReturnRows(tt.mockRows)

			user, err := repo.GetByUsername(context.Background(), "budi")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(7), user.ID)
				assert.Equal(t, 12, user.TotalScore)
				assert.Equal(t, "hash", user.PasswordHash)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_IncrementScore(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectQuery("UPDATE users SET total_score = total_score \\+ \\$2, updated_at = NOW\\(\\) WHERE id = \\$1").
		WithArgs(int64(7), 1).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(7, "budi", "hash", 13, time.Now(), time.Now()))

	user, err := repo.IncrementScore(context.Background(), 7, 1)

	assert.NoError(t, err)
	assert.Equal(t, 13, user.TotalScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_IncrementScore_UnknownUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectQuery("UPDATE users SET total_score").
		WithArgs(int64(99), 1).
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	user, err := repo.IncrementScore(context.Background(), 99, 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_ResetScore(t *testing.T) {
	tests := []struct {
		name          string
		result        driver.Result
		mockError     error
		expectedError bool
	}{
		{name: "reset", result: sqlmock.NewResult(0, 1)},
		{name: "unknown user", result: sqlmock.NewResult(0, 0), expectedError: true},
		{name: "database error", mockError: fmt.Errorf("db error"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			exp := mock.ExpectExec("UPDATE users SET total_score = 0, updated_at = NOW\\(\\) WHERE id = \\$1").WithArgs(int64(7))
			if tt.mockError != nil {
				exp.WillReturnError(tt.mockError)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err = repo.ResetScore(context.Background(), 7)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectExec("DELETE FROM users WHERE id = \\$1").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM users WHERE id = \\$1").
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), 7))
	assert.ErrorIs(t, repo.Delete(context.Background(), 8), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
