package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"oxvocab/internal/domain"
)

const userColumns = `id, username, password_hash, total_score, created_at, updated_at`

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.TotalScore, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Create inserts a new account. A taken username yields domain.ErrAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	query := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query, username, passwordHash))
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

// GetByUsername looks an account up by its unique username
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, username))
}

// GetByID looks an account up by id
func (r *UserRepo) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, userID))
}

// IncrementScore adds delta to the user's total score and returns the updated account
func (r *UserRepo) IncrementScore(ctx context.Context, userID int64, delta int) (*domain.User, error) {
	query := `
		UPDATE users
		SET total_score = total_score + $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	return scanUser(r.db.QueryRowContext(ctx, query, userID, delta))
}

// ResetScore sets the user's total score back to zero
func (r *UserRepo) ResetScore(ctx context.Context, userID int64) error {
	query := `
		UPDATE users
		SET total_score = 0, updated_at = NOW()
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

// Delete removes the account. Progress and attempts go with it via ON DELETE CASCADE.
func (r *UserRepo) Delete(ctx context.Context, userID int64) error {
	query := `DELETE FROM users WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
