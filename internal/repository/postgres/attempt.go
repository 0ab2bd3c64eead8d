package postgres

import (
	"context"
	"database/sql"
	"time"

	"oxvocab/internal/domain"
)

const insertAttemptQuery = `
	INSERT INTO word_attempts (user_id, word_id, attempted_at)
	VALUES ($1, $2, $3)
`

// AttemptRepo implements repository.AttemptRepository
type AttemptRepo struct {
	db *sql.DB
}

// NewAttemptRepo creates a new attempt log repository
func NewAttemptRepo(db *sql.DB) *AttemptRepo {
	return &AttemptRepo{db: db}
}

// Append writes one attempt to the log
func (r *AttemptRepo) Append(ctx context.Context, userID, wordID int64, at time.Time) error {
	_, err := r.db.ExecContext(ctx, insertAttemptQuery, userID, wordID, at)
	return mapError(err)
}

// Recent returns the user's latest attempts, newest first
func (r *AttemptRepo) Recent(ctx context.Context, userID int64, limit int) ([]domain.Attempt, error) {
	query := `
		SELECT a.id, a.user_id, a.word_id, a.attempted_at, w.id, w.word, w.word_class, w.level, w.created_at
		FROM word_attempts a
		JOIN words w ON w.id = a.word_id
		WHERE a.user_id = $1
		ORDER BY a.attempted_at DESC, a.id DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []domain.Attempt
	for rows.Next() {
		var a domain.Attempt
		var w domain.Word
		if err := rows.Scan(&a.ID, &a.UserID, &a.WordID, &a.AttemptedAt, &w.ID, &w.Word, &w.WordClass, &w.Level, &w.CreatedAt); err != nil {
			return nil, err
		}
		a.Word = &w
		attempts = append(attempts, a)
	}

	return attempts, rows.Err()
}

// DeleteAll removes the user's whole attempt log
func (r *AttemptRepo) DeleteAll(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM word_attempts WHERE user_id = $1`, userID)
	return err
}
