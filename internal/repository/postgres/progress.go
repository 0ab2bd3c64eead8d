package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"oxvocab/internal/domain"
)

const upsertProgressQuery = `
	INSERT INTO user_word_progress (user_id, word_id, weight, correct_streak, last_reviewed_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (user_id, word_id)
	DO UPDATE SET
		weight = EXCLUDED.weight,
		correct_streak = EXCLUDED.correct_streak,
		last_reviewed_at = EXCLUDED.last_reviewed_at
`

const progressEntryColumns = `
	p.user_id, p.word_id, p.weight, p.correct_streak, p.last_reviewed_at,
	w.id, w.word, w.word_class, w.level, w.created_at
`

// ProgressRepo implements repository.ProgressRepository
type ProgressRepo struct {
	db *sql.DB
}

// NewProgressRepo creates a new progress repository
func NewProgressRepo(db *sql.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getProgress(ctx context.Context, q querier, query string, userID, wordID int64) (*domain.Progress, error) {
	var p domain.Progress
	err := q.QueryRowContext(ctx, query, userID, wordID).
		Scan(&p.UserID, &p.WordID, &p.Weight, &p.CorrectStreak, &p.LastReviewedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Get returns the user's progress on a word, or nil when the word was never attempted
func (r *ProgressRepo) Get(ctx context.Context, userID, wordID int64) (*domain.Progress, error) {
	query := `
		SELECT user_id, word_id, weight, correct_streak, last_reviewed_at
		FROM user_word_progress
		WHERE user_id = $1 AND word_id = $2
	`
	return getProgress(ctx, r.db, query, userID, wordID)
}

// Upsert creates or replaces a progress row
func (r *ProgressRepo) Upsert(ctx context.Context, p domain.Progress) error {
	_, err := r.db.ExecContext(ctx, upsertProgressQuery, p.UserID, p.WordID, p.Weight, p.CorrectStreak, p.LastReviewedAt)
	return mapError(err)
}

// ListByUser returns all of the user's progress rows, heaviest first
func (r *ProgressRepo) ListByUser(ctx context.Context, userID int64) ([]domain.ProgressEntry, error) {
	query := `
		SELECT ` + progressEntryColumns + `
		FROM user_word_progress p
		JOIN words w ON w.id = p.word_id
		WHERE p.user_id = $1
		ORDER BY p.weight DESC, p.word_id
	`
	return r.listEntries(ctx, query, userID)
}

// ListAtLeast returns the user's progress rows with weight >= minWeight, heaviest first
func (r *ProgressRepo) ListAtLeast(ctx context.Context, userID int64, minWeight int) ([]domain.ProgressEntry, error) {
	query := `
		SELECT ` + progressEntryColumns + `
		FROM user_word_progress p
		JOIN words w ON w.id = p.word_id
		WHERE p.user_id = $1 AND p.weight >= $2
		ORDER BY p.weight DESC, p.word_id
	`
	return r.listEntries(ctx, query, userID, minWeight)
}

func (r *ProgressRepo) listEntries(ctx context.Context, query string, args ...any) ([]domain.ProgressEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ProgressEntry
	for rows.Next() {
		var e domain.ProgressEntry
		if err := rows.Scan(
			&e.UserID, &e.WordID, &e.Weight, &e.CorrectStreak, &e.LastReviewedAt,
			&e.Word.ID, &e.Word.Word, &e.Word.WordClass, &e.Word.Level, &e.Word.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// RecordAttempt appends an attempt and upserts the progress row in one transaction.
// The current row is locked while next computes its replacement.
func (r *ProgressRepo) RecordAttempt(
	ctx context.Context,
	userID, wordID int64,
	at time.Time,
	next func(prev *domain.Progress) domain.Progress,
) (domain.Progress, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Progress{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	query := `
		SELECT user_id, word_id, weight, correct_streak, last_reviewed_at
		FROM user_word_progress
		WHERE user_id = $1 AND word_id = $2
		FOR UPDATE
	`
	prev, err := getProgress(ctx, tx, query, userID, wordID)
	if err != nil {
		return domain.Progress{}, fmt.Errorf("lock progress: %w", err)
	}

	if _, err := tx.ExecContext(ctx, insertAttemptQuery, userID, wordID, at); err != nil {
		return domain.Progress{}, fmt.Errorf("append attempt: %w", mapError(err))
	}

	p := next(prev)
	p.UserID, p.WordID, p.LastReviewedAt = userID, wordID, at

	if _, err := tx.ExecContext(ctx, upsertProgressQuery, p.UserID, p.WordID, p.Weight, p.CorrectStreak, p.LastReviewedAt); err != nil {
		return domain.Progress{}, fmt.Errorf("upsert progress: %w", mapError(err))
	}

	if err := tx.Commit(); err != nil {
		return domain.Progress{}, fmt.Errorf("commit: %w", err)
	}
	return p, nil
}

// DeleteAll removes every progress row of the user
func (r *ProgressRepo) DeleteAll(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM user_word_progress WHERE user_id = $1`, userID)
	return err
}
