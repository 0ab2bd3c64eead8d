package postgres

import (
	"context"
	"database/sql"
	"errors"

	"oxvocab/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// CountWords counts catalog words, optionally restricted to some levels
func (r *WordRepo) CountWords(ctx context.Context, levels []domain.Level) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM words
		WHERE ($1::text[] IS NULL OR level = ANY($1))
	`
	var count int
	err := r.db.QueryRowContext(ctx, query, levelArray(levels)).Scan(&count)
	return count, err
}

// FetchWords returns one page of catalog words in id order
func (r *WordRepo) FetchWords(ctx context.Context, levels []domain.Level, limit, offset int) ([]domain.Word, error) {
	query := `
		SELECT id, word, word_class, level, created_at
		FROM words
		WHERE ($1::text[] IS NULL OR level = ANY($1))
		ORDER BY id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, levelArray(levels), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.Word, &w.WordClass, &w.Level, &w.CreatedAt); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// FetchWithWeights returns one page of catalog words joined with the user's progress
func (r *WordRepo) FetchWithWeights(ctx context.Context, userID int64, levels []domain.Level, limit, offset int) ([]domain.WeightedWord, error) {
	query := `
		SELECT w.id, w.word, w.word_class, w.level, w.created_at, p.weight, p.correct_streak
		FROM words w
		LEFT JOIN user_word_progress p ON p.word_id = w.id AND p.user_id = $1
		WHERE ($2::text[] IS NULL OR w.level = ANY($2))
		ORDER BY w.id
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.QueryContext(ctx, query, userID, levelArray(levels), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.WeightedWord
	for rows.Next() {
		var w domain.WeightedWord
		var weight, streak sql.NullInt64
		if err := rows.Scan(&w.ID, &w.Word.Word, &w.WordClass, &w.Level, &w.CreatedAt, &weight, &streak); err != nil {
			return nil, err
		}
		if weight.Valid {
			w.Reviewed = true
			w.CurrentWeight = int(weight.Int64)
			w.CorrectStreak = int(streak.Int64)
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// GetByID returns a catalog word or domain.ErrNotFound
func (r *WordRepo) GetByID(ctx context.Context, wordID int64) (*domain.Word, error) {
	query := `SELECT id, word, word_class, level, created_at FROM words WHERE id = $1`

	var w domain.Word
	err := r.db.QueryRowContext(ctx, query, wordID).Scan(&w.ID, &w.Word, &w.WordClass, &w.Level, &w.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Insert adds a catalog word. It reports false when the word already exists.
func (r *WordRepo) Insert(ctx context.Context, word, wordClass string, level domain.Level) (bool, error) {
	query := `
		INSERT INTO words (word, word_class, level)
		VALUES ($1, $2, $3)
		ON CONFLICT (word, word_class, level) DO NOTHING
	`
	res, err := r.db.ExecContext(ctx, query, word, wordClass, string(level))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
