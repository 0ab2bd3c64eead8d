package repository

import (
	"context"
	"time"

	"oxvocab/internal/domain"
)

// UserRepository defines account data operations
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	IncrementScore(ctx context.Context, userID int64, delta int) (*domain.User, error)
	ResetScore(ctx context.Context, userID int64) error
	Delete(ctx context.Context, userID int64) error
}

// WordRepository defines catalog data operations
type WordRepository interface {
	CountWords(ctx context.Context, levels []domain.Level) (int, error)
	FetchWords(ctx context.Context, levels []domain.Level, limit, offset int) ([]domain.Word, error)
	FetchWithWeights(ctx context.Context, userID int64, levels []domain.Level, limit, offset int) ([]domain.WeightedWord, error)
	GetByID(ctx context.Context, wordID int64) (*domain.Word, error)
	Insert(ctx context.Context, word, wordClass string, level domain.Level) (bool, error)
}

// ProgressRepository defines per-user word progress operations
type ProgressRepository interface {
	Get(ctx context.Context, userID, wordID int64) (*domain.Progress, error)
	Upsert(ctx context.Context, p domain.Progress) error
	ListByUser(ctx context.Context, userID int64) ([]domain.ProgressEntry, error)
	ListAtLeast(ctx context.Context, userID int64, minWeight int) ([]domain.ProgressEntry, error)
	RecordAttempt(ctx context.Context, userID, wordID int64, at time.Time, next func(prev *domain.Progress) domain.Progress) (domain.Progress, error)
	DeleteAll(ctx context.Context, userID int64) error
}

// AttemptRepository defines attempt log operations
type AttemptRepository interface {
	Append(ctx context.Context, userID, wordID int64, at time.Time) error
	Recent(ctx context.Context, userID int64, limit int) ([]domain.Attempt, error)
	DeleteAll(ctx context.Context, userID int64) error
}
