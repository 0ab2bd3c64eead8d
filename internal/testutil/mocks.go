package testutil

import (
	"context"
	"time"

	"oxvocab/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	args := m.Called(ctx, username, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) IncrementScore(ctx context.Context, userID int64, delta int) (*domain.User, error) {
	args := m.Called(ctx, userID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ResetScore(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) CountWords(ctx context.Context, levels []domain.Level) (int, error) {
	args := m.Called(ctx, levels)
	return args.Int(0), args.Error(1)
}

func (m *MockWordRepository) FetchWords(ctx context.Context, levels []domain.Level, limit, offset int) ([]domain.Word, error) {
	args := m.Called(ctx, levels, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) FetchWithWeights(ctx context.Context, userID int64, levels []domain.Level, limit, offset int) ([]domain.WeightedWord, error) {
	args := m.Called(ctx, userID, levels, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeightedWord), args.Error(1)
}

func (m *MockWordRepository) GetByID(ctx context.Context, wordID int64) (*domain.Word, error) {
	args := m.Called(ctx, wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) Insert(ctx context.Context, word, wordClass string, level domain.Level) (bool, error) {
	args := m.Called(ctx, word, wordClass, level)
	return args.Bool(0), args.Error(1)
}

// MockProgressRepository is a mock for ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Get(ctx context.Context, userID, wordID int64) (*domain.Progress, error) {
	args := m.Called(ctx, userID, wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Progress), args.Error(1)
}

func (m *MockProgressRepository) Upsert(ctx context.Context, p domain.Progress) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProgressRepository) ListByUser(ctx context.Context, userID int64) ([]domain.ProgressEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProgressEntry), args.Error(1)
}

func (m *MockProgressRepository) ListAtLeast(ctx context.Context, userID int64, minWeight int) ([]domain.ProgressEntry, error) {
	args := m.Called(ctx, userID, minWeight)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProgressEntry), args.Error(1)
}

// RecordAttempt runs next against the progress given as the third return
// argument (nil for a first attempt) unless an error is configured.
func (m *MockProgressRepository) RecordAttempt(
	ctx context.Context,
	userID, wordID int64,
	at time.Time,
	next func(prev *domain.Progress) domain.Progress,
) (domain.Progress, error) {
	args := m.Called(ctx, userID, wordID)
	if err := args.Error(0); err != nil {
		return domain.Progress{}, err
	}
	var prev *domain.Progress
	if p := args.Get(1); p != nil {
		prev = p.(*domain.Progress)
	}
	p := next(prev)
	p.UserID, p.WordID, p.LastReviewedAt = userID, wordID, at
	return p, nil
}

func (m *MockProgressRepository) DeleteAll(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockAttemptRepository is a mock for AttemptRepository
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) Append(ctx context.Context, userID, wordID int64, at time.Time) error {
	args := m.Called(ctx, userID, wordID, at)
	return args.Error(0)
}

func (m *MockAttemptRepository) Recent(ctx context.Context, userID int64, limit int) ([]domain.Attempt, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attempt), args.Error(1)
}

func (m *MockAttemptRepository) DeleteAll(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockCompleter is a mock for the text-generation client
type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt, temperature, maxTokens)
	return args.String(0), args.Error(1)
}

// MockTranslationCache is a mock for the translation cache
type MockTranslationCache struct {
	mock.Mock
}

func (m *MockTranslationCache) Get(ctx context.Context, word string) (string, bool, error) {
	args := m.Called(ctx, word)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockTranslationCache) Set(ctx context.Context, word, translations string) error {
	args := m.Called(ctx, word, translations)
	return args.Error(0)
}
