package testutil

import (
	"math/rand/v2"
	"time"

	"oxvocab/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRand returns a deterministic random source
func NewTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewTestUser creates a test user
func NewTestUser(id int64, username string, score int) *domain.User {
	return &domain.User{
		ID:         id,
		Username:   username,
		TotalScore: score,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

// NewTestWord creates a test catalog word
func NewTestWord(id int64, word string, level domain.Level) domain.Word {
	return domain.Word{
		ID:        id,
		Word:      word,
		WordClass: "noun",
		Level:     level,
		CreatedAt: time.Now(),
	}
}

// NewTestEntry creates a progress entry for a test word
func NewTestEntry(userID int64, w domain.Word, weight, streak int) domain.ProgressEntry {
	return domain.ProgressEntry{
		Progress: domain.Progress{
			UserID:         userID,
			WordID:         w.ID,
			Weight:         weight,
			CorrectStreak:  streak,
			LastReviewedAt: time.Now(),
		},
		Word: w,
	}
}
