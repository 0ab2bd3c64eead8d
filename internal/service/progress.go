package service

import (
	"context"
	"fmt"
	"time"

	"oxvocab/internal/domain"
	"oxvocab/internal/learning"
	"oxvocab/internal/repository"

	"go.uber.org/zap"
)

// ProgressService scores attempts against the per-word weights
type ProgressService struct {
	progressRepo repository.ProgressRepository
	now          func() time.Time
	logger       *zap.Logger
}

// NewProgressService creates a new progress service
func NewProgressService(progressRepo repository.ProgressRepository, logger *zap.Logger) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		now:          time.Now,
		logger:       logger,
	}
}

// Record logs one attempt and moves the word's weight. Both writes land
// together or not at all.
func (s *ProgressService) Record(ctx context.Context, userID, wordID int64, correct bool) (domain.Progress, error) {
	if wordID <= 0 {
		return domain.Progress{}, fmt.Errorf("%w: word_id is required", domain.ErrValidation)
	}

	p, err := s.progressRepo.RecordAttempt(ctx, userID, wordID, s.now(), func(prev *domain.Progress) domain.Progress {
		weight, streak := learning.Next(prev, correct)
		return domain.Progress{Weight: weight, CorrectStreak: streak}
	})
	if err != nil {
		s.logger.Error("Failed to record attempt",
			zap.Int64("user_id", userID),
			zap.Int64("word_id", wordID),
			zap.Error(err),
		)
		return domain.Progress{}, fmt.Errorf("record attempt: %w", err)
	}

	s.logger.Debug("Attempt recorded",
		zap.Int64("user_id", userID),
		zap.Int64("word_id", wordID),
		zap.Bool("correct", correct),
		zap.Int("weight", p.Weight),
		zap.Int("streak", p.CorrectStreak),
	)
	return p, nil
}
