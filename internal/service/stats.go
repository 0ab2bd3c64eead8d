package service

import (
	"context"
	"fmt"

	"oxvocab/internal/domain"
	"oxvocab/internal/repository"

	"go.uber.org/zap"
)

const recentAttemptsLimit = 10

// StatsService builds the progress dashboard
type StatsService struct {
	wordRepo     repository.WordRepository
	progressRepo repository.ProgressRepository
	attemptRepo  repository.AttemptRepository
	logger       *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(
	wordRepo repository.WordRepository,
	progressRepo repository.ProgressRepository,
	attemptRepo repository.AttemptRepository,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		wordRepo:     wordRepo,
		progressRepo: progressRepo,
		attemptRepo:  attemptRepo,
		logger:       logger,
	}
}

// Stats returns all progress rows, the latest attempts and per-level counts.
// A word counts as learned once its correct streak is positive.
func (s *StatsService) Stats(ctx context.Context, userID int64) (*domain.ProgressStats, error) {
	entries, err := s.progressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	attempts, err := s.attemptRepo.Recent(ctx, userID, recentAttemptsLimit)
	if err != nil {
		return nil, fmt.Errorf("recent attempts: %w", err)
	}

	levelStats := make(map[string]domain.LevelStat, len(domain.Levels))
	for _, level := range domain.Levels {
		total, err := s.wordRepo.CountWords(ctx, []domain.Level{level})
		if err != nil {
			// the dashboard still renders without this level
			s.logger.Warn("Failed to count words", zap.String("level", string(level)), zap.Error(err))
			continue
		}
		levelStats[level.Upper()] = domain.LevelStat{Total: total}
	}

	for _, e := range entries {
		if e.CorrectStreak <= 0 {
			continue
		}
		key := e.Word.Level.Upper()
		if st, ok := levelStats[key]; ok {
			st.Learned++
			levelStats[key] = st
		}
	}

	if entries == nil {
		entries = []domain.ProgressEntry{}
	}
	if attempts == nil {
		attempts = []domain.Attempt{}
	}

	return &domain.ProgressStats{
		Progress:       entries,
		RecentAttempts: attempts,
		LevelStats:     levelStats,
	}, nil
}
