package service

import (
	"context"
	"fmt"
	"strings"

	"oxvocab/internal/domain"
	"oxvocab/internal/learning"
	"oxvocab/internal/repository"

	"go.uber.org/zap"
)

// Answer is one submitted translation
type Answer struct {
	WordID int64
	// Word is the English word; looked up by WordID when empty
	Word string
	Text string
	// Accepted overrides the generated translation list when set
	Accepted string
	Practice bool
}

// AnswerResult is the outcome of a submitted answer
type AnswerResult struct {
	Verdict       learning.Verdict `json:"verdict"`
	Correct       bool             `json:"correct"`
	Accepted      []string         `json:"accepted"`
	Weight        int              `json:"weight"`
	CorrectStreak int              `json:"correct_streak"`
	Mastered      bool             `json:"mastered"`
	User          *domain.User     `json:"user"`
}

// AnswerService runs the quiz loop: evaluate, record, score
type AnswerService struct {
	wordRepo repository.WordRepository
	userRepo repository.UserRepository
	progress *ProgressService
	assist   *AssistService
	logger   *zap.Logger
}

// NewAnswerService creates a new answer service
func NewAnswerService(
	wordRepo repository.WordRepository,
	userRepo repository.UserRepository,
	progress *ProgressService,
	assist *AssistService,
	logger *zap.Logger,
) *AnswerService {
	return &AnswerService{
		wordRepo: wordRepo,
		userRepo: userRepo,
		progress: progress,
		assist:   assist,
		logger:   logger,
	}
}

// Submit evaluates an answer, records the attempt and, outside practice
// sessions, awards one point for a correct answer.
func (s *AnswerService) Submit(ctx context.Context, userID int64, a Answer) (*AnswerResult, error) {
	if a.WordID <= 0 {
		return nil, fmt.Errorf("%w: word_id is required", domain.ErrValidation)
	}

	accepted := strings.TrimSpace(a.Accepted)
	if accepted == "" {
		word := strings.TrimSpace(a.Word)
		if word == "" {
			w, err := s.wordRepo.GetByID(ctx, a.WordID)
			if err != nil {
				return nil, fmt.Errorf("get word: %w", err)
			}
			word = w.Word
		}

		var err error
		accepted, err = s.assist.Translations(ctx, word)
		if err != nil {
			return nil, err
		}
	}

	verdict := learning.Evaluate(a.Text, accepted)

	p, err := s.progress.Record(ctx, userID, a.WordID, verdict.IsCorrect())
	if err != nil {
		return nil, err
	}

	var user *domain.User
	if verdict.IsCorrect() && !a.Practice {
		user, err = s.userRepo.IncrementScore(ctx, userID, 1)
	} else {
		user, err = s.userRepo.GetByID(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	return &AnswerResult{
		Verdict:       verdict,
		Correct:       verdict.IsCorrect(),
		Accepted:      learning.SplitAccepted(accepted),
		Weight:        p.Weight,
		CorrectStreak: p.CorrectStreak,
		Mastered:      learning.Classify(p.Weight) == learning.BandMastered,
		User:          user,
	}, nil
}
