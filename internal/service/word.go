package service

import (
	"context"
	"fmt"

	"oxvocab/internal/domain"
	"oxvocab/internal/learning"
	"oxvocab/internal/repository"

	"go.uber.org/zap"
)

const (
	// catalogPageSize bounds how many catalog rows are read per query
	catalogPageSize = 1000

	DefaultWordCount     = 1
	DefaultPracticeCount = 20
	MaxWordCount         = 100
)

// WordBatch is a selection of words plus the size of the pool it came from
type WordBatch struct {
	Words []domain.WeightedWord
	Total int
}

// WordService picks words to quiz on
type WordService struct {
	wordRepo     repository.WordRepository
	progressRepo repository.ProgressRepository
	rng          learning.Rand
	logger       *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(
	wordRepo repository.WordRepository,
	progressRepo repository.ProgressRepository,
	rng learning.Rand,
	logger *zap.Logger,
) *WordService {
	return &WordService{
		wordRepo:     wordRepo,
		progressRepo: progressRepo,
		rng:          rng,
		logger:       logger,
	}
}

// Random returns uniformly random words for guests. The pool is the first
// catalogPageSize words of the filtered catalog.
func (s *WordService) Random(ctx context.Context, count int, levels []domain.Level) (*WordBatch, error) {
	count = clampCount(count, DefaultWordCount)

	total, err := s.wordRepo.CountWords(ctx, levels)
	if err != nil {
		return nil, fmt.Errorf("count words: %w", err)
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: no words found for selected levels", domain.ErrNotFound)
	}

	pool, err := s.wordRepo.FetchWords(ctx, levels, min(total, catalogPageSize), 0)
	if err != nil {
		return nil, fmt.Errorf("fetch words: %w", err)
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: no words found for selected levels", domain.ErrNotFound)
	}

	learning.Shuffle(s.rng, pool)
	pool = pool[:min(count, len(pool))]

	words := make([]domain.WeightedWord, len(pool))
	for i, w := range pool {
		words[i] = domain.WeightedWord{Word: w}
	}
	return &WordBatch{Words: words, Total: total}, nil
}

// Weighted draws words for a signed-in user, favouring heavier words.
// Words the user has never attempted count with the default weight.
func (s *WordService) Weighted(ctx context.Context, userID int64, count int, levels []domain.Level) (*WordBatch, error) {
	count = clampCount(count, DefaultWordCount)

	var candidates []domain.WeightedWord
	for offset := 0; ; offset += catalogPageSize {
		page, err := s.wordRepo.FetchWithWeights(ctx, userID, levels, catalogPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("fetch weighted words: %w", err)
		}
		candidates = append(candidates, page...)
		if len(page) < catalogPageSize {
			break
		}
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no words found for selected levels", domain.ErrNotFound)
	}

	for i := range candidates {
		if !candidates[i].Reviewed {
			candidates[i].CurrentWeight = learning.DefaultWeight
		}
	}

	words := learning.Sample(s.rng, candidates, count)

	s.logger.Debug("Weighted selection",
		zap.Int64("user_id", userID),
		zap.Int("candidates", len(candidates)),
		zap.Int("selected", len(words)),
	)

	return &WordBatch{Words: words, Total: len(candidates)}, nil
}

// Practice returns the words the user still struggles with
func (s *WordService) Practice(ctx context.Context, userID int64, count int, levels []domain.Level) (learning.PracticeSelection, error) {
	count = clampCount(count, DefaultPracticeCount)

	entries, err := s.progressRepo.ListAtLeast(ctx, userID, learning.PracticeWeight)
	if err != nil {
		return learning.PracticeSelection{}, fmt.Errorf("list practice words: %w", err)
	}

	sel := learning.SelectPractice(s.rng, entries, count, levels)

	s.logger.Debug("Practice selection",
		zap.Int64("user_id", userID),
		zap.Int("found", len(sel.Words)),
		zap.Int("high_priority", sel.HighPriorityCount),
	)

	return sel, nil
}

func clampCount(count, def int) int {
	if count <= 0 {
		return def
	}
	return min(count, MaxWordCount)
}
