package learning

import (
	"math/rand/v2"
	"testing"

	"oxvocab/internal/domain"

	"github.com/stretchr/testify/assert"
)

func entry(id int64, weight int, level domain.Level) domain.ProgressEntry {
	return domain.ProgressEntry{
		Progress: domain.Progress{UserID: 1, WordID: id, Weight: weight, CorrectStreak: 0},
		Word:     domain.Word{ID: id, Word: "w", Level: level},
	}
}

func ids(words []domain.WeightedWord) []int64 {
	out := make([]int64, 0, len(words))
	for _, w := range words {
		out = append(out, w.ID)
	}
	return out
}

func TestSelectPractice(t *testing.T) {
	entries := []domain.ProgressEntry{
		entry(1, 50, domain.LevelA1),
		entry(2, 15, domain.LevelB1),
		entry(3, 14, domain.LevelA1),
		entry(4, 10, domain.LevelB2),
		entry(5, 9, domain.LevelA1),
		entry(6, 1, domain.LevelC1),
		entry(7, 20, domain.LevelC1),
	}

	tests := []struct {
		name         string
		n            int
		levels       []domain.Level
		expectedIDs  []int64
		expectedHigh int
	}{
		{
			name:         "high priority first",
			n:            2,
			expectedIDs:  []int64{1, 7},
			expectedHigh: 2,
		},
		{
			name:         "medium fills remaining slots heaviest first",
			n:            4,
			expectedIDs:  []int64{1, 7, 2, 3},
			expectedHigh: 3,
		},
		{
			name:         "mastered words never returned",
			n:            20,
			expectedIDs:  []int64{1, 7, 2, 3, 4},
			expectedHigh: 3,
		},
		{
			name:         "level filter",
			n:            20,
			levels:       []domain.Level{domain.LevelA1},
			expectedIDs:  []int64{1, 3},
			expectedHigh: 1,
		},
		{
			name:         "zero count",
			n:            0,
			expectedIDs:  []int64{},
			expectedHigh: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(1, 1))
			got := SelectPractice(rng, entries, tt.n, tt.levels)

			assert.ElementsMatch(t, tt.expectedIDs, ids(got.Words))
			assert.Equal(t, tt.expectedHigh, got.HighPriorityCount)
			for _, w := range got.Words {
				assert.GreaterOrEqual(t, w.CurrentWeight, PracticeWeight)
			}
		})
	}
}

func TestSelectPractice_NoPracticeNeeded(t *testing.T) {
	entries := []domain.ProgressEntry{
		entry(1, 8, domain.LevelA1),
		entry(2, 1, domain.LevelA2),
	}

	got := SelectPractice(DefaultRand, entries, 20, nil)

	assert.Empty(t, got.Words)
	assert.Equal(t, 0, got.HighPriorityCount)
}
