package learning

import (
	"sort"

	"oxvocab/internal/domain"
)

// PracticeSelection is the outcome of SelectPractice
type PracticeSelection struct {
	Words             []domain.WeightedWord
	HighPriorityCount int
}

// SelectPractice picks up to n words that still need practice. Words at or
// above HighPriorityWeight are used first, heaviest first, then medium words
// (PracticeWeight up to HighPriorityWeight). Words below PracticeWeight are
// never returned. An empty levels filter admits every level. The result is
// shuffled.
func SelectPractice(rng Rand, entries []domain.ProgressEntry, n int, levels []domain.Level) PracticeSelection {
	if n <= 0 {
		return PracticeSelection{}
	}

	allowed := make(map[domain.Level]bool, len(levels))
	for _, l := range levels {
		allowed[l] = true
	}

	var high, medium []domain.WeightedWord
	for _, e := range entries {
		if len(allowed) > 0 && !allowed[e.Word.Level] {
			continue
		}
		w := domain.WeightedWord{
			Word:          e.Word,
			CurrentWeight: e.Weight,
			CorrectStreak: e.CorrectStreak,
		}
		switch Classify(e.Weight) {
		case BandNeedsPractice:
			high = append(high, w)
		case BandMedium:
			medium = append(medium, w)
		}
	}

	byWeightDesc := func(s []domain.WeightedWord) {
		sort.SliceStable(s, func(i, j int) bool {
			return s[i].CurrentWeight > s[j].CurrentWeight
		})
	}
	byWeightDesc(high)
	byWeightDesc(medium)

	high = high[:min(n, len(high))]
	words := append([]domain.WeightedWord{}, high...)
	if len(words) < n {
		words = append(words, medium[:min(n-len(words), len(medium))]...)
	}

	Shuffle(rng, words)

	return PracticeSelection{
		Words:             words,
		HighPriorityCount: len(high),
	}
}
