package learning

import (
	"sort"

	"oxvocab/internal/domain"
)

// Sample picks up to n distinct words, each drawn with probability proportional
// to its current weight. Words with a non-positive weight never enter the
// weighted draw; if the draw yields fewer than n words the remaining slots are
// filled uniformly from the words not yet picked.
func Sample(rng Rand, candidates []domain.WeightedWord, n int) []domain.WeightedWord {
	if n <= 0 || len(candidates) == 0 {
		return nil
	}

	// Collapse duplicate ids, first occurrence wins
	seen := make(map[int64]bool, len(candidates))
	pool := make([]domain.WeightedWord, 0, len(candidates))
	for _, c := range candidates {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		pool = append(pool, c)
	}

	selected := make([]domain.WeightedWord, 0, min(n, len(pool)))
	used := make(map[int64]bool, cap(selected))

	weighted := make([]domain.WeightedWord, 0, len(pool))
	for _, c := range pool {
		if c.CurrentWeight > 0 {
			weighted = append(weighted, c)
		}
	}

	for len(selected) < n && len(weighted) > 0 {
		idx := drawIndex(rng, weighted)
		pick := weighted[idx]
		selected = append(selected, pick)
		used[pick.ID] = true
		weighted = append(weighted[:idx], weighted[idx+1:]...)
	}

	if len(selected) < n {
		var rest []domain.WeightedWord
		for _, c := range pool {
			if !used[c.ID] {
				rest = append(rest, c)
			}
		}
		Shuffle(rng, rest)
		selected = append(selected, rest[:min(n-len(selected), len(rest))]...)
	}

	return selected
}

// drawIndex draws one index from items using cumulative weights and a binary search.
// All weights must be positive.
func drawIndex(rng Rand, items []domain.WeightedWord) int {
	cumulative := make([]int, len(items))
	total := 0
	for i, it := range items {
		total += it.CurrentWeight
		cumulative[i] = total
	}

	ticket := rng.IntN(total)
	return sort.Search(len(cumulative), func(i int) bool {
		return cumulative[i] > ticket
	})
}
