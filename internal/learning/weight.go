package learning

import "oxvocab/internal/domain"

const (
	MinWeight     = 1
	MaxWeight     = 50
	DefaultWeight = 10

	// Thresholds for practice mode
	HighPriorityWeight = 15
	PracticeWeight     = 10

	firstCorrectWeight = 8
	firstWrongWeight   = 15
	correctStep        = 2
	wrongStep          = 5
)

// Band classifies a weight for practice filtering
type Band string

const (
	BandNeedsPractice Band = "needs_practice"
	BandMedium        Band = "medium"
	BandMastered      Band = "mastered"
)

// Next computes the weight and streak after an attempt.
// prev is nil when the user has never attempted the word.
func Next(prev *domain.Progress, correct bool) (weight, streak int) {
	if prev == nil {
		if correct {
			return firstCorrectWeight, 1
		}
		return firstWrongWeight, 0
	}

	if correct {
		return clampWeight(prev.Weight - correctStep), prev.CorrectStreak + 1
	}
	return clampWeight(prev.Weight + wrongStep), 0
}

// Classify returns the practice band of a weight
func Classify(weight int) Band {
	switch {
	case weight >= HighPriorityWeight:
		return BandNeedsPractice
	case weight >= PracticeWeight:
		return BandMedium
	default:
		return BandMastered
	}
}

func clampWeight(w int) int {
	return min(MaxWeight, max(MinWeight, w))
}
