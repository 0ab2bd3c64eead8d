package domain

import (
	"fmt"
	"strings"
	"time"
)

// Level is a CEFR difficulty tier attached to every catalog word
type Level string

const (
	LevelA1 Level = "a1"
	LevelA2 Level = "a2"
	LevelB1 Level = "b1"
	LevelB2 Level = "b2"
	LevelC1 Level = "c1"
)

// Levels lists all tiers in ascending difficulty
var Levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1}

// ParseLevel accepts "A1", "a1", " b2 " and so on
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Levels {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: unknown level %q", ErrValidation, s)
}

// ParseLevels parses a level filter. "all" or an empty list means no filter.
func ParseLevels(raw []string) ([]Level, error) {
	var levels []Level
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if strings.EqualFold(part, "all") {
				return nil, nil
			}
			l, err := ParseLevel(part)
			if err != nil {
				return nil, err
			}
			levels = append(levels, l)
		}
	}
	return levels, nil
}

// Upper returns the display form, e.g. "B1"
func (l Level) Upper() string {
	return strings.ToUpper(string(l))
}

// Word is an immutable catalog entry
type Word struct {
	ID        int64     `json:"id"`
	Word      string    `json:"word"`
	WordClass string    `json:"word_class"`
	Level     Level     `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// WeightedWord is a catalog word with the user's current weight attached.
// Reviewed is false when the user has no progress row for the word yet.
type WeightedWord struct {
	Word
	CurrentWeight int  `json:"current_weight"`
	CorrectStreak int  `json:"correct_streak"`
	Reviewed      bool `json:"reviewed"`
}
