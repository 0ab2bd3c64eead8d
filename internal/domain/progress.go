package domain

import "time"

// Progress is the per-user, per-word learning state
type Progress struct {
	UserID         int64     `json:"user_id"`
	WordID         int64     `json:"word_id"`
	Weight         int       `json:"weight"`
	CorrectStreak  int       `json:"correct_streak"`
	LastReviewedAt time.Time `json:"last_reviewed_at"`
}

// ProgressEntry is a progress row joined with its catalog word
type ProgressEntry struct {
	Progress
	Word Word `json:"word"`
}

// Attempt is an append-only log entry
type Attempt struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	WordID      int64     `json:"word_id"`
	AttemptedAt time.Time `json:"attempted_at"`
	Word        *Word     `json:"word,omitempty"`
}

// LevelStat counts learned and total words within one level
type LevelStat struct {
	Learned int `json:"learned"`
	Total   int `json:"total"`
}

// ProgressStats is the dashboard view of a user's progress
type ProgressStats struct {
	Progress       []ProgressEntry      `json:"progress_stats"`
	RecentAttempts []Attempt            `json:"recent_attempts"`
	LevelStats     map[string]LevelStat `json:"level_stats"`
}
