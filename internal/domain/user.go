package domain

import "time"

// User is an account with its cumulative score
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	TotalScore   int       `json:"total_score"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ChatState represents a Telegram chat's current interaction state
type ChatState string

const (
	StateIdle          ChatState = "idle"
	StateWaitingLogin  ChatState = "waiting_login"
	StateWaitingAnswer ChatState = "waiting_answer"
)

// StateData holds temporary data for a chat's current state
type StateData struct {
	State    ChatState
	UserID   int64
	Word     *WeightedWord
	Practice bool
}
