// Package telegram runs the quiz loop as a Telegram bot for existing accounts.
package telegram

import (
	"context"
	"sync"
	"time"

	"oxvocab/internal/domain"
	"oxvocab/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const requestTimeout = 30 * time.Second

// Handler manages all bot interactions
type Handler struct {
	bot     *tele.Bot
	auth    *service.AuthService
	words   *service.WordService
	answers *service.AnswerService
	assist  *service.AssistService
	logger  *zap.Logger

	// Chat states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// Serializes processing per chat
	chatLocks map[int64]*sync.Mutex
	lockMux   sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	auth *service.AuthService,
	words *service.WordService,
	answers *service.AnswerService,
	assist *service.AssistService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:       bot,
		auth:      auth,
		words:     words,
		answers:   answers,
		assist:    assist,
		logger:    logger,
		states:    make(map[int64]*domain.StateData),
		chatLocks: make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/logout", h.handleLogout)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnNextWord, h.handleNextWord, h.requireLogin)
	h.bot.Handle(&btnPractice, h.handlePractice, h.requireLogin)
	h.bot.Handle(&btnScore, h.handleScore, h.requireLogin)
	h.bot.Handle(&btnSkip, h.handleSkip, h.requireLogin)
	h.bot.Handle(&btnMainMenu, h.handleSkip, h.requireLogin)

	// Generic callback handler for buttons whose Unique did not come through
	h.bot.Handle(tele.OnCallback, h.handleCallback, h.requireLogin)
}

// GetState returns the chat's current state
func (h *Handler) GetState(chatID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[chatID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets the chat's state
func (h *Handler) SetState(chatID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[chatID] = state
}

// ResetState returns the chat to idle while keeping the logged-in account
func (h *Handler) ResetState(chatID int64) {
	h.SetState(chatID, &domain.StateData{State: domain.StateIdle, UserID: h.GetState(chatID).UserID})
}

// Logout forgets the chat's account
func (h *Handler) Logout(chatID int64) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	delete(h.states, chatID)
}

func (h *Handler) lockChat(chatID int64) func() {
	h.lockMux.Lock()
	lock, exists := h.chatLocks[chatID]
	if !exists {
		lock = &sync.Mutex{}
		h.chatLocks[chatID] = lock
	}
	h.lockMux.Unlock()

	lock.Lock()
	return lock.Unlock
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// Inline keyboard buttons
var (
	btnNextWord = tele.Btn{
		Unique: "next_word",
		Text:   "➡️ Next word",
	}
	btnPractice = tele.Btn{
		Unique: "practice",
		Text:   "🎯 Practice",
	}
	btnScore = tele.Btn{
		Unique: "score",
		Text:   "🏆 My score",
	}
	btnSkip = tele.Btn{
		Unique: "skip",
		Text:   "⏭ Skip",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnNextWord),
		menu.Row(btnPractice),
		menu.Row(btnScore),
	)
	return menu
}

// questionMarkup is shown while the bot waits for a translation
func questionMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnSkip))
	return menu
}

// afterAnswerMarkup offers the next question of the same kind
func afterAnswerMarkup(practice bool) *tele.ReplyMarkup {
	next := btnNextWord
	if practice {
		next = btnPractice
	}
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(next),
		menu.Row(btnMainMenu),
	)
	return menu
}
