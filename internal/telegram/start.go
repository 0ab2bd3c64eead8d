package telegram

import (
	"errors"
	"fmt"
	"strings"

	"oxvocab/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const mainMenuText = "🏠 Main menu\n\nChoose an action:"

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	chatID := c.Sender().ID

	h.logger.Info("Chat started bot",
		zap.Int64("chat_id", chatID),
		zap.String("username", c.Sender().Username),
	)

	if h.GetState(chatID).UserID == 0 {
		h.SetState(chatID, &domain.StateData{State: domain.StateWaitingLogin})
		return c.Send(loginPrompt)
	}

	h.ResetState(chatID)
	return c.Send(mainMenuText, mainMenuMarkup())
}

// handleLogout handles /logout command
func (h *Handler) handleLogout(c tele.Context) error {
	h.Logout(c.Sender().ID)
	return c.Send("👋 Logged out. Send /start to log in again.")
}

// handleLogin checks "username password" against the account store
func (h *Handler) handleLogin(c tele.Context) error {
	chatID := c.Sender().ID

	fields := strings.Fields(c.Text())
	if len(fields) != 2 {
		return c.Send(loginPrompt)
	}

	// The message carries a password
	if err := c.Delete(); err != nil {
		h.logger.Debug("Failed to delete login message", zap.Error(err))
	}

	ctx, cancel := requestContext()
	defer cancel()

	user, err := h.auth.Verify(ctx, fields[0], fields[1])
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrValidation) {
			return c.Send("❌ Wrong username or password. Try again:")
		}
		h.logger.Error("Failed to verify credentials", zap.Int64("chat_id", chatID), zap.Error(err))
		return c.Send("An error occurred. Please try again later.")
	}

	h.SetState(chatID, &domain.StateData{State: domain.StateIdle, UserID: user.ID})

	h.logger.Info("Chat logged in",
		zap.Int64("chat_id", chatID),
		zap.Int64("user_id", user.ID),
	)

	return c.Send(fmt.Sprintf("✅ Welcome, %s!\n\n%s", user.Username, mainMenuText), mainMenuMarkup())
}

// handleText routes plain messages by chat state
func (h *Handler) handleText(c tele.Context) error {
	unlock := h.lockChat(c.Sender().ID)
	defer unlock()

	state := h.GetState(c.Sender().ID)

	switch {
	case state.UserID == 0:
		return h.handleLogin(c)
	case state.State == domain.StateWaitingAnswer:
		return h.handleAnswer(c, state)
	default:
		return c.Send(mainMenuText, mainMenuMarkup())
	}
}
