package telegram

import (
	"oxvocab/internal/domain"

	tele "gopkg.in/telebot.v3"
)

const loginPrompt = "👋 Send your username and password separated by a space to log in.\n\nExample: budi secret123"

// requireLogin stops button presses from chats that have not logged in yet
func (h *Handler) requireLogin(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		chatID := c.Sender().ID
		if h.GetState(chatID).UserID == 0 {
			h.SetState(chatID, &domain.StateData{State: domain.StateWaitingLogin})
			if c.Callback() != nil {
				_ = c.Respond()
			}
			return c.Send(loginPrompt)
		}
		return next(c)
	}
}
