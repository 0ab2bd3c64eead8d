package telegram

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit(). A "message is not modified"
// error is swallowed; anything else is returned so the caller can send a new message.
func (h *Handler) handleEditError(err error, c tele.Context) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback",
			zap.Int64("chat_id", c.Sender().ID),
		)
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("chat_id", c.Sender().ID),
	)
	return err
}

// editOrSend edits the message behind a button press, or sends a new one
// for plain messages and failed edits
func (h *Handler) editOrSend(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := h.handleEditError(c.Edit(text, markup), c); err == nil {
			return nil
		}
	}
	return c.Send(text, markup)
}

// handleCallback handles callback queries that did not match a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	key := callback.Unique
	if key == "" {
		key = cleanCallbackData(callback.Data)
	}

	switch key {
	case btnNextWord.Unique:
		return h.handleNextWord(c)
	case btnPractice.Unique:
		return h.handlePractice(c)
	case btnScore.Unique:
		return h.handleScore(c)
	case btnSkip.Unique, btnMainMenu.Unique:
		return h.handleSkip(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", callback.Data),
		zap.String("unique", callback.Unique),
		zap.Int64("chat_id", c.Sender().ID),
	)
	return c.Respond()
}
