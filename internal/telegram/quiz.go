package telegram

import (
	"errors"
	"fmt"
	"strings"

	"oxvocab/internal/domain"
	"oxvocab/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleNextWord shows the next weighted word
func (h *Handler) handleNextWord(c tele.Context) error {
	return h.showWord(c, false)
}

// handlePractice shows a word from the practice pool
func (h *Handler) handlePractice(c tele.Context) error {
	return h.showWord(c, true)
}

func (h *Handler) showWord(c tele.Context, practice bool) error {
	chatID := c.Sender().ID
	unlock := h.lockChat(chatID)
	defer unlock()

	_ = c.Respond()

	state := h.GetState(chatID)

	ctx, cancel := requestContext()
	defer cancel()

	var words []domain.WeightedWord
	if practice {
		selection, err := h.words.Practice(ctx, state.UserID, 1, nil)
		if err != nil {
			h.logger.Error("Failed to select practice word", zap.Int64("user_id", state.UserID), zap.Error(err))
			return h.editOrSend(c, "An error occurred. Please try again later.", mainMenuMarkup())
		}
		if len(selection.Words) == 0 {
			return h.editOrSend(c, "🎉 Nothing to practice right now. Keep going with new words!", mainMenuMarkup())
		}
		words = selection.Words
	} else {
		batch, err := h.words.Weighted(ctx, state.UserID, 1, nil)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return h.editOrSend(c, "The word list is empty.", mainMenuMarkup())
			}
			h.logger.Error("Failed to select word", zap.Int64("user_id", state.UserID), zap.Error(err))
			return h.editOrSend(c, "An error occurred. Please try again later.", mainMenuMarkup())
		}
		if len(batch.Words) == 0 {
			return h.editOrSend(c, "The word list is empty.", mainMenuMarkup())
		}
		words = batch.Words
	}

	word := words[0]
	h.SetState(chatID, &domain.StateData{
		State:    domain.StateWaitingAnswer,
		UserID:   state.UserID,
		Word:     &word,
		Practice: practice,
	})

	return h.editOrSend(c, formatQuestion(word, practice, h.assist.Sentence(ctx, word.Word.Word)), questionMarkup())
}

// handleAnswer evaluates the translation typed for the pending word
func (h *Handler) handleAnswer(c tele.Context, state *domain.StateData) error {
	chatID := c.Sender().ID

	ctx, cancel := requestContext()
	defer cancel()

	res, err := h.answers.Submit(ctx, state.UserID, service.Answer{
		WordID:   state.Word.ID,
		Word:     state.Word.Word.Word,
		Text:     c.Text(),
		Practice: state.Practice,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUpstream) {
			return c.Send("⚠️ Translations are unavailable right now. Try again in a moment.", questionMarkup())
		}
		h.logger.Error("Failed to submit answer",
			zap.Int64("user_id", state.UserID),
			zap.Int64("word_id", state.Word.ID),
			zap.Error(err),
		)
		return c.Send("An error occurred. Please try again later.")
	}

	h.SetState(chatID, &domain.StateData{State: domain.StateIdle, UserID: state.UserID})

	definition := h.assist.Definition(ctx, state.Word.Word.Word)
	return c.Send(formatResult(state.Word.Word.Word, res, definition), afterAnswerMarkup(state.Practice))
}

// handleSkip drops the pending word and returns to the main menu
func (h *Handler) handleSkip(c tele.Context) error {
	_ = c.Respond()
	h.ResetState(c.Sender().ID)
	return h.editOrSend(c, mainMenuText, mainMenuMarkup())
}

// handleScore shows the account's total score
func (h *Handler) handleScore(c tele.Context) error {
	_ = c.Respond()

	state := h.GetState(c.Sender().ID)

	ctx, cancel := requestContext()
	defer cancel()

	user, err := h.auth.User(ctx, state.UserID)
	if err != nil {
		h.logger.Error("Failed to load user", zap.Int64("user_id", state.UserID), zap.Error(err))
		return h.editOrSend(c, "An error occurred. Please try again later.", mainMenuMarkup())
	}

	return h.editOrSend(c, fmt.Sprintf("🏆 %s, your score is %d", user.Username, user.TotalScore), mainMenuMarkup())
}

func formatQuestion(word domain.WeightedWord, practice bool, sentence string) string {
	var b strings.Builder
	if practice {
		b.WriteString("🎯 Practice\n\n")
	}
	fmt.Fprintf(&b, "📖 %s (%s, %s)\n", word.Word.Word, word.WordClass, word.Level.Upper())
	if sentence != "" {
		fmt.Fprintf(&b, "\n%s\n", sentence)
	}
	b.WriteString("\nType the Indonesian translation:")
	return b.String()
}

func formatResult(word string, res *service.AnswerResult, definition string) string {
	var b strings.Builder
	if res.Correct {
		b.WriteString("✅ Correct!\n\n")
	} else {
		b.WriteString("❌ Wrong.\n\n")
	}
	fmt.Fprintf(&b, "%s: %s\n", word, strings.Join(res.Accepted, ", "))
	if definition != "" {
		fmt.Fprintf(&b, "\n%s\n", definition)
	}
	fmt.Fprintf(&b, "\nWeight: %d, streak: %d", res.Weight, res.CorrectStreak)
	if res.Mastered {
		b.WriteString(" ⭐")
	}
	if res.User != nil {
		fmt.Fprintf(&b, "\nScore: %d", res.User.TotalScore)
	}
	return b.String()
}
