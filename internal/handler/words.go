package handler

import (
	"strconv"

	"oxvocab/internal/domain"
	"oxvocab/internal/middleware"

	"github.com/gin-gonic/gin"
)

// wordQuery reads ?count= and ?levels= (repeated or comma separated)
func wordQuery(c *gin.Context) (int, []domain.Level, bool) {
	count := 0
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(c, "count must be a non-negative integer")
			return 0, nil, false
		}
		count = n
	}

	levels, err := domain.ParseLevels(c.QueryArray("levels"))
	if err != nil {
		badRequest(c, err.Error())
		return 0, nil, false
	}
	return count, levels, true
}

func (h *Handler) randomWords(c *gin.Context) {
	count, levels, ok := wordQuery(c)
	if !ok {
		return
	}

	batch, err := h.svc.Words.Random(c.Request.Context(), count, levels)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, gin.H{"words": batch.Words, "total": batch.Total})
}

func (h *Handler) weightedWords(c *gin.Context) {
	count, levels, ok := wordQuery(c)
	if !ok {
		return
	}

	batch, err := h.svc.Words.Weighted(c.Request.Context(), middleware.UserID(c), count, levels)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, gin.H{"words": batch.Words, "total": batch.Total})
}

func (h *Handler) practiceWords(c *gin.Context) {
	count, levels, ok := wordQuery(c)
	if !ok {
		return
	}

	sel, err := h.svc.Words.Practice(c.Request.Context(), middleware.UserID(c), count, levels)
	if err != nil {
		h.respondError(c, err)
		return
	}

	words := sel.Words
	if words == nil {
		words = []domain.WeightedWord{}
	}
	payload := gin.H{
		"words":               words,
		"total_found":         len(words),
		"high_priority_count": sel.HighPriorityCount,
		"practice_type":       "difficult_words",
	}
	if len(words) == 0 {
		payload["practice_type"] = "no_practice_needed"
		payload["message"] = "You haven't any mistakes"
	}
	respondOK(c, payload)
}
