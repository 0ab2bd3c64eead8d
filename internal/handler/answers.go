package handler

import (
	"oxvocab/internal/middleware"
	"oxvocab/internal/service"

	"github.com/gin-gonic/gin"
)

type answerRequest struct {
	WordID   int64  `json:"word_id"`
	Word     string `json:"word"`
	Answer   string `json:"answer"`
	Accepted string `json:"accepted"`
	Practice bool   `json:"practice"`
}

type progressRequest struct {
	WordID    int64 `json:"word_id"`
	IsCorrect *bool `json:"is_correct"`
}

func (h *Handler) submitAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	res, err := h.svc.Answers.Submit(c.Request.Context(), middleware.UserID(c), service.Answer{
		WordID:   req.WordID,
		Word:     req.Word,
		Text:     req.Answer,
		Accepted: req.Accepted,
		Practice: req.Practice,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"verdict":        res.Verdict,
		"correct":        res.Correct,
		"accepted":       res.Accepted,
		"weight":         res.Weight,
		"correct_streak": res.CorrectStreak,
		"mastered":       res.Mastered,
		"user":           res.User,
	})
}

func (h *Handler) recordProgress(c *gin.Context) {
	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.WordID <= 0 || req.IsCorrect == nil {
		badRequest(c, "missing required fields: word_id, is_correct")
		return
	}

	p, err := h.svc.Progress.Record(c.Request.Context(), middleware.UserID(c), req.WordID, *req.IsCorrect)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, gin.H{"weight": p.Weight, "correct_streak": p.CorrectStreak})
}

func (h *Handler) progressStats(c *gin.Context) {
	stats, err := h.svc.Stats.Stats(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"progress_stats":  stats.Progress,
		"recent_attempts": stats.RecentAttempts,
		"level_stats":     stats.LevelStats,
	})
}
