package handler

import (
	"oxvocab/internal/middleware"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateScoreRequest struct {
	ScoreIncrement *int `json:"scoreIncrement"`
}

func (h *Handler) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	session, err := h.svc.Auth.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, gin.H{"token": session.Token, "user": session.User, "message": "Account created successfully"})
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	session, err := h.svc.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, gin.H{"token": session.Token, "user": session.User, "message": "Login successful"})
}

func (h *Handler) updateScore(c *gin.Context) {
	var req updateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ScoreIncrement == nil {
		badRequest(c, "scoreIncrement is required")
		return
	}

	user, err := h.svc.Auth.IncrementScore(c.Request.Context(), middleware.UserID(c), *req.ScoreIncrement)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, gin.H{"user": user, "message": "Score updated successfully"})
}
