package handler

import (
	"github.com/gin-gonic/gin"
)

type assistRequest struct {
	Action   string `json:"action"`
	Word     string `json:"word"`
	Sentence string `json:"sentence"`
}

func (h *Handler) assist(c *gin.Context) {
	var req assistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	res, err := h.svc.Assist.Run(c.Request.Context(), req.Action, req.Word, req.Sentence)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, gin.H{res.Field: res.Text})
}
