package handler

import (
	"oxvocab/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) deleteData(c *gin.Context) {
	if err := h.svc.Account.DeleteData(c.Request.Context(), middleware.UserID(c)); err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "All learning data deleted"})
}

func (h *Handler) deleteAccount(c *gin.Context) {
	if err := h.svc.Account.DeleteAccount(c.Request.Context(), middleware.UserID(c)); err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Account deleted"})
}
