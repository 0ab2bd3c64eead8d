package handler

import (
	"errors"
	"net/http"

	"oxvocab/internal/domain"
	"oxvocab/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondOK writes {"success": true, ...payload}
func respondOK(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// respondError maps domain errors onto status codes. Anything unrecognised is
// logged and reported as a generic 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	status, msg := http.StatusInternalServerError, "internal server error"

	switch {
	case errors.Is(err, domain.ErrValidation):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		status, msg = http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrAlreadyExists):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrUpstream):
		status, msg = http.StatusBadGateway, "text generation is unavailable"
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", middleware.RequestIDFrom(c)),
			zap.Error(err),
		)
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": msg})
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}
