// Package handler exposes the JSON HTTP API.
package handler

import (
	"net/http"

	"oxvocab/internal/middleware"
	"oxvocab/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Services groups what the handlers call into
type Services struct {
	Auth     *service.AuthService
	Words    *service.WordService
	Answers  *service.AnswerService
	Progress *service.ProgressService
	Stats    *service.StatsService
	Assist   *service.AssistService
	Account  *service.AccountService
}

// Handler serves the HTTP API
type Handler struct {
	svc    Services
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(svc Services, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// NewRouter wires middleware and routes
func NewRouter(h *Handler, tokens middleware.TokenValidator, corsOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(h.logger),
		cors.New(cors.Config{
			AllowOrigins:     corsOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Authorization", "Content-Type", middleware.HeaderRequestID},
			ExposeHeaders:    []string{middleware.HeaderRequestID},
			AllowCredentials: true,
		}),
	)

	router.GET("/healthcheck", healthCheck)

	api := router.Group("/api")
	api.POST("/auth/register", h.register)
	api.POST("/auth/login", h.login)
	api.GET("/words", h.randomWords)
	api.POST("/assist", h.assist)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(tokens, h.logger))
	protected.POST("/auth/update-score", h.updateScore)
	protected.GET("/words/weighted", h.weightedWords)
	protected.GET("/words/practice", h.practiceWords)
	protected.POST("/answers", h.submitAnswer)
	protected.POST("/word-progress", h.recordProgress)
	protected.GET("/word-progress", h.progressStats)
	protected.DELETE("/user/data", h.deleteData)
	protected.DELETE("/user", h.deleteAccount)

	return router
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
