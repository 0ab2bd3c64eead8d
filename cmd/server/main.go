package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oxvocab/internal/auth"
	"oxvocab/internal/cache"
	"oxvocab/internal/config"
	"oxvocab/internal/handler"
	"oxvocab/internal/learning"
	"oxvocab/internal/llm"
	"oxvocab/internal/repository/postgres"
	"oxvocab/internal/service"
	"oxvocab/internal/telegram"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	tele "gopkg.in/telebot.v3"
)

const (
	tokenIssuer     = "oxvocab"
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting oxvocab")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database with retries
	db, err := postgres.Connect(ctx, cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	if err := postgres.Migrate(db, cfg.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	wordRepo := postgres.NewWordRepo(db)
	progressRepo := postgres.NewProgressRepo(db)
	attemptRepo := postgres.NewAttemptRepo(db)

	translations := newTranslationCache(ctx, cfg.Redis, logger)

	if cfg.LLM.APIKey == "" {
		logger.Warn("GROQ_API_KEY is not set, assist features will return fallback text")
	}

	// Initialize services
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, tokenIssuer, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens, bcrypt.DefaultCost, logger)
	wordService := service.NewWordService(wordRepo, progressRepo, learning.DefaultRand, logger)
	progressService := service.NewProgressService(progressRepo, logger)
	assistService := service.NewAssistService(llm.NewClient(cfg.LLM.APIKey, cfg.LLM.URL, cfg.LLM.Model), translations, logger)
	answerService := service.NewAnswerService(wordRepo, userRepo, progressService, assistService, logger)

	h := handler.NewHandler(handler.Services{
		Auth:     authService,
		Words:    wordService,
		Answers:  answerService,
		Progress: progressService,
		Stats:    service.NewStatsService(wordRepo, progressRepo, attemptRepo, logger),
		Assist:   assistService,
		Account:  service.NewAccountService(userRepo, progressRepo, attemptRepo, logger),
	}, logger)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.NewRouter(h, tokens, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Initialize Telegram bot
	var bot *tele.Bot
	if cfg.Telegram.Token != "" {
		bot, err = tele.NewBot(tele.Settings{
			Token:  cfg.Telegram.Token,
			Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		})
		if err != nil {
			logger.Fatal("Failed to create bot", zap.Error(err))
		}

		telegram.NewHandler(bot, authService, wordService, answerService, assistService, logger).RegisterHandlers()

		go func() {
			logger.Info("Bot started successfully")
			bot.Start()
		}()
	} else {
		logger.Info("TELEGRAM_BOT_TOKEN is not set, bot disabled")
	}

	<-ctx.Done()

	logger.Info("Shutdown signal received, stopping...")

	if bot != nil {
		bot.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}

	logger.Info("Stopped gracefully")
}

// newTranslationCache connects to Redis when configured. A failed
// connection disables caching instead of stopping the server.
func newTranslationCache(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) cache.TranslationCache {
	if cfg.Addr == "" {
		logger.Info("REDIS_ADDR is not set, translation cache disabled")
		return cache.Noop{}
	}

	rdb, err := cache.NewRedisClient(ctx, cfg.Addr)
	if err != nil {
		logger.Warn("Failed to connect to Redis, translation cache disabled", zap.Error(err))
		return cache.Noop{}
	}

	logger.Info("Translation cache enabled", zap.String("addr", cfg.Addr))
	return cache.NewRedisCache(rdb, cfg.CacheTTL)
}
