package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	HTTPAddr       string
	CORSOrigins    []string
	MigrationsPath string
	Database       DatabaseConfig
	Auth           AuthConfig
	LLM            LLMConfig
	Redis          RedisConfig
	Telegram       TelegramConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// AuthConfig holds session token settings
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// LLMConfig holds the text-generation endpoint settings.
// An empty APIKey leaves the assist features on their fallback strings.
type LLMConfig struct {
	APIKey string
	Model  string
	URL    string
}

// RedisConfig holds translation cache settings. Empty Addr disables the cache.
type RedisConfig struct {
	Addr     string
	CacheTTL time.Duration
}

// TelegramConfig holds bot settings. Empty Token disables the bot.
type TelegramConfig struct {
	Token string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	tokenTTL, err := getDuration("TOKEN_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getDuration("TRANSLATION_CACHE_TTL", 7*24*time.Hour)
	if err != nil {
		return nil, err
	}

	db, err := LoadDatabase()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
		Database:       db,
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
			TokenTTL:  tokenTTL,
		},
		LLM: LLMConfig{
			APIKey: os.Getenv("GROQ_API_KEY"),
			Model:  getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
			URL:    getEnv("GROQ_URL", "https://api.groq.com/openai/v1/chat/completions"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			CacheTTL: cacheTTL,
		},
		Telegram: TelegramConfig{
			Token: os.Getenv("TELEGRAM_BOT_TOKEN"),
		},
	}

	// Validate required fields
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive")
	}

	return cfg, nil
}

// LoadDatabase reads only the database settings, for tools that need
// nothing else
func LoadDatabase() (DatabaseConfig, error) {
	_ = godotenv.Load()

	db := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		Name:     getEnv("DB_NAME", "oxvocab"),
		User:     getEnv("DB_USER", "oxvocab"),
		Password: os.Getenv("DB_PASSWORD"),
	}
	if db.Password == "" {
		return DatabaseConfig{}, fmt.Errorf("DB_PASSWORD is required")
	}
	return db, nil
}

// DSN returns PostgreSQL connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Name,
	)
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return c.Database.DSN()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
