// Package cache keeps generated translation lists so repeated answers skip the LLM.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// TranslationCache stores the accepted-translation list per word
type TranslationCache interface {
	Get(ctx context.Context, word string) (string, bool, error)
	Set(ctx context.Context, word, translations string) error
}

const keyPrefix = "oxvocab:translations:"

func key(word string) string {
	return keyPrefix + strings.ToLower(strings.TrimSpace(word))
}

// NewRedisClient connects to redis and checks the connection
func NewRedisClient(ctx context.Context, addr string) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// RedisCache is a TranslationCache backed by redis string keys with a TTL
type RedisCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewRedisCache creates a new redis translation cache
func NewRedisCache(rdb *goredis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached translations and whether they were present
func (c *RedisCache) Get(ctx context.Context, word string) (string, bool, error) {
	val, err := c.rdb.Get(ctx, key(word)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return val, true, nil
}

// Set stores translations for word
func (c *RedisCache) Set(ctx context.Context, word, translations string) error {
	if err := c.rdb.Set(ctx, key(word), translations, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Noop is used when no redis address is configured
type Noop struct{}

// Get always misses
func (Noop) Get(context.Context, string) (string, bool, error) { return "", false, nil }

// Set discards the value
func (Noop) Set(context.Context, string, string) error { return nil }
