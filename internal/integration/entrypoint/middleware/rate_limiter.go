// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
	"github.com/finance-tracker/wallet/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute

	redisKeyPrefix = "ratelimit"
)

// attemptCounter counts hits for a key within a fixed window.
type attemptCounter interface {
	hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimiter provides IP-based rate limiting functionality.
type RateLimiter struct {
	counter        attemptCounter
	name           string
	maxAttempts    int
	windowDuration time.Duration
	disabled       bool
}

// NewRateLimiter creates an in-memory rate limiter with default settings.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates an in-memory rate limiter with custom settings.
func NewRateLimiterWithConfig(maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		counter:        newMemoryCounter(time.Now),
		name:           "default",
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// NewRedisRateLimiter creates a rate limiter whose windows live in Redis, so
// every API instance shares the same budget. name scopes the keys.
func NewRedisRateLimiter(client *redis.Client, name string, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		counter:        &redisCounter{client: client},
		name:           name,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Disable turns the limiter into a pass-through.
func (rl *RateLimiter) Disable() *RateLimiter {
	rl.disabled = true
	return rl
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.disabled {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.allow(c.Request.Context(), clientIP) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

// allow checks if a request from the given key should be allowed.
// Counter failures let the request through.
func (rl *RateLimiter) allow(ctx context.Context, key string) bool {
	attempts, err := rl.counter.hit(ctx, fmt.Sprintf("%s:%s:%s", redisKeyPrefix, rl.name, key), rl.windowDuration)
	if err != nil {
		slog.Warn("Rate limiter unavailable", "limiter", rl.name, "error", err)
		return true
	}
	return attempts <= int64(rl.maxAttempts)
}

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int64
	resetTime time.Time
}

type memoryCounter struct {
	mu      sync.Mutex
	entries map[string]*rateLimitEntry
	now     func() time.Time
}

func newMemoryCounter(now func() time.Time) *memoryCounter {
	return &memoryCounter{
		entries: make(map[string]*rateLimitEntry),
		now:     now,
	}
}

func (m *memoryCounter) hit(_ context.Context, key string, window time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()

	entry, exists := m.entries[key]
	if !exists || now.After(entry.resetTime) {
		m.entries[key] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(window),
		}
		m.cleanup(now)
		return 1, nil
	}

	entry.attempts++
	return entry.attempts, nil
}

// cleanup removes expired entries. Callers hold the lock.
func (m *memoryCounter) cleanup(now time.Time) {
	for key, entry := range m.entries {
		if now.After(entry.resetTime) {
			delete(m.entries, key)
		}
	}
}

type redisCounter struct {
	client *redis.Client
}

func (r *redisCounter) hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	attempts, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if attempts == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return attempts, nil
}
