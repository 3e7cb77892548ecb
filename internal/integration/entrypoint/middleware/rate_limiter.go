// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute

	rateLimitKeyPrefix = "ratelimit:"

	// defaultPruneEvery is how many Allow calls pass between sweeps of expired entries.
	defaultPruneEvery = 256
)

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int
	resetTime time.Time
}

// MemoryRateLimitStore keeps fixed-window counters in process memory.
// Expired entries are swept inline every pruneEvery calls to Allow.
type MemoryRateLimitStore struct {
	mu         sync.Mutex
	entries    map[string]*rateLimitEntry
	now        func() time.Time
	calls      int
	pruneEvery int
}

// NewMemoryRateLimitStore creates an empty in-memory store.
func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	return &MemoryRateLimitStore{
		entries:    make(map[string]*rateLimitEntry),
		now:        time.Now,
		pruneEvery: defaultPruneEvery,
	}
}

// Allow records an attempt for key and reports whether it is within the limit.
func (s *MemoryRateLimitStore) Allow(_ context.Context, key string, maxAttempts int, window time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	s.calls++
	if s.calls >= s.pruneEvery {
		s.calls = 0
		s.pruneExpired(now)
	}

	entry, exists := s.entries[key]
	if !exists || now.After(entry.resetTime) {
		s.entries[key] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(window),
		}
		return true, nil
	}

	if entry.attempts < maxAttempts {
		entry.attempts++
		return true, nil
	}

	return false, nil
}

// pruneExpired drops entries whose window ended before now. Callers hold s.mu.
func (s *MemoryRateLimitStore) pruneExpired(now time.Time) {
	for key, entry := range s.entries {
		if now.After(entry.resetTime) {
			delete(s.entries, key)
		}
	}
}

// RateLimiter provides IP-based rate limiting. Counters live in the primary
// store; when it fails the limiter falls back to process memory.
type RateLimiter struct {
	store          adapter.RateLimitStore
	fallback       *MemoryRateLimitStore
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates an in-memory rate limiter with default settings.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(nil, defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a rate limiter backed by store. A nil store
// keeps counters in memory only.
func NewRateLimiterWithConfig(store adapter.RateLimitStore, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if windowDuration <= 0 {
		windowDuration = defaultWindowDuration
	}
	fallback := NewMemoryRateLimitStore()
	if store == nil {
		store = fallback
	}
	return &RateLimiter{
		store:          store,
		fallback:       fallback,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip rate limiting in E2E mode or test environment
		if os.Getenv("E2E_MODE") == "true" || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.allow(c.Request.Context(), rateLimitKeyPrefix+c.FullPath()+":"+clientIP) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(ctx context.Context, key string) bool {
	allowed, err := rl.store.Allow(ctx, key, rl.maxAttempts, rl.windowDuration)
	if err == nil {
		return allowed
	}

	slog.Warn("Rate limit store unavailable, using in-memory counters", "error", err)
	allowed, _ = rl.fallback.Allow(ctx, key, rl.maxAttempts, rl.windowDuration)
	return allowed
}
