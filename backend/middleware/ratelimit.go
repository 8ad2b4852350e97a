package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	lru "github.com/hashicorp/golang-lru"

	"github.com/fitquest/fitquest-api/backend/utils"
	"github.com/fitquest/fitquest-api/fitquest/config"
)

// requestLog holds the recent request times of one client.
type requestLog struct {
	mu    sync.Mutex
	times []time.Time
}

// RateLimiter is a sliding-window limiter. Clients are tracked in a bounded LRU,
// so idle keys are evicted instead of swept.
type RateLimiter struct {
	clients *lru.Cache
	window  time.Duration
	limit   int
	now     func() time.Time
}

// NewRateLimiter creates a new rate limiter tracking at most maxKeys clients
func NewRateLimiter(limit int, window time.Duration, maxKeys int) (*RateLimiter, error) {
	clients, err := lru.New(maxKeys)
	if err != nil {
		return nil, err
	}
	return &RateLimiter{
		clients: clients,
		window:  window,
		limit:   limit,
		now:     time.Now,
	}, nil
}

// Allow checks if a request should be allowed
func (rl *RateLimiter) Allow(key string) bool {
	fresh := &requestLog{}
	log := fresh
	if prev, found, _ := rl.clients.PeekOrAdd(key, fresh); found {
		log = prev.(*requestLog)
		rl.clients.Get(key) // bump recency
	}

	log.mu.Lock()
	defer log.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	valid := log.times[:0]
	for _, t := range log.times {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}

	if len(valid) >= rl.limit {
		log.times = valid
		return false
	}
	log.times = append(valid, now)
	return true
}

// RateLimit middleware limits requests per IP address
func RateLimit(limit int, window time.Duration) fiber.Handler {
	limiter, err := NewRateLimiter(limit, window, config.RateLimiterMaxKeys)
	if err != nil {
		panic(err)
	}

	return func(c *fiber.Ctx) error {
		ip := utils.GetIPAddress(c)

		if !limiter.Allow(ip) {
			slog.Warn("Rate limit exceeded",
				slog.String("ip", ip),
				slog.String("path", c.Path()),
				slog.String("method", c.Method()),
				slog.Int("limit", limit),
				slog.Duration("window", window))

			return utils.SendTooManyRequests(c, "Too many requests. Please try again later.")
		}

		return c.Next()
	}
}

// AuthRateLimit middleware limits authentication attempts
func AuthRateLimit() fiber.Handler {
	return RateLimit(config.AuthRateLimit, config.RateLimitWindow)
}

// APIRateLimit middleware limits API requests
func APIRateLimit() fiber.Handler {
	return RateLimit(config.APIRateLimit, config.RateLimitWindow)
}
