package webserver

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Clients not seen for this long lose their limiter
const rateLimitIdleTimeout = 10 * time.Minute

var errTooManyRequests = fiber.NewError(fiber.StatusTooManyRequests, "Too many requests")

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter keeps a token bucket per client. Idle clients are swept on access,
// at most once every idleTimeout.
type rateLimiter struct {
	mu          sync.Mutex
	visitors    map[string]*visitor
	limit       rate.Limit
	burst       int
	idleTimeout time.Duration
	lastSweep   time.Time
}

func newRateLimiter(limit float64, burst int, idleTimeout time.Duration) *rateLimiter {
	return &rateLimiter{
		visitors:    make(map[string]*visitor),
		limit:       rate.Limit(limit),
		burst:       burst,
		idleTimeout: idleTimeout,
		lastSweep:   time.Now(),
	}
}

func (rl *rateLimiter) allow(key string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) >= rl.idleTimeout {
		rl.cleanup(now)
	}

	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// cleanup removes the visitors idle for longer than idleTimeout. Callers hold mu.
func (rl *rateLimiter) cleanup(now time.Time) {
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) >= rl.idleTimeout {
			delete(rl.visitors, key)
		}
	}
	rl.lastSweep = now
}

func (rl *rateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// RateLimit throttles requests per client IP. A non positive limit disables it.
func RateLimit(limit float64, burst int) fiber.Handler {
	if limit <= 0 {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}
	if burst < 1 {
		burst = 1
	}

	limiter := newRateLimiter(limit, burst, rateLimitIdleTimeout)
	logger := logrus.WithField("logger", "ratelimit")

	return func(c *fiber.Ctx) error {
		key := c.IP()
		if !limiter.allow(key, time.Now()) {
			logger.Warnf("rate limit exceeded by %s on %s", key, c.Path())
			return errTooManyRequests
		}
		return c.Next()
	}
}
