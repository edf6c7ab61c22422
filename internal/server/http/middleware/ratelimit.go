package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterSweepInterval = 10 * time.Minute

// LoginThrottle limits credential submissions per client IP with a token bucket.
type LoginThrottle struct {
	limiters  sync.Map
	limit     rate.Limit
	burst     int
	logger    *slog.Logger
	mu        sync.Mutex
	lastSweep time.Time
	now       func() time.Time
}

// NewLoginThrottle creates LoginThrottle allowing rps attempts per second with the given burst.
func NewLoginThrottle(rps float64, burst int, logger *slog.Logger) *LoginThrottle {
	return &LoginThrottle{
		limit:     rate.Limit(rps),
		burst:     burst,
		logger:    logger,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (t *LoginThrottle) limiter(ip string) *rate.Limiter {
	if l, ok := t.limiters.Load(ip); ok {
		return l.(*rate.Limiter)
	}
	l, _ := t.limiters.LoadOrStore(ip, rate.NewLimiter(t.limit, t.burst))
	return l.(*rate.Limiter)
}

// sweep drops limiters that have refilled completely.
func (t *LoginThrottle) sweep() {
	t.mu.Lock()
	now := t.now()
	if now.Sub(t.lastSweep) < limiterSweepInterval {
		t.mu.Unlock()
		return
	}
	t.lastSweep = now
	t.mu.Unlock()

	t.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).TokensAt(now) >= float64(t.burst) {
			t.limiters.Delete(key)
		}
		return true
	})
}

// Middleware rejects POST requests over the limit with 429. Other methods pass through.
func (t *LoginThrottle) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		t.sweep()

		ip := c.ClientIP()
		if !t.limiter(ip).AllowN(t.now(), 1) {
			t.logger.Warn("login rate limit exceeded", slog.String("ip", ip))
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
