package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/apierror"
)

// RateLimiter is a fixed-window per-IP request limiter.
type RateLimiter struct {
	limit     int
	window    time.Duration
	mu        sync.Mutex
	entries   map[string]*rateEntry
	lastPurge time.Time
	now       func() time.Time
}

type rateEntry struct {
	count     int
	windowEnd time.Time
}

const purgeInterval = 5 * time.Minute

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		entries: make(map[string]*rateEntry),
		now:     time.Now,
	}
}

// Middleware returns the gin handler. A non-positive limit disables limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limit <= 0 {
			c.Next()
			return
		}
		allowed, retryAfter := rl.allow(c.ClientIP())
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(ip string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastPurge) >= purgeInterval {
		rl.purge(now)
	}

	e, ok := rl.entries[ip]
	if !ok || now.After(e.windowEnd) {
		e = &rateEntry{windowEnd: now.Add(rl.window)}
		rl.entries[ip] = e
	}
	e.count++
	if e.count > rl.limit {
		return false, e.windowEnd.Sub(now)
	}
	return true, 0
}

// purge drops expired windows so IPs that never return do not accumulate.
// Must be called with mu held.
func (rl *RateLimiter) purge(now time.Time) {
	purged := 0
	for ip, e := range rl.entries {
		if now.After(e.windowEnd) {
			delete(rl.entries, ip)
			purged++
		}
	}
	rl.lastPurge = now
	if purged > 0 {
		log.Debug().Int("purged", purged).Int("remaining", len(rl.entries)).Msg("rate limiter purged")
	}
}
