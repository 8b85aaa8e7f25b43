package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// KeyedLimiter hands out one token bucket per key (client IP).
type KeyedLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*entry
	limit     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewKeyedLimiter allows rps requests per second per key with the given burst.
// Buckets unused for ten minutes are dropped by a sweep that runs at most once per idle period.
func NewKeyedLimiter(rps float64, burst int) *KeyedLimiter {
	return &KeyedLimiter{
		limiters:  make(map[string]*entry),
		limit:     rate.Limit(rps),
		burst:     burst,
		idle:      10 * time.Minute,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Allow reports whether a request for key may proceed now.
func (k *KeyedLimiter) Allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	k.evict(now)

	e, ok := k.limiters[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(k.limit, k.burst)}
		k.limiters[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

func (k *KeyedLimiter) evict(now time.Time) {
	if now.Sub(k.lastSweep) < k.idle {
		return
	}
	k.lastSweep = now
	for key, e := range k.limiters {
		if now.Sub(e.lastSeen) > k.idle {
			delete(k.limiters, key)
		}
	}
}

// Len returns the number of tracked keys.
func (k *KeyedLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.limiters)
}

// RateLimit rejects requests over the per-IP budget with 429.
func RateLimit(limiter *KeyedLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"msg": "Too many requests"})
			return
		}
		c.Next()
	}
}
