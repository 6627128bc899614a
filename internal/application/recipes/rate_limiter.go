package recipes

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// userLimiter couples a token bucket with its last-use time so stale
// entries can be dropped.
type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles recipe generation per user.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[uuid.UUID]*userLimiter
	rps      rate.Limit
	burst    int
}

// NewRateLimiter creates a per-user limiter allowing requestsPerMin
// requests with the given burst. A background sweep drops users idle
// longer than cleanupInterval.
func NewRateLimiter(requestsPerMin, burst int, cleanupInterval time.Duration) *RateLimiter {
	l := &RateLimiter{
		limiters: make(map[uuid.UUID]*userLimiter),
		rps:      rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
	if cleanupInterval > 0 {
		go l.sweep(cleanupInterval)
	}
	return l
}

// Allow reports whether the user may make a request now.
func (l *RateLimiter) Allow(userID uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	ul, ok := l.limiters[userID]
	if !ok {
		ul = &userLimiter{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.limiters[userID] = ul
	}
	ul.lastSeen = time.Now()
	return ul.limiter.Allow()
}

func (l *RateLimiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-3 * interval)
		l.mu.Lock()
		for id, ul := range l.limiters {
			if ul.lastSeen.Before(cutoff) {
				delete(l.limiters, id)
			}
		}
		l.mu.Unlock()
	}
}
