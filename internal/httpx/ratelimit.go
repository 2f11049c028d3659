package httpx

import (
	"net/http"
	"sync"
	"time"
)

// Token bucket, refilled lazily on each Allow call.
type RateLimiter struct {
	mu     sync.Mutex
	tokens float64
	max    float64
	rate   float64 // tokens per second
	last   time.Time
	now    func() time.Time
}

func NewRateLimiter(maxPerMinute int) *RateLimiter {
	return &RateLimiter{
		tokens: float64(maxPerMinute),
		max:    float64(maxPerMinute),
		rate:   float64(maxPerMinute) / 60.0,
		now:    time.Now,
	}
}

func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	n := rl.now()
	if !rl.last.IsZero() {
		rl.tokens += n.Sub(rl.last).Seconds() * rl.rate
		if rl.tokens > rl.max {
			rl.tokens = rl.max
		}
	}
	rl.last = n

	if rl.tokens >= 1 {
		rl.tokens--
		return true
	}
	return false
}

func LimitMiddleware(rl *RateLimiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow() {
			w.Header().Set("Retry-After", "60")
			http.Error(w, `{"error":"rate limit exceeded"}`, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
