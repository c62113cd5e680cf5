package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/baharkarakas/player-registry/internal/api/httpx"
)

type tokenBucket struct {
	mu     sync.Mutex
	clock  clockwork.Clock
	tokens float64
	last   time.Time
	rate   float64
	burst  float64
}

func (tb *tokenBucket) take() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	now := tb.clock.Now()
	if elapsed := now.Sub(tb.last).Seconds(); elapsed > 0 {
		tb.tokens += elapsed * tb.rate
		if tb.tokens > tb.burst {
			tb.tokens = tb.burst
		}
		tb.last = now
	}
	if tb.tokens < 1 {
		return false
	}
	tb.tokens--
	return true
}

// RateLimit allows rps requests per second across all clients, with a burst
// of rps. A non-positive rps disables limiting.
func RateLimit(rps int) func(http.Handler) http.Handler {
	return RateLimitWithClock(rps, clockwork.NewRealClock())
}

func RateLimitWithClock(rps int, clock clockwork.Clock) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	tb := &tokenBucket{
		clock:  clock,
		tokens: float64(rps),
		last:   clock.Now(),
		rate:   float64(rps),
		burst:  float64(rps),
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !tb.take() {
				w.Header().Set("Retry-After", "1")
				httpx.WriteError(w, http.StatusTooManyRequests, "rate_limited", "too many requests", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
