package gateway

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type RateLimiter struct {
	limiter *rate.Limiter
	mu      sync.Mutex
	until   time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
}

func (rl *RateLimiter) Wait(ctx context.Context) error {
	return rl.limiter.Wait(ctx)
}

// BlockFor - приостанавливает запросы на duration. Повторная блокировка продлевает срок
func (rl *RateLimiter) BlockFor(duration time.Duration) {
	rl.mu.Lock()
	until := time.Now().Add(duration)
	if until.After(rl.until) {
		rl.until = until
	}
	rl.limiter.SetLimit(0)
	rl.mu.Unlock()

	time.AfterFunc(duration, func() {
		rl.mu.Lock()
		defer rl.mu.Unlock()
		if !time.Now().Before(rl.until) {
			rl.limiter.SetLimit(rate.Inf)
		}
	})
}

// RetryIn - оставшееся время блокировки, 0 если запросы разрешены
func (rl *RateLimiter) RetryIn() time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if left := time.Until(rl.until); left > 0 {
		return left
	}
	return 0
}

func ParseRetryAfter(headers http.Header) time.Duration {
	retryAfter := headers.Get("Retry-After")
	if retryAfter == "" {
		return time.Minute // default
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(retryAfter); err == nil {
		return time.Until(t)
	}

	return time.Minute // fallback
}
