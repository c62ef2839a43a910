package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter throttles user-driven actions by key.
type Limiter interface {
	Allow(action string) bool
}

// InMemoryLimiter keeps one token bucket per action key.
type InMemoryLimiter struct {
	actions map[string]*rate.Limiter
	mu      sync.Mutex
	r       rate.Limit
	b       int // burst size, taps in a row before throttling kicks in
}

// NewInMemoryLimiter creates a new rate limiter.
// Example: NewInMemoryLimiter(1, time.Second, 3) -> one action per second, burst of 3.
func NewInMemoryLimiter(requests int, per time.Duration, burst int) Limiter {
	return &InMemoryLimiter{
		actions: make(map[string]*rate.Limiter),
		r:       rate.Every(per / time.Duration(requests)),
		b:       burst,
	}
}

// Allow reports whether one more occurrence of action may run now.
func (l *InMemoryLimiter) Allow(action string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.actions[action]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.actions[action] = limiter
	}

	return limiter.Allow()
}
