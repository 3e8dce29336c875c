package ratelimiter

import (
	"sync"
	"time"
)

type Config struct {
	RequestsPerTimeFrame int `validate:"gte=1"`
	TimeFrame            time.Duration
	Enabled              bool
}

type Limiter interface {
	Allow(key string) (bool, time.Duration)
}

type clientWindow struct {
	start time.Time
	count int
}

// FixedWindowRateLimiter allows limit requests per key in each window. A
// key's window starts with its first request.
type FixedWindowRateLimiter struct {
	sync.Mutex
	clients map[string]*clientWindow // key is the client IP
	limit   int
	window  time.Duration
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

func NewFixedWindowLimiter(limit int, window time.Duration) *FixedWindowRateLimiter {
	rl := &FixedWindowRateLimiter{
		clients: make(map[string]*clientWindow),
		limit:   limit,
		window:  window,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// Allow counts a request for key. When the key is over its limit it returns
// false and the time left until its window resets.
func (rl *FixedWindowRateLimiter) Allow(key string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	now := rl.now()
	w, ok := rl.clients[key]
	if !ok || now.Sub(w.start) >= rl.window {
		rl.clients[key] = &clientWindow{start: now, count: 1}
		return true, 0
	}

	if w.count < rl.limit {
		w.count++
		return true, 0
	}

	return false, rl.window - now.Sub(w.start)
}

// Stop ends the cleanup goroutine.
func (rl *FixedWindowRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *FixedWindowRateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictExpired()
		}
	}
}

func (rl *FixedWindowRateLimiter) evictExpired() {
	rl.Lock()
	defer rl.Unlock()

	now := rl.now()
	for key, w := range rl.clients {
		if now.Sub(w.start) >= rl.window {
			delete(rl.clients, key)
		}
	}
}
