// Package ratelimit provides per-client rate limiting using the token bucket
// algorithm.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket allows a number of requests per minute, with tokens refilling
// at a steady rate.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: float64(capacity) / 60.0,
		tokens:     float64(capacity), // start with full bucket
		lastRefill: time.Now(),
	}
}

// allow refills the bucket for elapsed time and consumes a token if one is
// available.
func (tb *tokenBucket) allow() (bool, Info) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	info := Info{Limit: tb.capacity}
	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		info.Allowed = true
	} else {
		// Seconds until the next token becomes available.
		info.RetryAfter = time.Duration((1.0 - tb.tokens) / tb.refillRate * float64(time.Second))
	}
	info.Remaining = int(tb.tokens)

	if tb.tokens < float64(tb.capacity) {
		secondsUntilFull := (float64(tb.capacity) - tb.tokens) / tb.refillRate
		info.ResetTime = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	} else {
		info.ResetTime = now
	}
	return info.Allowed, info
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages rate limiting for multiple clients.
type Limiter struct {
	limitPerMinute int
	buckets        map[string]*tokenBucket
	lastAccess     map[string]time.Time
	mu             sync.Mutex
	cleanupTicker  *time.Ticker
	cleanupStop    chan struct{}
}

// NewLimiter creates a limiter allowing limitPerMinute requests per client.
// A limit of zero or less disables rate limiting.
func NewLimiter(limitPerMinute int) *Limiter {
	l := &Limiter{
		limitPerMinute: limitPerMinute,
		buckets:        make(map[string]*tokenBucket),
		lastAccess:     make(map[string]time.Time),
	}
	if limitPerMinute > 0 {
		l.cleanupTicker = time.NewTicker(5 * time.Minute)
		l.cleanupStop = make(chan struct{})
		go l.cleanup()
	}
	return l
}

// Allow reports whether a request from the given client is allowed.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if l.limitPerMinute <= 0 {
		return true, Info{Allowed: true}
	}

	l.mu.Lock()
	bucket, ok := l.buckets[clientID]
	if !ok {
		bucket = newTokenBucket(l.limitPerMinute)
		l.buckets[clientID] = bucket
	}
	l.lastAccess[clientID] = time.Now()
	l.mu.Unlock()

	return bucket.allow()
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupStop != nil {
		close(l.cleanupStop)
		l.cleanupTicker.Stop()
	}
}

// cleanup evicts buckets for clients idle longer than 10 minutes.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupStop:
			return
		case <-l.cleanupTicker.C:
			cutoff := time.Now().Add(-10 * time.Minute)
			l.mu.Lock()
			for id, last := range l.lastAccess {
				if last.Before(cutoff) {
					delete(l.buckets, id)
					delete(l.lastAccess, id)
				}
			}
			l.mu.Unlock()
		}
	}
}
