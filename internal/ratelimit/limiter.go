// Package ratelimit throttles chatty users with a per-chat token bucket.
package ratelimit

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	cleanupInterval = 10 * time.Minute
	bucketMaxAge    = time.Hour
)

type TokenBucketLimiter struct {
	buckets    map[int64]*bucket
	limit      int
	refillRate time.Duration
	mu         sync.RWMutex
}

type bucket struct {
	tokens     int
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucketLimiter(limit int, refillRate time.Duration) *TokenBucketLimiter {
	limiter := &TokenBucketLimiter{
		buckets:    make(map[int64]*bucket),
		limit:      limit,
		refillRate: refillRate,
	}

	go limiter.cleanup()

	return limiter
}

// Allow reports whether another request from chatID may be handled now.
func (tbl *TokenBucketLimiter) Allow(chatID int64) bool {
	tbl.mu.RLock()
	b, exists := tbl.buckets[chatID]
	tbl.mu.RUnlock()

	if !exists {
		tbl.mu.Lock()
		if b, exists = tbl.buckets[chatID]; !exists {
			b = &bucket{
				tokens:     tbl.limit,
				lastRefill: time.Now(),
			}
			tbl.buckets[chatID] = b
		}
		tbl.mu.Unlock()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	if elapsed := now.Sub(b.lastRefill); elapsed >= tbl.refillRate {
		tokensToAdd := int(elapsed / tbl.refillRate)
		b.tokens = min(tbl.limit, b.tokens+tokensToAdd)
		b.lastRefill = now
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}

	logrus.WithField("chat_id", chatID).Debug("Rate limit exceeded")
	return false
}

// cleanup drops buckets that have been idle long enough to be fully refilled anyway.
func (tbl *TokenBucketLimiter) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-bucketMaxAge)

		tbl.mu.Lock()
		for chatID, b := range tbl.buckets {
			b.mu.Lock()
			stale := b.lastRefill.Before(cutoff)
			b.mu.Unlock()
			if stale {
				delete(tbl.buckets, chatID)
			}
		}
		tbl.mu.Unlock()
	}
}
