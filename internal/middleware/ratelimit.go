// SPDX-License-Identifier: MIT
package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// TokenBucket holds the remaining requests of one client for the current window
type TokenBucket struct {
	tokens   int
	refillAt time.Time
	mu       sync.Mutex
}

// RateLimiter manages token buckets per client IP
type RateLimiter struct {
	mu       sync.RWMutex
	buckets  map[string]*TokenBucket
	capacity int
	interval time.Duration
	now      func() time.Time
	done     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter allows capacity requests per client every interval
func NewRateLimiter(capacity int, interval time.Duration) *RateLimiter {
	limiter := &RateLimiter{
		buckets:  make(map[string]*TokenBucket),
		capacity: capacity,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}

	go limiter.cleanup()

	return limiter
}

// Stop ends the cleanup goroutine
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.done) })
}

// cleanup drops buckets idle for two windows
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.mu.Lock()
			now := rl.now()
			for ip, bucket := range rl.buckets {
				bucket.mu.Lock()
				if now.Sub(bucket.refillAt) > 2*rl.interval {
					delete(rl.buckets, ip)
				}
				bucket.mu.Unlock()
			}
			rl.mu.Unlock()
		}
	}
}

func (rl *RateLimiter) bucket(ip string) *TokenBucket {
	rl.mu.RLock()
	bucket, exists := rl.buckets[ip]
	rl.mu.RUnlock()
	if exists {
		return bucket
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if bucket, exists = rl.buckets[ip]; !exists {
		bucket = &TokenBucket{tokens: rl.capacity, refillAt: rl.now().Add(rl.interval)}
		rl.buckets[ip] = bucket
	}
	return bucket
}

// Allow consumes one token for ip. It returns whether the request may proceed,
// the tokens left and the time until the bucket refills.
func (rl *RateLimiter) Allow(ip string) (bool, int, time.Duration) {
	bucket := rl.bucket(ip)

	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	now := rl.now()
	if !now.Before(bucket.refillAt) {
		bucket.tokens = rl.capacity
		bucket.refillAt = now.Add(rl.interval)
	}

	if bucket.tokens > 0 {
		bucket.tokens--
		return true, bucket.tokens, bucket.refillAt.Sub(now)
	}
	return false, 0, bucket.refillAt.Sub(now)
}

// RateLimitMiddleware limits requests whose path starts with one of prefixes
func RateLimitMiddleware(limiter *RateLimiter, prefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !matchesPrefix(c.Request.URL.Path, prefixes) {
			c.Next()
			return
		}

		allowed, remaining, reset := limiter.Allow(getClientIP(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.capacity))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			retryAfter := int(reset.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many design requests, try again later"})
			return
		}

		c.Next()
	}
}

func matchesPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// getClientIP extracts the client IP address
func getClientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
