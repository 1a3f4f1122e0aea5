package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"barberhub/internal/httperr"
)

const (
	bucketIdleExpiry  = 10 * time.Minute
	bucketSweepPeriod = 5 * time.Minute
)

type ipBucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// ipLimiter keeps one token bucket per client IP and evicts buckets
// that have been idle, so the map stays bounded under IP churn.
type ipLimiter struct {
	mu      sync.Mutex
	buckets map[string]*ipBucket
	rps     rate.Limit
	burst   int
}

func newIPLimiter(rps rate.Limit, burst int) *ipLimiter {
	return &ipLimiter{
		buckets: make(map[string]*ipBucket),
		rps:     rps,
		burst:   burst,
	}
}

func (l *ipLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	b, ok := l.buckets[ip]
	if !ok {
		b = &ipBucket{lim: rate.NewLimiter(l.rps, l.burst)}
		l.buckets[ip] = b
	}
	b.lastSeen = now
	l.mu.Unlock()

	return b.lim.Allow()
}

// sweep drops buckets idle since before the cutoff.
func (l *ipLimiter) sweep(cutoff time.Time) {
	l.mu.Lock()
	for ip, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, ip)
		}
	}
	l.mu.Unlock()
}

func (l *ipLimiter) run() {
	for range time.Tick(bucketSweepPeriod) {
		l.sweep(time.Now().Add(-bucketIdleExpiry))
	}
}

// RateLimitPerIP slows down credential stuffing on the auth routes.
func RateLimitPerIP(rps rate.Limit, burst int) gin.HandlerFunc {
	limiter := newIPLimiter(rps, burst)
	go limiter.run()

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP(), time.Now()) {
			httperr.Write(c, http.StatusTooManyRequests, "too_many_requests", "Too many requests, slow down.")
			c.Abort()
			return
		}
		c.Next()
	}
}
