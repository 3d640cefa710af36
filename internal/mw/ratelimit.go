package mw

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// DefaultLimiterIdle is how long a client's bucket is kept after its last request.
const DefaultLimiterIdle = 10 * time.Minute

// IPRateLimiter hands out one token bucket per client IP. Buckets of clients
// idle for longer than the idle period are dropped.
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters *cache.Cache
	idle     time.Duration
	r        rate.Limit
	b        int
}

// NewIPRateLimiter creates a limiter allowing r events per second with burst b.
func NewIPRateLimiter(r rate.Limit, b int, idle time.Duration) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: cache.New(idle, idle),
		idle:     idle,
		r:        r,
		b:        b,
	}
}

// Limiter returns the bucket for ip, creating it on first use.
func (i *IPRateLimiter) Limiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	var limiter *rate.Limiter
	if v, found := i.limiters.Get(ip); found {
		limiter = v.(*rate.Limiter)
	} else {
		limiter = rate.NewLimiter(i.r, i.b)
	}
	i.limiters.Set(ip, limiter, i.idle)
	return limiter
}

// Len reports the number of clients currently tracked.
func (i *IPRateLimiter) Len() int {
	return len(i.limiters.Items())
}

// Middleware rejects requests over the limit with 429.
func (i *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !i.Limiter(ip).Allow() {
			log.Printf("rate limit exceeded for %s on %s", ip, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

// RateLimiter is a middleware for IP-based rate limiting.
func RateLimiter(r rate.Limit, b int) gin.HandlerFunc {
	return NewIPRateLimiter(r, b, DefaultLimiterIdle).Middleware()
}
