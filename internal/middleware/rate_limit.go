package middleware

import (
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"travel-planning-assistant/pkg/response"
)

const (
	// limiterTableSize caps how many distinct clients are tracked at once.
	limiterTableSize = 1000

	// limiterTTL evicts the bucket of a client that went quiet.
	limiterTTL = 5 * time.Minute
)

var errTooManyRequests = errors.New("too many requests")

// clientLimiter keeps one token bucket per client with auto-cleanup.
type clientLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newClientLimiter(requestsPerMin int) *clientLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &clientLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterTableSize, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (cl *clientLimiter) allow(key string) bool {
	limiter, ok := cl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(cl.rate, cl.burst)
		cl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles each client IP independently. Pass-through when no
// rate was configured.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		ip := extractClientIP(c.Request)
		if !m.limiter.allow(ip) {
			m.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: throttled %s", ip)
			response.ErrorWithStatus(c, http.StatusTooManyRequests, errTooManyRequests)
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractClientIP resolves the caller behind proxies: X-Forwarded-For
// first, then X-Real-IP, then the socket address.
func extractClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, _ := net.SplitHostPort(r.RemoteAddr)
	return ip
}
