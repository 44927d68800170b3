package middleware

import (
	"travel-planning-assistant/pkg/log"
)

// Middleware carries the cross-cutting gin middleware of the HTTP API.
type Middleware struct {
	l       log.Logger
	apiKey  string
	limiter *clientLimiter
}

// New creates the middleware set. An empty apiKey disables inbound auth; a
// non-positive rate disables rate limiting.
func New(l log.Logger, apiKey string, rateLimitPerMin int) Middleware {
	var limiter *clientLimiter
	if rateLimitPerMin > 0 {
		limiter = newClientLimiter(rateLimitPerMin)
	}
	return Middleware{
		l:       l,
		apiKey:  apiKey,
		limiter: limiter,
	}
}
