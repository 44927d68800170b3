package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"travel-planning-assistant/pkg/response"
)

// HeaderAPIKey is the inbound authentication header.
const HeaderAPIKey = "X-API-Key"

// Auth enforces the configured API key with a constant-time comparison.
// With no key configured every request passes, which keeps local setups
// friction-free.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.Next()
			return
		}

		provided := c.GetHeader(HeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.apiKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "internal.middleware.Auth: rejected request to %s", c.FullPath())
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
