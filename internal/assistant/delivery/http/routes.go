package http

import (
	"github.com/gin-gonic/gin"

	"travel-planning-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every route
// is rate limited and API-key protected by convention.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	routes := rg.Group("/assistant")
	{
		routes.POST("/sessions", mw.RateLimit(), mw.Auth(), h.StartSession)
		routes.POST("/chat", mw.RateLimit(), mw.Auth(), h.Chat)
		routes.POST("/itinerary", mw.RateLimit(), mw.Auth(), h.CreateItinerary)
		routes.POST("/recommendations", mw.RateLimit(), mw.Auth(), h.GetRecommendations)
		routes.POST("/search", mw.RateLimit(), mw.Auth(), h.Search)
	}
}
