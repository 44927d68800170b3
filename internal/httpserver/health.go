package httpserver

import (
	"net/http"

	"travel-planning-assistant/internal/assistant"
	"travel-planning-assistant/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "From Travel Planning Assistant With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "travel-planning-assistant"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness checks. Readiness tracks the assistant
// lifecycle: an orchestrator that never came up answers 503 so load
// balancers keep traffic away, while DEGRADED still serves.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Assistant not initialized"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	status := srv.assistantUC.Status()
	if status == assistant.StatusFailed || status == assistant.StatusUninitialized {
		response.ErrorWithStatus(c, http.StatusServiceUnavailable, assistant.ErrNotInitialized, gin.H{
			"assistant": string(status),
		})
		return
	}

	response.OK(c, gin.H{
		"status":    "ready",
		"assistant": string(status),
		"message":   HealthMessage,
		"version":   HealthVersion,
		"service":   ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
