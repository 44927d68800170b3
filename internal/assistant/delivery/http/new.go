package http

import (
	"github.com/gin-gonic/gin"

	"travel-planning-assistant/internal/assistant"
	"travel-planning-assistant/pkg/log"
)

// Handler is the public interface of the assistant HTTP delivery layer.
type Handler interface {
	StartSession(c *gin.Context)
	Chat(c *gin.Context)
	CreateItinerary(c *gin.Context)
	GetRecommendations(c *gin.Context)
	Search(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates the HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

var _ Handler = (*handler)(nil)
