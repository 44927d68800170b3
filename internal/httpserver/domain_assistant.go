package httpserver

import (
	"context"

	assistantHTTP "travel-planning-assistant/internal/assistant/delivery/http"
	"travel-planning-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupAssistantDomain initializes the assistant domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create (or receive) the UseCase
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// The UseCase arrives via Config because its constructor probes the
	// model chain and startup must fail when no model answers.
	h := assistantHTTP.New(srv.l, srv.assistantUC)

	// Routes: registers /api/v1/assistant/*
	assistantHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
