package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"travel-planning-assistant/config"
	_ "travel-planning-assistant/docs" // Swagger docs
	"travel-planning-assistant/internal/agent"
	"travel-planning-assistant/internal/assistant/usecase"
	"travel-planning-assistant/internal/httpserver"
	"travel-planning-assistant/internal/router"
	"travel-planning-assistant/pkg/gemini"
	"travel-planning-assistant/pkg/llmprovider"
	"travel-planning-assistant/pkg/log"
)

// @title       Travel Planning Assistant API
// @description Multi-agent travel planning over Gemini: itineraries, budgets, searches, and conversational trip advice.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration (.env is optional; deployments set real env vars)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Travel Planning Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gemini client and the model fallback chain
	geminiClient, err := gemini.New(ctx, gemini.Config{
		APIKey:          cfg.Gemini.APIKey,
		Models:          cfg.Gemini.Models,
		Timeout:         cfg.Gemini.Timeout,
		MaxOutputTokens: int32(cfg.Gemini.MaxOutputTokens),
	})
	if err != nil {
		logger.Error(ctx, "Failed to create Gemini client: ", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Model chain: %v", geminiClient.Models())

	llm, err := llmprovider.NewManager(llmprovider.FromGeminiChain(geminiClient), &llmprovider.Config{
		RetryAttempts:     cfg.Gemini.RetryAttempts,
		RetryDelay:        cfg.Gemini.RetryDelay,
		MaxTotalTimeout:   llmprovider.DefaultMaxTotalTimeout,
		RequestsPerMinute: cfg.Gemini.RequestsPerMin,
	}, logger)
	if err != nil {
		logger.Error(ctx, "Failed to create LLM manager: ", err)
		os.Exit(1)
	}

	// 4. Agents and the intent classifier
	registry := agent.NewRegistry()
	registry.Register(agent.NewPlanning(llm, logger, cfg.Assistant.MemoryLimit))
	registry.Register(agent.NewTravel(llm, logger, cfg.Assistant.MemoryLimit))
	registry.Register(agent.NewFinance(llm, logger, cfg.Assistant.MemoryLimit))
	registry.Register(agent.NewSearch(llm, logger, cfg.Assistant.MemoryLimit))

	classifier := router.New(llm, logger)

	// 5. Assistant orchestrator. New probes the chain; a service that
	// cannot reach any model refuses to start.
	assistantUC, err := usecase.New(ctx, logger, llm, registry, classifier, usecase.Config{
		HistoryLimit: cfg.Assistant.HistoryLimit,
		SessionTTL:   cfg.Assistant.SessionTTL,
		MaxSessions:  cfg.Assistant.MaxSessions,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize assistant: ", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Assistant ready, active model: %s", llm.ActiveModel())

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AssistantUC:     assistantUC,
		APIKey:          cfg.Assistant.APIKey,
		RateLimitPerMin: cfg.Assistant.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
