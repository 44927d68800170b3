package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"travel-planning-assistant/config"
	"travel-planning-assistant/pkg/gemini"
)

// probeTokens keeps each availability check as cheap as possible.
const probeTokens = 8

// main probes every model in the configured fallback chain and prints
// which ones answer today. Run it when the assistant keeps degrading to
// see whether the chain itself is healthy.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	client, err := gemini.New(ctx, gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Models:  cfg.Gemini.Models,
		Timeout: cfg.Gemini.Timeout,
	})
	if err != nil {
		fmt.Printf("Failed to create Gemini client: %v\n", err)
		os.Exit(1)
	}

	models := client.Models()
	fmt.Printf("Checking %d models...\n\n", len(models))

	available := 0
	for _, model := range models {
		start := time.Now()
		_, err := client.GenerateContent(ctx, &gemini.Request{
			Model:           model,
			Messages:        []gemini.Message{{Role: gemini.RoleUser, Text: "ping"}},
			MaxOutputTokens: probeTokens,
		})
		elapsed := time.Since(start).Round(time.Millisecond)

		switch {
		case err == nil:
			fmt.Printf("✅ %-25s OK (%s)\n", model, elapsed)
			available++
		case gemini.IsTransient(err):
			fmt.Printf("⚠️ %-25s transient: %v\n", model, err)
		default:
			fmt.Printf("❌ %-25s unavailable: %v\n", model, err)
		}
	}

	fmt.Printf("\n%d/%d models answered\n", available, len(models))
	if available == 0 {
		os.Exit(1)
	}
}
