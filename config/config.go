package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Travel Planning Assistant specifics
	Gemini    GeminiConfig
	Assistant AssistantConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig drives the Gemini client and its model fallback chain.
type GeminiConfig struct {
	APIKey          string
	Models          []string // ordered fallback chain; empty means the client defaults
	Timeout         time.Duration
	MaxOutputTokens int
	RequestsPerMin  int // outbound pacing across the whole chain
	RetryAttempts   int
	RetryDelay      time.Duration
}

// AssistantConfig bounds the orchestrator and its HTTP surface.
type AssistantConfig struct {
	HistoryLimit    int           // conversation turns kept per session
	MemoryLimit     int           // interactions kept per agent
	SessionTTL      time.Duration // idle session lifetime
	MaxSessions     int           // LRU capacity of the session store
	APIKey          string        // inbound X-API-Key; empty disables auth
	RateLimitPerMin int           // per-client request budget; 0 disables
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = expandEnvVar(viper.GetString("gemini.api_key"))
	cfg.Gemini.Models = viper.GetStringSlice("gemini.models")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")
	cfg.Gemini.MaxOutputTokens = viper.GetInt("gemini.max_output_tokens")
	cfg.Gemini.RequestsPerMin = viper.GetInt("gemini.requests_per_min")
	cfg.Gemini.RetryAttempts = viper.GetInt("gemini.retry_attempts")
	cfg.Gemini.RetryDelay = viper.GetDuration("gemini.retry_delay")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured - set GEMINI_API_KEY or gemini.api_key in config.yaml")
	}

	// Assistant
	cfg.Assistant.HistoryLimit = viper.GetInt("assistant.history_limit")
	cfg.Assistant.MemoryLimit = viper.GetInt("assistant.memory_limit")
	cfg.Assistant.SessionTTL = viper.GetDuration("assistant.session_ttl")
	cfg.Assistant.MaxSessions = viper.GetInt("assistant.max_sessions")
	cfg.Assistant.APIKey = expandEnvVar(viper.GetString("assistant.api_key"))
	cfg.Assistant.RateLimitPerMin = viper.GetInt("assistant.rate_limit_per_min")
	if assistantKey := viper.GetString("assistant_api_key"); assistantKey != "" {
		cfg.Assistant.APIKey = assistantKey
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Gemini defaults
	viper.SetDefault("gemini.timeout", "30s")
	viper.SetDefault("gemini.max_output_tokens", 2048)
	viper.SetDefault("gemini.requests_per_min", 30)
	viper.SetDefault("gemini.retry_attempts", 2)
	viper.SetDefault("gemini.retry_delay", "1s")

	// Assistant defaults
	viper.SetDefault("assistant.history_limit", 10)
	viper.SetDefault("assistant.memory_limit", 20)
	viper.SetDefault("assistant.session_ttl", "30m")
	viper.SetDefault("assistant.max_sessions", 512)
	viper.SetDefault("assistant.rate_limit_per_min", 60)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
