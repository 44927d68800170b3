package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/genai"
)

func TestConfigValidate(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		cfg := Config{}
		if err := cfg.Validate(); !errors.Is(err, ErrMissingAPIKey) {
			t.Errorf("expected ErrMissingAPIKey, got %v", err)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		cfg := Config{APIKey: "test-key"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cfg.Models) != len(DefaultModels) {
			t.Errorf("expected %d default models, got %d", len(DefaultModels), len(cfg.Models))
		}
		if cfg.Models[0] != "gemini-2.5-flash" {
			t.Errorf("expected chain to start with gemini-2.5-flash, got %s", cfg.Models[0])
		}
		if cfg.Timeout != DefaultTimeout {
			t.Errorf("expected default timeout, got %v", cfg.Timeout)
		}
		if cfg.MaxOutputTokens != DefaultMaxOutputTokens {
			t.Errorf("expected default max tokens, got %d", cfg.MaxOutputTokens)
		}
	})

	t.Run("explicit values kept", func(t *testing.T) {
		cfg := Config{APIKey: "test-key", Models: []string{"gemini-2.5-pro"}}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cfg.Models) != 1 || cfg.Models[0] != "gemini-2.5-pro" {
			t.Errorf("expected configured chain kept, got %v", cfg.Models)
		}
	})
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "rate limited", err: genai.APIError{Code: http.StatusTooManyRequests}, want: true},
		{name: "server error", err: genai.APIError{Code: http.StatusInternalServerError}, want: true},
		{name: "service unavailable", err: genai.APIError{Code: http.StatusServiceUnavailable}, want: true},
		{name: "bad request", err: genai.APIError{Code: http.StatusBadRequest}, want: false},
		{name: "bad api key", err: genai.APIError{Code: http.StatusUnauthorized}, want: false},
		{name: "forbidden", err: genai.APIError{Code: http.StatusForbidden}, want: false},
		{name: "unknown model", err: genai.APIError{Code: http.StatusNotFound}, want: false},
		{name: "wrapped api error", err: fmt.Errorf("gemini: model x: %w", genai.APIError{Code: http.StatusBadGateway}), want: true},
		{name: "empty response", err: ErrEmptyResponse, want: true},
		{name: "wrapped empty response", err: fmt.Errorf("gemini: model x: %w", ErrEmptyResponse), want: true},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: true},
		{name: "caller canceled", err: context.Canceled, want: false},
		{name: "unclassified", err: errors.New("connection reset by peer"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestBuildContents(t *testing.T) {
	contents := buildContents([]Message{
		{Role: RoleUser, Text: "hello"},
		{Role: RoleModel, Text: "hi there"},
		{Text: "no role defaults to user"},
	})

	if len(contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(contents))
	}
	if contents[0].Role != RoleUser || contents[0].Parts[0].Text != "hello" {
		t.Errorf("unexpected first content: %+v", contents[0])
	}
	if contents[1].Role != RoleModel {
		t.Errorf("expected model role, got %s", contents[1].Role)
	}
	if contents[2].Role != RoleUser {
		t.Errorf("expected empty role to default to user, got %s", contents[2].Role)
	}
}

func TestBuildConfig(t *testing.T) {
	t.Run("system instruction and temperature", func(t *testing.T) {
		req := &Request{SystemInstruction: "be helpful", Temperature: 0.7}
		config := buildConfig(req, 1024)

		if config.MaxOutputTokens != 1024 {
			t.Errorf("expected max tokens 1024, got %d", config.MaxOutputTokens)
		}
		if config.Temperature == nil || *config.Temperature != 0.7 {
			t.Errorf("unexpected temperature: %v", config.Temperature)
		}
		if config.SystemInstruction == nil || config.SystemInstruction.Parts[0].Text != "be helpful" {
			t.Errorf("unexpected system instruction: %+v", config.SystemInstruction)
		}
	})

	t.Run("zero temperature omitted", func(t *testing.T) {
		config := buildConfig(&Request{}, 256)
		if config.Temperature != nil {
			t.Errorf("expected nil temperature, got %v", *config.Temperature)
		}
		if config.SystemInstruction != nil {
			t.Errorf("expected nil system instruction")
		}
	})
}
