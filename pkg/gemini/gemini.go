package gemini

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

type geminiImpl struct {
	client          *genai.Client
	models          []string
	timeout         time.Duration
	maxOutputTokens int32
}

// newGeminiImpl creates the SDK-backed implementation.
func newGeminiImpl(ctx context.Context, cfg Config) (*geminiImpl, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}

	return &geminiImpl{
		client:          client,
		models:          cfg.Models,
		timeout:         cfg.Timeout,
		maxOutputTokens: cfg.MaxOutputTokens,
	}, nil
}

// GenerateContent sends a generation request to the Gemini API.
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req.Model == "" {
		return nil, ErrMissingModel
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	maxTokens := req.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = g.maxOutputTokens
	}

	result, err := g.client.Models.GenerateContent(ctx, req.Model, buildContents(req.Messages), buildConfig(req, maxTokens))
	if err != nil {
		return nil, fmt.Errorf("gemini: model %s: %w", req.Model, err)
	}
	if result == nil {
		return nil, fmt.Errorf("gemini: model %s: %w", req.Model, ErrEmptyResponse)
	}

	text := result.Text()
	if text == "" {
		return nil, fmt.Errorf("gemini: model %s: %w", req.Model, ErrEmptyResponse)
	}

	resp := &Response{
		Text:  text,
		Model: req.Model,
	}
	if result.UsageMetadata != nil {
		resp.Usage = &Usage{
			InputTokens:  result.UsageMetadata.PromptTokenCount,
			OutputTokens: result.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  result.UsageMetadata.TotalTokenCount,
		}
	}

	return resp, nil
}

// Models returns the configured fallback chain.
func (g *geminiImpl) Models() []string {
	out := make([]string, len(g.models))
	copy(out, g.models)
	return out
}

// buildContents converts messages to the SDK content format.
// Messages without a role default to the user role.
func buildContents(messages []Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		role := msg.Role
		if role == "" {
			role = RoleUser
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: msg.Text}},
		})
	}
	return contents
}

// buildConfig converts request settings to the SDK generation config.
func buildConfig(req *Request, maxTokens int32) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: maxTokens,
	}
	if req.Temperature > 0 {
		temp := req.Temperature
		config.Temperature = &temp
	}
	if req.SystemInstruction != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemInstruction}},
		}
	}
	return config
}
