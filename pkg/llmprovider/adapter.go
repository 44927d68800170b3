package llmprovider

import (
	"context"
	"fmt"

	"travel-planning-assistant/pkg/gemini"
)

// modelProvider binds one Gemini client to one concrete model identifier so
// the Manager can treat each model in the chain as an independent Provider.
type modelProvider struct {
	client gemini.IGemini
	model  string
}

// FromGemini wraps a Gemini client as a Provider pinned to a single model.
func FromGemini(client gemini.IGemini, model string) Provider {
	return &modelProvider{client: client, model: model}
}

// FromGeminiChain builds one Provider per model in the client's configured
// chain, preserving the chain order.
func FromGeminiChain(client gemini.IGemini) []Provider {
	models := client.Models()
	providers := make([]Provider, 0, len(models))
	for _, m := range models {
		providers = append(providers, FromGemini(client, m))
	}
	return providers
}

func (p *modelProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	messages := make([]gemini.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, gemini.Message{Role: m.Role, Text: m.Text})
	}

	resp, err := p.client.GenerateContent(ctx, &gemini.Request{
		Model:             p.model,
		SystemInstruction: req.SystemInstruction,
		Messages:          messages,
		Temperature:       req.Temperature,
		MaxOutputTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	out := &Response{
		Text:     resp.Text,
		Provider: p.Name(),
		Model:    p.model,
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

func (p *modelProvider) Name() string {
	return "gemini"
}

func (p *modelProvider) Model() string {
	return p.model
}
