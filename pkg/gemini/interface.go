package gemini

import "context"

// IGemini defines the interface for the Gemini API client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent sends a generation request to the Gemini API.
	// The target model is part of the request, so one client serves
	// an entire fallback chain of model IDs.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Models returns the configured model chain in fallback order.
	Models() []string
}

// New creates a new Gemini client with the given configuration.
func New(ctx context.Context, cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(ctx, cfg)
}
