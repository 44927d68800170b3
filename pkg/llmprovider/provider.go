package llmprovider

import "context"

// Provider is a single model endpoint in the fallback chain. All providers
// share the normalized Request/Response types so the Manager can walk the
// chain without caring which concrete model serves the call.
type Provider interface {
	// GenerateContent sends the request to the underlying model and returns
	// the generated text.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the backend family, e.g. "gemini".
	Name() string

	// Model returns the concrete model identifier this provider is bound to,
	// e.g. "gemini-2.5-flash".
	Model() string
}

// Request is the provider-agnostic generation request.
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float32
	MaxTokens         int32
}

// Message is a single conversational turn.
type Message struct {
	Role string
	Text string
}

// Response is the provider-agnostic generation result.
type Response struct {
	Text     string
	Provider string
	Model    string
	Usage    *Usage
}

// Usage reports token accounting for a single call when the backend
// provides it.
type Usage struct {
	InputTokens  int32
	OutputTokens int32
	TotalTokens  int32
}
