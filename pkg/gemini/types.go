package gemini

import "time"

// Config holds the client configuration.
type Config struct {
	// APIKey authenticates against the Gemini API. Required.
	APIKey string

	// Models is the ordered fallback chain of model IDs.
	// Defaults to DefaultModels when empty.
	Models []string

	// Timeout guards individual calls when the caller's context
	// carries no deadline. Defaults to DefaultTimeout.
	Timeout time.Duration

	// MaxOutputTokens caps response length when the request does not
	// set its own. Defaults to DefaultMaxOutputTokens.
	MaxOutputTokens int32
}

// Validate checks required fields and applies defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if len(c.Models) == 0 {
		c.Models = append(c.Models, DefaultModels...)
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxOutputTokens <= 0 {
		c.MaxOutputTokens = DefaultMaxOutputTokens
	}
	return nil
}

// Request is a single generation request against one model.
type Request struct {
	Model             string
	SystemInstruction string
	Messages          []Message
	Temperature       float32
	MaxOutputTokens   int32
}

// Message is one turn of a conversation.
type Message struct {
	Role string // RoleUser or RoleModel
	Text string
}

// Response is the normalized generation result.
type Response struct {
	Text  string
	Model string
	Usage *Usage
}

// Usage tracks token consumption for one call.
type Usage struct {
	InputTokens  int32
	OutputTokens int32
	TotalTokens  int32
}
