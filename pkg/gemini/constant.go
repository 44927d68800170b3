package gemini

import "time"

// Conversation roles recognized by the Gemini API.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// DefaultModels is the ordered fallback chain, stable versions first.
var DefaultModels = []string{
	"gemini-2.5-flash",
	"gemini-2.0-flash-001",
	"gemini-flash-latest",
	"gemini-2.5-pro",
	"gemini-pro-latest",
}

const (
	// DefaultTimeout is the per-call guard applied when the caller's
	// context has no deadline.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxOutputTokens caps responses that set no explicit limit.
	DefaultMaxOutputTokens = 4096
)
