package assistant

import (
	"time"

	"travel-planning-assistant/internal/agent"
	"travel-planning-assistant/internal/model"
	"travel-planning-assistant/internal/router"
)

// Status is the orchestrator lifecycle state.
type Status string

const (
	// StatusUninitialized means New has not finished yet.
	StatusUninitialized Status = "UNINITIALIZED"
	// StatusReady means the connectivity probe passed and the last model
	// call (if any) succeeded.
	StatusReady Status = "READY"
	// StatusDegraded means the last model call exhausted the chain; the
	// assistant keeps serving and recovers on the next success.
	StatusDegraded Status = "DEGRADED"
	// StatusFailed means the bootstrap probe exhausted the chain; every
	// operation refuses without making network calls.
	StatusFailed Status = "FAILED"
)

// Turn roles in a session history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one utterance in a conversation.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Session is a point-in-time snapshot of one conversation.
type Session struct {
	ID         string    `json:"id"`
	History    []Turn    `json:"history"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
}

// ChatInput is one user message plus the trip it is about. An unknown or
// empty SessionID starts a fresh session.
type ChatInput struct {
	SessionID string
	Message   string
	Trip      model.TripContext
}

// ChatOutput is the synthesized reply plus routing metadata.
type ChatOutput struct {
	SessionID       string
	Reply           string
	Intent          router.Intent
	AgentsConsulted []string // agents that produced output for this turn
	AgentsFailed    []string // agents that were routed to but errored
}

// ItineraryInput asks for a complete plan for one trip.
type ItineraryInput struct {
	Trip model.TripContext
}

// ItineraryOutput carries the merged plan plus the raw per-stage sections.
// Sections survive even when the merge fails, so callers are never left
// with nothing.
type ItineraryOutput struct {
	Plan       model.CompletePlan
	OverBudget bool
	Sections   map[string]string
}

// RecommendationInput selects which agent's perspective to ask for.
type RecommendationInput struct {
	Topic agent.Kind
	Trip  model.TripContext
}

// RecommendationOutput is a single agent's recommendation.
type RecommendationOutput struct {
	Topic      agent.Kind
	Agent      string
	Text       string
	Structured map[string]interface{}
}

// SearchInput is a free-form travel question, optionally narrowed to a
// vertical.
type SearchInput struct {
	Query      string
	SearchType agent.SearchType
	Trip       model.TripContext
}

// SearchOutput is the summarized answer plus the optimized query used.
type SearchOutput struct {
	Query      string
	SearchType agent.SearchType
	Summary    string
}
