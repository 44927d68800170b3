package router

import (
	"context"

	"travel-planning-assistant/internal/model"
	"travel-planning-assistant/pkg/llmprovider"
	"travel-planning-assistant/pkg/log"
)

// Classifier decides which intent a user message carries.
type Classifier interface {
	Classify(ctx context.Context, message string, trip model.TripContext, conversationHistory []string) (Output, error)
}

// SemanticRouter classifies user intent with one LLM call and degrades to
// keyword heuristics whenever the model's output cannot be used. A natural
// language model is not a reliable grammar, so classification never fails
// a turn: SemanticRouter always produces an Output.
type SemanticRouter struct {
	llm *llmprovider.Manager
	l   log.Logger
}

// Ensure SemanticRouter implements Classifier interface
var _ Classifier = (*SemanticRouter)(nil)

// New creates a new SemanticRouter
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(llm *llmprovider.Manager, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm: llm,
		l:   l,
	}
}
