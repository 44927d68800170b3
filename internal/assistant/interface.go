package assistant

import (
	"context"
)

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// StartSession mints a new conversation session with an empty history.
	StartSession(ctx context.Context) (Session, error)

	// Chat processes one user message end to end: classify the intent,
	// consult the routed agents, synthesize a reply, record the turn.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// CreateCompleteItinerary runs the Planning → Travel → Finance pipeline
	// and merges the outputs into a structured plan.
	CreateCompleteItinerary(ctx context.Context, input ItineraryInput) (ItineraryOutput, error)

	// GetRecommendations returns one agent's take on the trip, skipping
	// intent classification.
	GetRecommendations(ctx context.Context, input RecommendationInput) (RecommendationOutput, error)

	// SearchAndSummarize runs the search agent and condenses its findings.
	SearchAndSummarize(ctx context.Context, input SearchInput) (SearchOutput, error)

	// Status reports the orchestrator lifecycle state.
	Status() Status
}
