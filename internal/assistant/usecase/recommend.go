package usecase

import (
	"context"
	"fmt"

	"travel-planning-assistant/internal/agent"
	"travel-planning-assistant/internal/assistant"
)

// GetRecommendations is the quick-action path: the topic maps straight to
// one agent, no intent classification involved.
func (uc *implUseCase) GetRecommendations(ctx context.Context, input assistant.RecommendationInput) (assistant.RecommendationOutput, error) {
	if err := uc.requireReady(); err != nil {
		return assistant.RecommendationOutput{}, err
	}
	if !input.Topic.Valid() {
		return assistant.RecommendationOutput{}, fmt.Errorf("%w: %q", assistant.ErrUnknownTopic, input.Topic)
	}
	if err := input.Trip.Validate(); err != nil {
		return assistant.RecommendationOutput{}, fmt.Errorf("%w: %v", assistant.ErrInvalidTrip, err)
	}

	task := agent.Task{Trip: input.Trip}
	if input.Topic == agent.KindTravel {
		// The travel quick action means "how do I get there": flights.
		task.SearchType = agent.SearchFlights
	}

	res, err := uc.runAgent(ctx, input.Topic, task)
	if err != nil {
		return assistant.RecommendationOutput{}, mapModelErr(err)
	}

	uc.l.Infof(ctx, "%s: %s answered for %s", LogPrefixRecommend, res.Agent, input.Trip.Destination)
	return assistant.RecommendationOutput{
		Topic:      input.Topic,
		Agent:      res.Agent,
		Text:       res.Text,
		Structured: res.Structured,
	}, nil
}
