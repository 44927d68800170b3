package agent

import (
	"context"
	"fmt"

	"travel-planning-assistant/pkg/llmprovider"
	"travel-planning-assistant/pkg/log"
)

// TravelAgent handles flight, hotel and local transportation logistics.
type TravelAgent struct {
	base
}

// NewTravel creates the travel agent.
func NewTravel(llm *llmprovider.Manager, l log.Logger, memoryLimit int) *TravelAgent {
	return &TravelAgent{
		base: newBase(
			KindTravel,
			"Travel Agent",
			"Flights, hotels, and transportation management",
			SystemPromptTravel,
			llm, l, memoryLimit,
		),
	}
}

// Process answers the travel vertical selected by task.SearchType: flights,
// hotels, or (by default) local transportation.
func (a *TravelAgent) Process(ctx context.Context, task Task) (Result, error) {
	trip := task.Trip

	var prompt string
	switch task.SearchType {
	case SearchFlights:
		prompt = fmt.Sprintf(PromptFlights,
			trip.Destination,
			dateOrFlexible(trip.StartDate),
			dateOrFlexible(trip.EndDate),
			trip.Travelers,
			trip.Currency.Format(trip.Budget),
		)
	case SearchHotels:
		prompt = fmt.Sprintf(PromptHotels,
			trip.Destination,
			dateOrFlexible(trip.StartDate),
			dateOrFlexible(trip.EndDate),
			trip.Travelers,
			trip.Currency.Format(trip.Budget),
		)
	default:
		prompt = fmt.Sprintf(PromptTransportation,
			trip.Destination,
			dateOrFlexible(trip.StartDate),
			dateOrFlexible(trip.EndDate),
		)
	}

	if task.Instruction != "" {
		prompt += "\n\nSpecific request: " + task.Instruction
	}

	text, err := a.generate(ctx, task, prompt)
	if err != nil {
		return Result{}, err
	}

	return Result{Agent: a.name, Kind: a.kind, Text: text}, nil
}

var _ Agent = (*TravelAgent)(nil)
