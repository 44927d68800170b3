package agent

import (
	"context"
	"fmt"

	"travel-planning-assistant/pkg/llmprovider"
	"travel-planning-assistant/pkg/log"
)

// SearchAgent turns a travel question into an optimized query and reports
// what it knows about it.
type SearchAgent struct {
	base
}

// NewSearch creates the search agent.
func NewSearch(llm *llmprovider.Manager, l log.Logger, memoryLimit int) *SearchAgent {
	return &SearchAgent{
		base: newBase(
			KindSearch,
			"Search Agent",
			"Web search and information retrieval",
			SystemPromptSearch,
			llm, l, memoryLimit,
		),
	}
}

// Process builds the optimized query for the task's vertical and asks the
// model for findings. The query used is attached to the result so callers
// can show or log it.
func (a *SearchAgent) Process(ctx context.Context, task Task) (Result, error) {
	query := BuildQuery(task.Trip.Destination, task.SearchType)

	prompt := fmt.Sprintf(PromptSearchFindings, query)
	if task.Instruction != "" {
		prompt += "\n\nThe traveler originally asked: " + task.Instruction
	}

	text, err := a.generate(ctx, task, prompt)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Agent: a.name,
		Kind:  a.kind,
		Text:  text,
		Structured: map[string]interface{}{
			StructuredKeyQuery:      query,
			StructuredKeySearchType: string(task.SearchType),
		},
	}, nil
}

// BuildQuery renders the optimized search query for a destination and
// vertical. Unknown verticals get the generic travel-guide query.
func BuildQuery(destination string, searchType SearchType) string {
	switch searchType {
	case SearchAttractions:
		return fmt.Sprintf(QueryAttractions, destination)
	case SearchFlights:
		return fmt.Sprintf(QueryFlights, destination)
	case SearchHotels:
		return fmt.Sprintf(QueryHotels, destination)
	case SearchRestaurants:
		return fmt.Sprintf(QueryRestaurants, destination)
	case SearchActivities:
		return fmt.Sprintf(QueryActivities, destination)
	default:
		return fmt.Sprintf(QueryDefault, destination)
	}
}

var _ Agent = (*SearchAgent)(nil)
