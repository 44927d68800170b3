package usecase

import (
	"context"
	"fmt"
	"strings"

	"travel-planning-assistant/internal/agent"
	"travel-planning-assistant/internal/assistant"
	"travel-planning-assistant/pkg/gemini"
	"travel-planning-assistant/pkg/llmprovider"
)

// SearchAndSummarize runs the search agent on the query, then condenses
// its findings into a bounded summary.
func (uc *implUseCase) SearchAndSummarize(ctx context.Context, input assistant.SearchInput) (assistant.SearchOutput, error) {
	if err := uc.requireReady(); err != nil {
		return assistant.SearchOutput{}, err
	}
	if strings.TrimSpace(input.Query) == "" {
		return assistant.SearchOutput{}, assistant.ErrEmptyQuery
	}
	if input.SearchType != "" && !input.SearchType.Valid() {
		return assistant.SearchOutput{}, fmt.Errorf("%w: %q", assistant.ErrUnknownSearchType, input.SearchType)
	}
	if err := input.Trip.Validate(); err != nil {
		return assistant.SearchOutput{}, fmt.Errorf("%w: %v", assistant.ErrInvalidTrip, err)
	}

	res, err := uc.runAgent(ctx, agent.KindSearch, agent.Task{
		Instruction: input.Query,
		Trip:        input.Trip,
		SearchType:  input.SearchType,
	})
	if err != nil {
		return assistant.SearchOutput{}, mapModelErr(err)
	}

	query, _ := res.Structured[agent.StructuredKeyQuery].(string)

	prompt := fmt.Sprintf(PromptSummary, input.Query, res.Text, SummaryWordLimit)
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: SystemPromptAssistant,
		Messages: []llmprovider.Message{
			{Role: gemini.RoleUser, Text: prompt},
		},
		Temperature: SummaryTemperature,
		MaxTokens:   SummaryMaxTokens,
	})
	uc.noteModelOutcome(err)
	if err != nil {
		return assistant.SearchOutput{}, mapModelErr(err)
	}

	uc.l.Infof(ctx, "%s: summarized %q", LogPrefixSearch, query)
	return assistant.SearchOutput{
		Query:      query,
		SearchType: input.SearchType,
		Summary:    resp.Text,
	}, nil
}
