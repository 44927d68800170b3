package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"travel-planning-assistant/internal/agent"
	"travel-planning-assistant/internal/assistant"
	"travel-planning-assistant/internal/model"
	"travel-planning-assistant/pkg/gemini"
	"travel-planning-assistant/pkg/llmprovider"
)

// CreateCompleteItinerary runs the fixed Planning → Travel → Finance
// pipeline (Travel and Finance see Planning's draft), then merges the
// drafts into the structured plan schema. The raw sections are returned
// alongside the plan — and still returned when the merge fails, so the
// caller is never left with nothing.
func (uc *implUseCase) CreateCompleteItinerary(ctx context.Context, input assistant.ItineraryInput) (assistant.ItineraryOutput, error) {
	if err := uc.requireReady(); err != nil {
		return assistant.ItineraryOutput{}, err
	}
	if err := input.Trip.Validate(); err != nil {
		return assistant.ItineraryOutput{}, fmt.Errorf("%w: %v", assistant.ErrInvalidTrip, err)
	}
	if !input.Trip.HasDates() {
		// A day-by-day plan needs a day count.
		return assistant.ItineraryOutput{}, fmt.Errorf("%w: %v", assistant.ErrInvalidTrip, model.ErrMissingDates)
	}

	trip := input.Trip
	sections := make(map[string]string, 3)

	planRes, err := uc.runAgent(ctx, agent.KindPlanning, agent.Task{Trip: trip})
	if err != nil {
		return assistant.ItineraryOutput{Sections: sections}, mapModelErr(err)
	}
	sections[SectionItinerary] = planRes.Text

	draft := PromptDraftPrefix + planRes.Text

	travelRes, err := uc.runAgent(ctx, agent.KindTravel, agent.Task{
		Trip:        trip,
		SearchType:  agent.SearchFlights,
		Instruction: draft,
	})
	if err != nil {
		return assistant.ItineraryOutput{Sections: sections}, mapModelErr(err)
	}
	sections[SectionTravelOptions] = travelRes.Text

	financeRes, err := uc.runAgent(ctx, agent.KindFinance, agent.Task{
		Trip:        trip,
		Instruction: draft,
	})
	if err != nil {
		return assistant.ItineraryOutput{Sections: sections}, mapModelErr(err)
	}
	sections[SectionBudgetPlan] = financeRes.Text

	plan, err := uc.mergePlan(ctx, trip, sections)
	if err != nil {
		return assistant.ItineraryOutput{Sections: sections}, err
	}

	uc.l.Infof(ctx, "%s: plan for %s merged, %d itinerary items", LogPrefixItinerary, trip.Destination, len(plan.Itinerary))
	return assistant.ItineraryOutput{
		Plan:       plan,
		OverBudget: plan.OverBudget(trip.Budget),
		Sections:   sections,
	}, nil
}

// mergePlan asks the model to fold the pipeline sections into the plan
// schema. A parse or validation failure earns one retry with a stricter
// instruction; a second failure is ErrPlanGeneration. Chain exhaustion is
// not retried — the chain is already down.
func (uc *implUseCase) mergePlan(ctx context.Context, trip model.TripContext, sections map[string]string) (model.CompletePlan, error) {
	prompt := fmt.Sprintf(PromptMerge,
		trip.Destination,
		trip.PromptJSON(),
		sections[SectionItinerary],
		sections[SectionTravelOptions],
		sections[SectionBudgetPlan],
		trip.Duration(),
	)

	plan, err := uc.requestPlan(ctx, prompt, trip)
	if err == nil {
		return plan, nil
	}
	if isExhausted(err) {
		return model.CompletePlan{}, mapModelErr(err)
	}

	uc.l.Warnf(ctx, "%s: merge rejected, retrying with strict instruction: %v", LogPrefixItinerary, err)
	plan, err = uc.requestPlan(ctx, prompt+PromptMergeStrictSuffix, trip)
	if err == nil {
		return plan, nil
	}
	if isExhausted(err) {
		return model.CompletePlan{}, mapModelErr(err)
	}
	return model.CompletePlan{}, fmt.Errorf("%w: %v", assistant.ErrPlanGeneration, err)
}

// requestPlan makes one merge call and parses and validates the reply.
func (uc *implUseCase) requestPlan(ctx context.Context, prompt string, trip model.TripContext) (model.CompletePlan, error) {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: SystemPromptAssistant,
		Messages: []llmprovider.Message{
			{Role: gemini.RoleUser, Text: prompt},
		},
		Temperature: MergeTemperature,
	})
	uc.noteModelOutcome(err)
	if err != nil {
		return model.CompletePlan{}, err
	}

	cleaned := sanitizeJSONResponse(resp.Text)

	var plan model.CompletePlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return model.CompletePlan{}, fmt.Errorf("parse plan JSON: %w", err)
	}

	normalizePlan(&plan, trip)
	if err := plan.Validate(trip.Duration()); err != nil {
		return model.CompletePlan{}, fmt.Errorf("validate plan: %w", err)
	}
	return plan, nil
}

// normalizePlan fills identity fields the model commonly leaves out; the
// itinerary and breakdown themselves are the model's job and stay checked.
func normalizePlan(plan *model.CompletePlan, trip model.TripContext) {
	if plan.Destination == "" {
		plan.Destination = trip.Destination
	}
	if plan.DurationDays == 0 {
		plan.DurationDays = trip.Duration()
	}
	if plan.Currency == "" {
		plan.Currency = trip.Currency
	}
}
