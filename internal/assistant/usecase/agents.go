package usecase

import (
	"context"
	"fmt"

	"travel-planning-assistant/internal/agent"
	"travel-planning-assistant/internal/model"
	"travel-planning-assistant/internal/router"
)

// route is one routing-table entry: which agent to consult and how to
// shape its task. A nil condition means always.
type route struct {
	kind       agent.Kind
	searchType agent.SearchType
	condition  func(model.TripContext) bool
}

// routingTable statically maps each intent to the agents that serve it, in
// invocation order. general_chat maps to none: synthesis answers directly.
var routingTable = map[router.Intent][]route{
	router.IntentItineraryRequest: {
		{kind: agent.KindPlanning},
		{kind: agent.KindTravel, searchType: agent.SearchFlights, condition: model.TripContext.HasDates},
		{kind: agent.KindFinance},
	},
	router.IntentFlightSearch: {
		{kind: agent.KindTravel, searchType: agent.SearchFlights},
		{kind: agent.KindSearch, searchType: agent.SearchFlights},
	},
	router.IntentHotelSearch: {
		{kind: agent.KindTravel, searchType: agent.SearchHotels},
		{kind: agent.KindSearch, searchType: agent.SearchHotels},
	},
	router.IntentBudgetQuestion: {
		{kind: agent.KindFinance},
	},
	router.IntentAttractionQuery: {
		{kind: agent.KindPlanning},
		{kind: agent.KindSearch, searchType: agent.SearchAttractions},
	},
	router.IntentGeneralChat: nil,
}

// agentOutcome is one agent's contribution to a turn, successful or not.
type agentOutcome struct {
	Agent  string
	Kind   agent.Kind
	Result agent.Result
	Err    error
}

// invokeAgents consults the routed agents strictly sequentially. Failures
// are collected, not propagated: one agent's failure degrades the turn,
// never aborts it.
func (uc *implUseCase) invokeAgents(ctx context.Context, intent router.Intent, message string, trip model.TripContext) []agentOutcome {
	routes := routingTable[intent]
	outcomes := make([]agentOutcome, 0, len(routes))

	for _, rt := range routes {
		if rt.condition != nil && !rt.condition(trip) {
			continue
		}

		a, ok := uc.registry.Get(rt.kind)
		if !ok {
			uc.l.Warnf(ctx, "%s: no %s agent registered", LogPrefixInvokeAgents, rt.kind)
			continue
		}

		res, err := a.Process(ctx, agent.Task{
			Instruction: message,
			Trip:        trip,
			SearchType:  rt.searchType,
		})
		uc.noteModelOutcome(err)
		if err != nil {
			uc.l.Warnf(ctx, "%s: %s failed, continuing without it: %v", LogPrefixInvokeAgents, a.Name(), err)
			outcomes = append(outcomes, agentOutcome{Agent: a.Name(), Kind: rt.kind, Err: err})
			continue
		}

		outcomes = append(outcomes, agentOutcome{Agent: a.Name(), Kind: rt.kind, Result: res})
	}

	return outcomes
}

// runAgent dispatches one task to one agent by kind. Unlike invokeAgents
// it propagates the error: pipeline stages and direct operations need it.
func (uc *implUseCase) runAgent(ctx context.Context, kind agent.Kind, task agent.Task) (agent.Result, error) {
	a, ok := uc.registry.Get(kind)
	if !ok {
		return agent.Result{}, fmt.Errorf("no %s agent registered", kind)
	}

	res, err := a.Process(ctx, task)
	uc.noteModelOutcome(err)
	return res, err
}
