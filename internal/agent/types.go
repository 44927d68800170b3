package agent

import (
	"context"

	"travel-planning-assistant/internal/model"
)

// Kind is the routing identity of an agent. The orchestrator's routing
// table and the recommendation topics both speak in kinds.
type Kind string

const (
	KindPlanning Kind = "planning"
	KindTravel   Kind = "travel"
	KindFinance  Kind = "finance"
	KindSearch   Kind = "search"
)

// Kinds lists every agent kind in registration order.
var Kinds = []Kind{KindPlanning, KindTravel, KindFinance, KindSearch}

// Valid reports whether the kind names a known agent.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// SearchType selects which travel vertical a Travel or Search task targets.
type SearchType string

const (
	SearchFlights     SearchType = "flights"
	SearchHotels      SearchType = "hotels"
	SearchAttractions SearchType = "attractions"
	SearchRestaurants SearchType = "restaurants"
	SearchActivities  SearchType = "activities"
)

// SearchTypes lists the verticals a search can target.
var SearchTypes = []SearchType{SearchFlights, SearchHotels, SearchAttractions, SearchRestaurants, SearchActivities}

// Valid reports whether the search type is a known vertical.
func (s SearchType) Valid() bool {
	for _, known := range SearchTypes {
		if s == known {
			return true
		}
	}
	return false
}

// Task is one unit of work handed to an agent: what to do, for which trip.
// SearchType narrows Travel and Search tasks to a vertical; other agents
// ignore it.
type Task struct {
	Instruction string
	Trip        model.TripContext
	SearchType  SearchType
}

// Result is what an agent hands back to the orchestrator. Structured is
// optional post-processed data (budget breakdown, day map) alongside the
// model's text.
type Result struct {
	Agent      string
	Kind       Kind
	Text       string
	Structured map[string]interface{}
}

// Agent is the capability contract every specialist implements. An agent
// never mutates the TripContext or another agent's state; each Process
// call appends to the agent's own bounded memory.
type Agent interface {
	// Kind returns the routing identity (planning, travel, finance, search).
	Kind() Kind

	// Name returns the display name, e.g. "Planning Agent".
	Name() string

	// Role returns a one-line description of what the agent is for.
	Role() string

	// Process performs the task and returns the recommendation.
	Process(ctx context.Context, task Task) (Result, error)

	// Memory returns the agent's interaction history, oldest first.
	Memory() []MemoryEntry
}

// Registry manages the available agents.
type Registry struct {
	agents map[Kind]Agent
}

// NewRegistry creates a new agent registry.
func NewRegistry() *Registry {
	return &Registry{
		agents: make(map[Kind]Agent),
	}
}

// Register adds an agent to the registry, replacing any previous agent of
// the same kind.
func (r *Registry) Register(a Agent) {
	r.agents[a.Kind()] = a
}

// Get retrieves an agent by kind.
func (r *Registry) Get(kind Kind) (Agent, bool) {
	a, ok := r.agents[kind]
	return a, ok
}

// List returns all registered agents in Kinds order.
func (r *Registry) List() []Agent {
	agents := make([]Agent, 0, len(r.agents))
	for _, kind := range Kinds {
		if a, ok := r.agents[kind]; ok {
			agents = append(agents, a)
		}
	}
	return agents
}
