package http

import (
	"travel-planning-assistant/internal/agent"
	"travel-planning-assistant/internal/assistant"
	"travel-planning-assistant/internal/model"
	"travel-planning-assistant/pkg/response"
)

// --- Request DTOs ---

// tripReq is the trip context every assistant operation carries. Dates
// bind as response.Date (YYYY-MM-DD); travelers and currency fall back to
// 1 and USD. The delivery layer checks shape only, semantic validation
// lives in the domain.
type tripReq struct {
	Origin      string        `json:"origin"      binding:"max=120"`
	Destination string        `json:"destination" binding:"required,min=1,max=120"`
	StartDate   response.Date `json:"start_date"  swaggertype:"string"`
	EndDate     response.Date `json:"end_date"    swaggertype:"string"`
	Travelers   int           `json:"travelers"   binding:"omitempty,min=1,max=50"`
	Budget      float64       `json:"budget"      binding:"omitempty,min=0"`
	Currency    string        `json:"currency"`
}

func (r tripReq) toModel() model.TripContext {
	trip := model.TripContext{
		Origin:      r.Origin,
		Destination: r.Destination,
		StartDate:   r.StartDate.Time(),
		EndDate:     r.EndDate.Time(),
		Travelers:   r.Travelers,
		Budget:      r.Budget,
		Currency:    model.Currency(r.Currency),
	}
	if trip.Travelers == 0 {
		trip.Travelers = 1
	}
	if trip.Currency == "" {
		trip.Currency = model.CurrencyUSD
	}
	return trip
}

// ---

type chatReq struct {
	SessionID string  `json:"session_id"`
	Message   string  `json:"message" binding:"required"`
	Trip      tripReq `json:"trip"    binding:"required"`
}

func (r chatReq) toInput() assistant.ChatInput {
	return assistant.ChatInput{
		SessionID: r.SessionID,
		Message:   r.Message,
		Trip:      r.Trip.toModel(),
	}
}

// ---

type itineraryReq struct {
	Trip tripReq `json:"trip" binding:"required"`
}

func (r itineraryReq) toInput() assistant.ItineraryInput {
	return assistant.ItineraryInput{Trip: r.Trip.toModel()}
}

// ---

type recommendationReq struct {
	Topic string  `json:"topic" binding:"required"`
	Trip  tripReq `json:"trip"  binding:"required"`
}

func (r recommendationReq) toInput() assistant.RecommendationInput {
	return assistant.RecommendationInput{
		Topic: agent.Kind(r.Topic),
		Trip:  r.Trip.toModel(),
	}
}

// ---

type searchReq struct {
	Query      string  `json:"query" binding:"required"`
	SearchType string  `json:"search_type"`
	Trip       tripReq `json:"trip"  binding:"required"`
}

func (r searchReq) toInput() assistant.SearchInput {
	return assistant.SearchInput{
		Query:      r.Query,
		SearchType: agent.SearchType(r.SearchType),
		Trip:       r.Trip.toModel(),
	}
}

// --- Response DTOs ---

type sessionResp struct {
	SessionID string            `json:"session_id"`
	CreatedAt response.DateTime `json:"created_at" swaggertype:"string"`
}

func (h *handler) newSessionResp(out assistant.Session) sessionResp {
	return sessionResp{
		SessionID: out.ID,
		CreatedAt: response.DateTime(out.CreatedAt),
	}
}

type chatResp struct {
	SessionID       string   `json:"session_id"`
	Reply           string   `json:"reply"`
	Intent          string   `json:"intent"`
	AgentsConsulted []string `json:"agents_consulted"`
	AgentsFailed    []string `json:"agents_failed,omitempty"`
}

func (h *handler) newChatResp(out assistant.ChatOutput) chatResp {
	return chatResp{
		SessionID:       out.SessionID,
		Reply:           out.Reply,
		Intent:          string(out.Intent),
		AgentsConsulted: out.AgentsConsulted,
		AgentsFailed:    out.AgentsFailed,
	}
}

type itineraryResp struct {
	Plan       model.CompletePlan `json:"plan"`
	OverBudget bool               `json:"over_budget"`
	Sections   map[string]string  `json:"sections"`
}

func (h *handler) newItineraryResp(out assistant.ItineraryOutput) itineraryResp {
	return itineraryResp{
		Plan:       out.Plan,
		OverBudget: out.OverBudget,
		Sections:   out.Sections,
	}
}

type recommendationResp struct {
	Topic          string                 `json:"topic"`
	Agent          string                 `json:"agent"`
	Recommendation string                 `json:"recommendation"`
	Structured     map[string]interface{} `json:"structured,omitempty"`
}

func (h *handler) newRecommendationResp(out assistant.RecommendationOutput) recommendationResp {
	return recommendationResp{
		Topic:          string(out.Topic),
		Agent:          out.Agent,
		Recommendation: out.Text,
		Structured:     out.Structured,
	}
}

type searchResp struct {
	Query      string `json:"query"`
	SearchType string `json:"search_type,omitempty"`
	Summary    string `json:"summary"`
}

func (h *handler) newSearchResp(out assistant.SearchOutput) searchResp {
	return searchResp{
		Query:      out.Query,
		SearchType: string(out.SearchType),
		Summary:    out.Summary,
	}
}
