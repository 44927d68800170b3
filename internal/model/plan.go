package model

import (
	"errors"
	"fmt"
)

// Validation errors for CompletePlan.
var (
	ErrEmptyItinerary    = errors.New("itinerary is empty")
	ErrDayOutOfRange     = errors.New("itinerary day out of range")
	ErrMissingActivity   = errors.New("itinerary item has no activity")
	ErrMissingBreakdown  = errors.New("budget breakdown is empty")
	ErrNegativeBreakdown = errors.New("budget breakdown has a negative amount")
)

// ItineraryItem is one scheduled activity of a plan.
type ItineraryItem struct {
	Day      int     `json:"day"`
	Time     string  `json:"time,omitempty"`
	Activity string  `json:"activity"`
	Cost     float64 `json:"cost"`
	Notes    string  `json:"notes,omitempty"`
}

// TravelOption is one way of getting to or around the destination.
type TravelOption struct {
	Type          string  `json:"type"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// CompletePlan is the merged itinerary/budget/travel-options structure the
// multi-agent pipeline produces. Ownership transfers to the caller; the
// orchestrator keeps no copy.
type CompletePlan struct {
	Destination     string             `json:"destination"`
	DurationDays    int                `json:"duration_days"`
	Currency        Currency           `json:"currency"`
	Itinerary       []ItineraryItem    `json:"itinerary"`
	BudgetBreakdown map[string]float64 `json:"budget_breakdown"`
	TravelOptions   []TravelOption     `json:"travel_options,omitempty"`
	Notes           string             `json:"notes,omitempty"`
}

// Validate checks the plan against the trip duration: the itinerary must
// be non-empty with day numbers in [1, duration] and named activities,
// and the budget breakdown must carry non-negative amounts.
func (p CompletePlan) Validate(duration int) error {
	if len(p.Itinerary) == 0 {
		return ErrEmptyItinerary
	}
	for _, item := range p.Itinerary {
		if item.Day < 1 || item.Day > duration {
			return fmt.Errorf("%w: day %d of %d", ErrDayOutOfRange, item.Day, duration)
		}
		if item.Activity == "" {
			return fmt.Errorf("%w: day %d", ErrMissingActivity, item.Day)
		}
	}
	if len(p.BudgetBreakdown) == 0 {
		return ErrMissingBreakdown
	}
	for category, amount := range p.BudgetBreakdown {
		if amount < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeBreakdown, category)
		}
	}
	return nil
}

// BreakdownTotal sums the budget breakdown.
func (p CompletePlan) BreakdownTotal() float64 {
	var total float64
	for _, amount := range p.BudgetBreakdown {
		total += amount
	}
	return total
}

// OverBudget reports whether the breakdown exceeds the given budget.
// Overage is flagged, not rejected — the traveler decides.
func (p CompletePlan) OverBudget(budget float64) bool {
	return p.BreakdownTotal() > budget
}
