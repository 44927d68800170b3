package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Currency is an ISO 4217 code the planner can budget in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyINR Currency = "INR"
	CurrencyJPY Currency = "JPY"
	CurrencyAUD Currency = "AUD"
	CurrencyCAD Currency = "CAD"
)

// Currencies lists the supported codes in display order.
var Currencies = []Currency{
	CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyINR,
	CurrencyJPY, CurrencyAUD, CurrencyCAD,
}

// Valid reports whether c is a supported currency code.
func (c Currency) Valid() bool {
	for _, cur := range Currencies {
		if c == cur {
			return true
		}
	}
	return false
}

// Format renders an amount with the currency code prefix, e.g. "USD 400.00".
func (c Currency) Format(amount float64) string {
	return fmt.Sprintf("%s %.2f", c, amount)
}

// Validation errors for TripContext.
var (
	ErrMissingDestination = errors.New("destination is required")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
	ErrMissingDates       = errors.New("start and end dates are required")
	ErrInvalidTravelers   = errors.New("travelers must be at least 1")
	ErrInvalidBudget      = errors.New("budget must not be negative")
	ErrUnknownCurrency    = errors.New("unknown currency")
)

// TripContext carries the caller-supplied trip parameters. It is owned by
// the presentation layer and passed by value into every orchestrator call;
// nothing in the core mutates it.
type TripContext struct {
	Origin      string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Travelers   int
	Budget      float64
	Currency    Currency
}

// Validate checks the trip invariants. Dates are optional as a pair: a
// request may plan without fixed dates, but when one date is set the
// other must be too, and the range must not be inverted.
func (t TripContext) Validate() error {
	if t.Destination == "" {
		return ErrMissingDestination
	}
	if t.StartDate.IsZero() != t.EndDate.IsZero() {
		return ErrMissingDates
	}
	if t.HasDates() && t.EndDate.Before(t.StartDate) {
		return ErrInvalidDateRange
	}
	if t.Travelers < 1 {
		return ErrInvalidTravelers
	}
	if t.Budget < 0 {
		return ErrInvalidBudget
	}
	if !t.Currency.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCurrency, t.Currency)
	}
	return nil
}

// HasDates reports whether the trip has a concrete date range.
func (t TripContext) HasDates() bool {
	return !t.StartDate.IsZero() && !t.EndDate.IsZero()
}

// Duration returns the trip length in days, counting both endpoints:
// a trip from March 1 to March 5 lasts 5 days. Zero without dates.
func (t TripContext) Duration() int {
	if !t.HasDates() {
		return 0
	}
	return int(t.EndDate.Sub(t.StartDate).Hours()/24) + 1
}

// DailyBudget returns the budget per day, or the whole budget when the
// trip has no dates yet.
func (t TripContext) DailyBudget() float64 {
	d := t.Duration()
	if d <= 0 {
		return t.Budget
	}
	return t.Budget / float64(d)
}

// PromptJSON renders the trip as the indented JSON block agents and the
// intent router embed in their prompts.
func (t TripContext) PromptJSON() string {
	view := struct {
		Origin      string  `json:"origin,omitempty"`
		Destination string  `json:"destination"`
		StartDate   string  `json:"start_date,omitempty"`
		EndDate     string  `json:"end_date,omitempty"`
		Duration    int     `json:"duration_days,omitempty"`
		Travelers   int     `json:"travelers"`
		Budget      float64 `json:"budget"`
		Currency    string  `json:"currency"`
	}{
		Origin:      t.Origin,
		Destination: t.Destination,
		Duration:    t.Duration(),
		Travelers:   t.Travelers,
		Budget:      t.Budget,
		Currency:    string(t.Currency),
	}
	if t.HasDates() {
		view.StartDate = t.StartDate.Format(DateLayout)
		view.EndDate = t.EndDate.Format(DateLayout)
	}

	b, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}

// DateLayout is the wire format for trip dates.
const DateLayout = "2006-01-02"
