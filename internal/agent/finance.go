package agent

import (
	"context"
	"fmt"
	"strings"

	"travel-planning-assistant/internal/model"
	"travel-planning-assistant/pkg/llmprovider"
	"travel-planning-assistant/pkg/log"
)

// FinanceAgent plans budgets and looks for savings. Its breakdown numbers
// are computed here, not by the model, so they always add up.
type FinanceAgent struct {
	base
}

// NewFinance creates the finance agent.
func NewFinance(llm *llmprovider.Manager, l log.Logger, memoryLimit int) *FinanceAgent {
	return &FinanceAgent{
		base: newBase(
			KindFinance,
			"Finance Agent",
			"Budget planning and expense tracking",
			SystemPromptFinance,
			llm, l, memoryLimit,
		),
	}
}

// Process asks for budget guidance and attaches the deterministic
// breakdown and daily budget to the result.
func (a *FinanceAgent) Process(ctx context.Context, task Task) (Result, error) {
	trip := task.Trip

	days := trip.Duration()
	if days == 0 {
		days = 1
	}

	prompt := fmt.Sprintf(PromptFinance,
		trip.Destination,
		trip.Currency.Format(trip.Budget),
		days,
		trip.Travelers,
		trip.Currency.Format(trip.DailyBudget()),
		trip.Destination,
	)
	if task.Instruction != "" {
		prompt += "\n\nSpecific request: " + task.Instruction
	}

	text, err := a.generate(ctx, task, prompt)
	if err != nil {
		return Result{}, err
	}

	breakdown := BudgetBreakdown(trip.Budget)
	daily := trip.DailyBudget()

	return Result{
		Agent: a.name,
		Kind:  a.kind,
		Text:  text + "\n\n" + formatBreakdown(breakdown, daily, trip.Currency),
		Structured: map[string]interface{}{
			StructuredKeyBudgetBreakdown: breakdown,
			StructuredKeyDailyBudget:     daily,
		},
	}, nil
}

// BudgetBreakdown allocates a total budget across the standard categories:
// accommodation 35%, food 25%, activities 20%, transportation 15%,
// emergency 5%.
func BudgetBreakdown(total float64) map[string]float64 {
	return map[string]float64{
		CategoryAccommodation:  total * ShareAccommodation,
		CategoryFood:           total * ShareFood,
		CategoryActivities:     total * ShareActivities,
		CategoryTransportation: total * ShareTransportation,
		CategoryEmergency:      total * ShareEmergency,
	}
}

func formatBreakdown(breakdown map[string]float64, daily float64, currency model.Currency) string {
	var b strings.Builder
	b.WriteString("Recommended allocation:\n")
	for _, category := range BreakdownCategories {
		fmt.Fprintf(&b, "- %s: %s\n", category, currency.Format(breakdown[category]))
	}
	fmt.Fprintf(&b, "Daily budget: %s", currency.Format(daily))
	return b.String()
}

var _ Agent = (*FinanceAgent)(nil)
