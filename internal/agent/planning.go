package agent

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"travel-planning-assistant/pkg/llmprovider"
	"travel-planning-assistant/pkg/log"
)

// PlanningAgent researches destinations and builds day-by-day itineraries.
type PlanningAgent struct {
	base
}

// NewPlanning creates the planning agent.
func NewPlanning(llm *llmprovider.Manager, l log.Logger, memoryLimit int) *PlanningAgent {
	return &PlanningAgent{
		base: newBase(
			KindPlanning,
			"Planning Agent",
			"Destination research and itinerary planning",
			SystemPromptPlanning,
			llm, l, memoryLimit,
		),
	}
}

// Process asks for a structured itinerary and post-processes the reply
// into per-day blocks.
func (a *PlanningAgent) Process(ctx context.Context, task Task) (Result, error) {
	trip := task.Trip

	days := trip.Duration()
	if days == 0 {
		days = 1
	}

	prompt := fmt.Sprintf(PromptItinerary, days, trip.Destination, trip.PromptJSON())
	if task.Instruction != "" {
		prompt += "\n\nSpecific request: " + task.Instruction
	}

	text, err := a.generate(ctx, task, prompt)
	if err != nil {
		return Result{}, err
	}

	result := Result{Agent: a.name, Kind: a.kind, Text: text}
	if byDay := structureByDay(text); len(byDay) > 0 {
		result.Structured = map[string]interface{}{StructuredKeyDays: byDay}
	}
	return result, nil
}

// dayHeading matches itinerary day headings like "Day 3", "## Day 3" or
// "**Day 3**" at the start of a line.
var dayHeading = regexp.MustCompile(`(?im)^\s*(?:#+\s*|\*\*\s*)?day\s+(\d+)`)

// structureByDay splits itinerary text into blocks keyed by day number.
// Returns nil when the text carries no recognizable day headings.
func structureByDay(text string) map[int]string {
	matches := dayHeading.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	byDay := make(map[int]string, len(matches))
	for i, m := range matches {
		day, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil || day < 1 {
			continue
		}
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		byDay[day] = strings.TrimSpace(text[m[0]:end])
	}
	return byDay
}

var _ Agent = (*PlanningAgent)(nil)
