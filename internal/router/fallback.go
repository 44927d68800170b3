package router

import "strings"

// keywordGroups maps each intent to the trigger words the fallback scans
// for. Order matters: budget questions are checked first because money
// words ("cost", "spend") often appear inside planning requests too, and
// a user asking about cost wants the finance answer. "plan my" instead of
// bare "plan" keeps "plane" from matching the itinerary group.
var keywordGroups = []struct {
	intent   Intent
	keywords []string
}{
	{IntentBudgetQuestion, []string{"budget", "cost", "cheap", "money", "spend"}},
	{IntentItineraryRequest, []string{"itinerary", "plan my", "day-by-day", "day by day"}},
	{IntentFlightSearch, []string{"flight", "fly"}},
	{IntentHotelSearch, []string{"hotel", "stay", "accommodation"}},
	{IntentAttractionQuery, []string{"attraction", "see", "museum", "visit"}},
}

// Fallback classifies text by keyword matching. It backstops the semantic
// router whenever the model is unreachable or returns something that does
// not parse, so it must always produce a usable Output.
func Fallback(text string) Output {
	lowered := strings.ToLower(text)

	// An intent label embedded in the text wins outright; malformed model
	// replies commonly still contain the label they meant to return.
	for _, intent := range Intents {
		if strings.Contains(lowered, string(intent)) {
			return Output{
				Intent:     intent,
				Confidence: RouterFallbackConfidence,
				Reasoning:  ReasonKeywordMatch,
			}
		}
	}

	for _, group := range keywordGroups {
		for _, kw := range group.keywords {
			if strings.Contains(lowered, kw) {
				return Output{
					Intent:     group.intent,
					Confidence: RouterFallbackConfidence,
					Reasoning:  ReasonKeywordMatch,
				}
			}
		}
	}

	return Output{
		Intent:     RouterFallbackIntent,
		Confidence: RouterFallbackConfidence,
		Reasoning:  ReasonNoKeywordHits,
	}
}
