package usecase

import "time"

// Log prefixes
const (
	LogPrefixNew          = "internal.assistant.usecase.New"
	LogPrefixStartSession = "internal.assistant.usecase.StartSession"
	LogPrefixChat         = "internal.assistant.usecase.Chat"
	LogPrefixInvokeAgents = "internal.assistant.usecase.invokeAgents"
	LogPrefixItinerary    = "internal.assistant.usecase.CreateCompleteItinerary"
	LogPrefixRecommend    = "internal.assistant.usecase.GetRecommendations"
	LogPrefixSearch       = "internal.assistant.usecase.SearchAndSummarize"
)

// Session and history bounds
const (
	DefaultHistoryLimit = 10               // turns kept per session
	DefaultSessionTTL   = 30 * time.Minute // idle lifetime before eviction
	DefaultMaxSessions  = 512              // LRU capacity of the session store
)

// Generation settings
const (
	ChatTemperature    = 0.7 // conversational synthesis
	MergeTemperature   = 0.2 // low temperature for deterministic JSON output
	SummaryTemperature = 0.3 // factual condensation

	SummaryMaxTokens = 1024
	SummaryWordLimit = 250
)

// System prompt shared by the synthesis, merge and summary calls.
const SystemPromptAssistant = `You are a helpful travel planning assistant with access to specialized agents for planning, travel logistics, finance and search. Be specific, practical, and include actionable recommendations.`

// Synthesis prompt: trip context, agent findings (may be empty), then the
// user's message. Recent turns ride along as real conversation messages,
// not inside this prompt.
const PromptChat = `Travel Context:
%s

%sUser message: %s

Use the agent findings above when they are present; do not invent findings for agents that did not answer. Provide a comprehensive response.`

// PromptAgentFindingsHeader opens the per-agent findings block.
const PromptAgentFindingsHeader = "Specialist agent findings:\n\n"

// PromptMerge asks the model to fold the three pipeline drafts into the
// structured plan schema.
const PromptMerge = `Merge the following drafts into one complete travel plan for %s.

Trip details:
%s

-- Draft itinerary (Planning Agent) --
%s

-- Travel options (Travel Agent) --
%s

-- Budget plan (Finance Agent) --
%s

Return JSON with this format:
{
  "destination": "string",
  "duration_days": 0,
  "currency": "USD",
  "itinerary": [{"day": 1, "time": "09:00", "activity": "string", "cost": 0, "notes": "string"}],
  "budget_breakdown": {"accommodation": 0, "food": 0, "activities": 0, "transportation": 0, "emergency": 0},
  "travel_options": [{"type": "flight", "description": "string", "estimated_cost": 0}],
  "notes": "string"
}

Every itinerary day must be between 1 and %d. Only return valid JSON, no other text.`

// PromptMergeStrictSuffix hardens the merge prompt for the single retry
// after a parse or validation failure.
const PromptMergeStrictSuffix = `

Return ONLY valid JSON matching the schema. No markdown, no commentary.`

// PromptSummary condenses search findings for the traveler.
const PromptSummary = `Based on a search for "%s", provide a comprehensive summary of what travelers should know.

Findings:
%s

Include:
1. Key information and highlights
2. Practical tips and recommendations
3. Important details to consider
4. Estimated costs if relevant

Keep it under %d words. Be specific and helpful.`

// PromptDraftPrefix hands Planning's draft to the later pipeline stages.
const PromptDraftPrefix = "Draft itinerary for reference:\n"

// Section keys of ItineraryOutput.Sections.
const (
	SectionItinerary     = "itinerary"
	SectionTravelOptions = "travel_options"
	SectionBudgetPlan    = "budget_plan"
)
