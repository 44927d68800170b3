package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptRouterSystem = `You are the intent router of a travel planning assistant. Analyze the user's message and classify what they want.

Current trip context:
%s

User message: "%s"

Possible intents:
1. itinerary_request: create or rework a day-by-day plan for the trip
2. flight_search: flights to or from the destination
3. hotel_search: hotels or other accommodation
4. budget_question: costs, budgets, spending, saving money
5. attraction_query: sights, museums, activities, things to see or do
6. general_chat: greetings, questions about the assistant, anything else

Also extract slot values when the message mentions them; leave them empty otherwise.

Return JSON with this format:
{
  "intent": "itinerary_request|flight_search|hotel_search|budget_question|attraction_query|general_chat",
  "destination": "destination override if the user names a place different from the trip context",
  "date_start": "YYYY-MM-DD",
  "date_end": "YYYY-MM-DD",
  "amount": 0,
  "confidence": 0-100,
  "reasoning": "one short sentence"
}

Only return valid JSON, no other text.`

	PromptHistoryPrefix = "Recent conversation:\n"
)

// Router configuration
const (
	RouterTemperature        = 0.1
	RouterFallbackIntent     = IntentGeneralChat
	RouterFallbackConfidence = 50
)

// Fallback reasons
const (
	ReasonLLMError      = "fallback: classification call failed, keyword heuristics applied"
	ReasonParsingError  = "fallback: unparseable model output, keyword heuristics applied"
	ReasonKeywordMatch  = "keyword heuristics"
	ReasonNoKeywordHits = "keyword heuristics: no travel keywords matched"
)
