package router

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentItineraryRequest Intent = "itinerary_request"
	IntentFlightSearch     Intent = "flight_search"
	IntentHotelSearch      Intent = "hotel_search"
	IntentBudgetQuestion   Intent = "budget_question"
	IntentAttractionQuery  Intent = "attraction_query"
	IntentGeneralChat      Intent = "general_chat"
)

// Intents lists every intent the router can produce, in the order the
// keyword fallback scans for intent labels.
var Intents = []Intent{
	IntentItineraryRequest,
	IntentFlightSearch,
	IntentHotelSearch,
	IntentBudgetQuestion,
	IntentAttractionQuery,
	IntentGeneralChat,
}

// Valid reports whether the intent is one the router knows.
func (i Intent) Valid() bool {
	for _, known := range Intents {
		if i == known {
			return true
		}
	}
	return false
}

// Output is the structured classification result: the intent plus the
// slot values the model extracted from the message. Slots are advisory —
// empty means the message did not override the trip context.
type Output struct {
	Intent      Intent  `json:"intent"`
	Destination string  `json:"destination"` // destination override
	DateStart   string  `json:"date_start"`  // YYYY-MM-DD, as written by the model
	DateEnd     string  `json:"date_end"`
	Amount      float64 `json:"amount"`     // money amount mentioned, 0 if none
	Confidence  int     `json:"confidence"` // 0-100
	Reasoning   string  `json:"reasoning"`
}
