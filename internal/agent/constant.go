package agent

// Log prefixes
const (
	LogPrefixProcess = "internal.agent.Process"
)

// Generation settings
const (
	// AgentTemperature leaves room for varied recommendations; intent
	// classification uses a much lower temperature, but agents write prose.
	AgentTemperature = 0.7
)

// System prompts (one role-describing prefix per agent variant)
const (
	SystemPromptPlanning = `You are the Planning Agent of a travel planning assistant. You research destinations and build practical day-by-day itineraries.`

	SystemPromptTravel = `You are the Travel Agent of a travel planning assistant. You cover flights, accommodation and local transportation.`

	SystemPromptFinance = `You are the Finance Agent of a travel planning assistant. You plan budgets, estimate costs and find savings.`

	SystemPromptSearch = `You are the Search Agent of a travel planning assistant. You gather and condense travel information on request. You do not have live web access, so answer from general knowledge and say so when details may be out of date.`
)

// Task prompts
const (
	PromptItinerary = `As a travel planning expert, create a detailed %d-day itinerary for %s.

Trip details:
%s

Please provide:
1. Top attractions and must-visit places
2. Day-by-day itinerary with activities
3. Estimated time for each activity
4. Best time to visit each location
5. Local tips and recommendations

Format the response as a structured itinerary with one "Day N" heading per day.`

	PromptFlights = `Find flight options to %s:
- Departure date: %s
- Return date: %s
- Number of travelers: %d
- Budget consideration: %s

Provide flight recommendations with:
1. Airlines and routes
2. Approximate prices
3. Duration and connections
4. Best booking tips`

	PromptHotels = `Find accommodation options in %s:
- Check-in: %s
- Check-out: %s
- Guests: %d
- Budget: %s

Provide hotel recommendations with:
1. Hotel names and types
2. Location and proximity to attractions
3. Approximate prices per night
4. Amenities and ratings`

	PromptTransportation = `Provide local transportation options in %s:
- Duration: %s to %s

Include:
1. Public transportation (metro, bus, trains)
2. Taxi/rideshare options
3. Car rental recommendations
4. Walking/cycling options
5. Transportation passes and costs`

	PromptFinance = `As a travel finance expert, provide budget guidance for a trip to %s:

Trip details:
- Total budget: %s
- Duration: %d days
- Number of travelers: %d
- Daily budget: %s

Please provide:
1. Detailed budget breakdown by category
2. Cost-saving tips specific to %s
3. Hidden costs to watch out for
4. Best ways to save money on this trip
5. Recommended emergency fund
6. Currency exchange tips
7. Payment methods and cards to use

Be specific and practical.`

	PromptSearchFindings = `Search query: "%s"

Report the most useful findings for this traveler:
1. Key information and highlights
2. Practical tips and recommendations
3. Important details to consider
4. Estimated costs if relevant

Be specific and helpful.`
)

// Search query templates, one per vertical
const (
	QueryAttractions = "top attractions and things to do in %s"
	QueryFlights     = "flights to %s prices and airlines"
	QueryHotels      = "best hotels in %s reviews and prices"
	QueryRestaurants = "best restaurants and food in %s"
	QueryActivities  = "popular activities and experiences in %s"
	QueryDefault     = "travel guide %s"
)

// Budget allocation shares. They must sum to 1.
const (
	ShareAccommodation  = 0.35
	ShareFood           = 0.25
	ShareActivities     = 0.20
	ShareTransportation = 0.15
	ShareEmergency      = 0.05
)

// Budget category names
const (
	CategoryAccommodation  = "accommodation"
	CategoryFood           = "food"
	CategoryActivities     = "activities"
	CategoryTransportation = "transportation"
	CategoryEmergency      = "emergency"
)

// BreakdownCategories lists the budget categories in presentation order.
var BreakdownCategories = []string{
	CategoryAccommodation,
	CategoryFood,
	CategoryActivities,
	CategoryTransportation,
	CategoryEmergency,
}

// Structured result keys
const (
	StructuredKeyDays            = "days"
	StructuredKeyBudgetBreakdown = "budget_breakdown"
	StructuredKeyDailyBudget     = "daily_budget"
	StructuredKeyQuery           = "query"
	StructuredKeySearchType      = "search_type"
)
