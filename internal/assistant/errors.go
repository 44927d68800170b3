package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	// ErrNotInitialized rejects operations on an instance whose bootstrap
	// probe failed.
	ErrNotInitialized = errors.New("assistant is not initialized")

	// ErrInvalidTrip wraps the specific TripContext violation.
	ErrInvalidTrip = errors.New("invalid trip context")

	ErrEmptyMessage      = errors.New("message is empty")
	ErrEmptyQuery        = errors.New("search query is empty")
	ErrUnknownTopic      = errors.New("unknown recommendation topic")
	ErrUnknownSearchType = errors.New("unknown search type")

	// ErrModelUnavailable means the whole model chain was exhausted while
	// serving the request. The session stays usable.
	ErrModelUnavailable = errors.New("language models are unavailable")

	// ErrPlanGeneration means the itinerary merge could not produce valid
	// structured output even after the strict retry.
	ErrPlanGeneration = errors.New("failed to generate a valid plan")
)
