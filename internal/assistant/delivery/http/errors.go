package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-planning-assistant/internal/assistant"
	"travel-planning-assistant/pkg/response"
)

// respondError renders a domain error with its HTTP mapping: caller
// mistakes are 400, an uninitialized or exhausted model chain is 503, a
// merge the model could not produce is 502. data, when non-nil, carries
// partial output (the itinerary sections) inside the error envelope.
func (h *handler) respondError(c *gin.Context, err error, data map[string]interface{}) {
	var extra []any
	if len(data) > 0 {
		extra = append(extra, data)
	}

	switch {
	case errors.Is(err, assistant.ErrInvalidTrip),
		errors.Is(err, assistant.ErrEmptyMessage),
		errors.Is(err, assistant.ErrEmptyQuery),
		errors.Is(err, assistant.ErrUnknownTopic),
		errors.Is(err, assistant.ErrUnknownSearchType):
		response.Error(c, err, data)
	case errors.Is(err, assistant.ErrNotInitialized),
		errors.Is(err, assistant.ErrModelUnavailable):
		response.ErrorWithStatus(c, http.StatusServiceUnavailable, err, extra...)
	case errors.Is(err, assistant.ErrPlanGeneration):
		response.ErrorWithStatus(c, http.StatusBadGateway, err, extra...)
	default:
		response.InternalError(c, err)
	}
}

// sectionsData wraps the pipeline sections for the error envelope.
func sectionsData(sections map[string]string) map[string]interface{} {
	if len(sections) == 0 {
		return nil
	}
	return map[string]interface{}{"sections": sections}
}
