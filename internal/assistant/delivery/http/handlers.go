package http

import (
	"github.com/gin-gonic/gin"

	"travel-planning-assistant/pkg/response"
)

// StartSession godoc
// @Summary     Start a conversation session
// @Description Creates a new session whose history grounds follow-up chat turns.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} sessionResp
// @Failure     503 {object} response.Resp "Service Unavailable - assistant failed to initialize"
// @Router      /api/v1/assistant/sessions [POST]
func (h *handler) StartSession(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.StartSession(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.StartSession: %v", err)
		h.respondError(c, err, nil)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// Chat godoc
// @Summary     Send a chat message
// @Description Classifies the message intent, consults the routed specialist agents, and returns one synthesized reply. An unknown or missing session_id starts a fresh session.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message and trip context"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Service Unavailable - model chain exhausted"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.respondError(c, err, nil)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// CreateItinerary godoc
// @Summary     Create a complete itinerary
// @Description Runs the planning, travel and finance agents over the trip and merges their drafts into a structured plan. On a failed merge the raw sections ride in the error envelope.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body itineraryReq true "Trip context (dates required)"
// @Success     200 {object} itineraryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Bad Gateway - the model produced no valid plan"
// @Failure     503 {object} response.Resp "Service Unavailable - model chain exhausted"
// @Router      /api/v1/assistant/itinerary [POST]
func (h *handler) CreateItinerary(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processItineraryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateCompleteItinerary(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateCompleteItinerary: %v", err)
		h.respondError(c, err, sectionsData(output.Sections))
		return
	}

	response.OK(c, h.newItineraryResp(output))
}

// GetRecommendations godoc
// @Summary     Get recommendations from one agent
// @Description Quick action: asks a single specialist agent (planning, travel, finance or search) for its perspective on the trip.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body recommendationReq true "Topic and trip context"
// @Success     200 {object} recommendationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Service Unavailable - model chain exhausted"
// @Router      /api/v1/assistant/recommendations [POST]
func (h *handler) GetRecommendations(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processRecommendationReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetRecommendations(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetRecommendations: %v", err)
		h.respondError(c, err, nil)
		return
	}

	response.OK(c, h.newRecommendationResp(output))
}

// Search godoc
// @Summary     Search travel information
// @Description Runs the search agent on the query, optionally narrowed to a vertical, and returns a bounded summary of its findings.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body searchReq true "Query, optional search type, trip context"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Service Unavailable - model chain exhausted"
// @Router      /api/v1/assistant/search [POST]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SearchAndSummarize(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.SearchAndSummarize: %v", err)
		h.respondError(c, err, nil)
		return
	}

	response.OK(c, h.newSearchResp(output))
}
