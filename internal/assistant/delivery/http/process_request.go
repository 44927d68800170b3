package http

import (
	"github.com/gin-gonic/gin"

	"travel-planning-assistant/internal/assistant"
)

// processChatReq binds the chat request body and assembles the input.
func (h *handler) processChatReq(c *gin.Context) (assistant.ChatInput, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return assistant.ChatInput{}, err
	}
	return req.toInput(), nil
}

// processItineraryReq binds the itinerary request body.
func (h *handler) processItineraryReq(c *gin.Context) (assistant.ItineraryInput, error) {
	var req itineraryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return assistant.ItineraryInput{}, err
	}
	return req.toInput(), nil
}

// processRecommendationReq binds the recommendation request body.
func (h *handler) processRecommendationReq(c *gin.Context) (assistant.RecommendationInput, error) {
	var req recommendationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return assistant.RecommendationInput{}, err
	}
	return req.toInput(), nil
}

// processSearchReq binds the search request body.
func (h *handler) processSearchReq(c *gin.Context) (assistant.SearchInput, error) {
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return assistant.SearchInput{}, err
	}
	return req.toInput(), nil
}
