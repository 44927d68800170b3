package router

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"travel-planning-assistant/internal/model"
	"travel-planning-assistant/pkg/gemini"
	"travel-planning-assistant/pkg/llmprovider"
)

// Classify determines user intent from a message, given the trip context
// and recent conversation lines. The returned error is always nil for
// SemanticRouter: when the classification call fails or its output cannot
// be parsed, the keyword fallback decides instead.
func (r *SemanticRouter) Classify(ctx context.Context, message string, trip model.TripContext, conversationHistory []string) (Output, error) {
	// Build prompt with conversation history
	historyContext := ""
	if len(conversationHistory) > 0 {
		historyContext = PromptHistoryPrefix
		for i, msg := range conversationHistory {
			historyContext += fmt.Sprintf("%d. %s\n", i+1, msg)
		}
		historyContext += "\n"
	}

	prompt := historyContext + fmt.Sprintf(PromptRouterSystem, trip.PromptJSON(), message)

	resp, err := r.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: gemini.RoleUser, Text: prompt},
		},
		Temperature: RouterTemperature,
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: LLM call failed, using keyword fallback: %v", LogPrefixClassify, err)
		out := Fallback(message)
		out.Reasoning = ReasonLLMError
		return out, nil
	}

	// Strip markdown code blocks if present (```json ... ```)
	responseText := strings.TrimSpace(resp.Text)
	if strings.HasPrefix(responseText, "```json") {
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)
	} else if strings.HasPrefix(responseText, "```") {
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)
	}

	var output Output
	if err := json.Unmarshal([]byte(responseText), &output); err != nil {
		r.l.Warnf(ctx, "%s: unparseable model output %q, using keyword fallback: %v", LogPrefixClassify, responseText, err)
		// A malformed reply usually still names or describes the intent,
		// so the heuristics scan it together with the user message.
		out := Fallback(message + " " + responseText)
		out.Reasoning = ReasonParsingError
		return out, nil
	}
	if !output.Intent.Valid() {
		r.l.Warnf(ctx, "%s: model returned unknown intent %q, using keyword fallback", LogPrefixClassify, output.Intent)
		out := Fallback(message + " " + responseText)
		out.Reasoning = ReasonParsingError
		return out, nil
	}

	r.l.Infof(ctx, "%s: classified as %s (confidence: %d%%)", LogPrefixClassify, output.Intent, output.Confidence)
	return output, nil
}
