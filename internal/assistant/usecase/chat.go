package usecase

import (
	"context"
	"fmt"
	"strings"

	"travel-planning-assistant/internal/assistant"
	"travel-planning-assistant/internal/router"
	"travel-planning-assistant/pkg/gemini"
	"travel-planning-assistant/pkg/llmprovider"
)

// Chat processes one user message end to end: classify the intent, consult
// the routed agents, synthesize a reply, record the turn.
func (uc *implUseCase) Chat(ctx context.Context, input assistant.ChatInput) (assistant.ChatOutput, error) {
	if err := uc.requireReady(); err != nil {
		return assistant.ChatOutput{}, err
	}
	if strings.TrimSpace(input.Message) == "" {
		return assistant.ChatOutput{}, assistant.ErrEmptyMessage
	}
	if err := input.Trip.Validate(); err != nil {
		return assistant.ChatOutput{}, fmt.Errorf("%w: %v", assistant.ErrInvalidTrip, err)
	}

	sess := uc.resolveSession(ctx, input.SessionID)

	// SemanticRouter degrades internally and never errors, but the
	// Classifier contract allows it, so classification still must not
	// sink the turn.
	history := historyLines(sess.recent(uc.config.HistoryLimit))
	intent, err := uc.classifier.Classify(ctx, input.Message, input.Trip, history)
	if err != nil {
		uc.l.Warnf(ctx, "%s: classification failed, using keyword fallback: %v", LogPrefixChat, err)
		intent = router.Fallback(input.Message)
	}
	uc.l.Infof(ctx, "%s: session %s classified %s (confidence %d%%)", LogPrefixChat, sess.id, intent.Intent, intent.Confidence)

	outcomes := uc.invokeAgents(ctx, intent.Intent, input.Message, input.Trip)

	reply, err := uc.synthesize(ctx, sess, input, outcomes)
	if err != nil {
		// The session stays usable; the caller may simply retry.
		return assistant.ChatOutput{}, mapModelErr(err)
	}

	sess.append(uc.config.HistoryLimit,
		assistant.Turn{Role: assistant.RoleUser, Text: input.Message},
		assistant.Turn{Role: assistant.RoleAssistant, Text: reply},
	)

	consulted, failed := splitOutcomes(outcomes)
	return assistant.ChatOutput{
		SessionID:       sess.id,
		Reply:           reply,
		Intent:          intent.Intent,
		AgentsConsulted: consulted,
		AgentsFailed:    failed,
	}, nil
}

// synthesize makes the one model call that answers the user. The bounded
// recent history rides along as real conversation turns; the trip context
// and agent findings travel in the final message.
func (uc *implUseCase) synthesize(ctx context.Context, sess *session, input assistant.ChatInput, outcomes []agentOutcome) (string, error) {
	recent := sess.recent(uc.config.HistoryLimit)
	messages := make([]llmprovider.Message, 0, len(recent)+1)
	for _, turn := range recent {
		role := gemini.RoleUser
		if turn.Role == assistant.RoleAssistant {
			role = gemini.RoleModel
		}
		messages = append(messages, llmprovider.Message{Role: role, Text: turn.Text})
	}

	prompt := fmt.Sprintf(PromptChat, input.Trip.PromptJSON(), formatFindings(outcomes), input.Message)
	messages = append(messages, llmprovider.Message{Role: gemini.RoleUser, Text: prompt})

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: SystemPromptAssistant,
		Messages:          messages,
		Temperature:       ChatTemperature,
	})
	uc.noteModelOutcome(err)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
