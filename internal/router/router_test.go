package router

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"travel-planning-assistant/internal/model"
	"travel-planning-assistant/pkg/llmprovider"
)

// mockProvider is a test implementation of the llmprovider.Provider interface
type mockProvider struct {
	response  string
	err       error
	callCount int
	lastReq   *llmprovider.Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.callCount++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.response, Provider: "mock", Model: "mock-model"}, nil
}

func (m *mockProvider) Name() string  { return "mock" }
func (m *mockProvider) Model() string { return "mock-model" }

// mockLogger is a no-op test implementation of the log.Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func newTestRouter(t *testing.T, provider *mockProvider) *SemanticRouter {
	t.Helper()
	manager, err := llmprovider.NewManager([]llmprovider.Provider{provider}, &llmprovider.Config{
		RetryAttempts: 1,
		RetryDelay:    time.Millisecond,
	}, &mockLogger{})
	if err != nil {
		t.Fatalf("failed to build manager: %v", err)
	}
	return New(manager, &mockLogger{})
}

func testTrip() model.TripContext {
	start, _ := time.Parse(model.DateLayout, "2026-03-01")
	end, _ := time.Parse(model.DateLayout, "2026-03-05")
	return model.TripContext{
		Destination: "Paris",
		StartDate:   start,
		EndDate:     end,
		Travelers:   2,
		Budget:      2000,
		Currency:    model.CurrencyUSD,
	}
}

func TestClassify_WellFormedJSON(t *testing.T) {
	provider := &mockProvider{
		response: `{"intent": "flight_search", "destination": "Tokyo", "confidence": 90, "reasoning": "user asks about flights"}`,
	}
	r := newTestRouter(t, provider)

	out, err := r.Classify(context.Background(), "Find me flights to Tokyo", testTrip(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != IntentFlightSearch {
		t.Errorf("expected flight_search, got %s", out.Intent)
	}
	if out.Destination != "Tokyo" {
		t.Errorf("expected destination override Tokyo, got %q", out.Destination)
	}
	if out.Confidence != 90 {
		t.Errorf("expected confidence 90, got %d", out.Confidence)
	}
	if provider.callCount != 1 {
		t.Errorf("expected 1 model call, got %d", provider.callCount)
	}
}

func TestClassify_FencedJSON(t *testing.T) {
	provider := &mockProvider{
		response: "```json\n{\"intent\": \"itinerary_request\", \"confidence\": 85, \"reasoning\": \"plan request\"}\n```",
	}
	r := newTestRouter(t, provider)

	out, err := r.Classify(context.Background(), "Plan my trip", testTrip(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != IntentItineraryRequest {
		t.Errorf("expected itinerary_request, got %s", out.Intent)
	}
}

func TestClassify_BareFence(t *testing.T) {
	provider := &mockProvider{
		response: "```\n{\"intent\": \"hotel_search\", \"confidence\": 80}\n```",
	}
	r := newTestRouter(t, provider)

	out, err := r.Classify(context.Background(), "Where should we stay?", testTrip(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != IntentHotelSearch {
		t.Errorf("expected hotel_search, got %s", out.Intent)
	}
}

func TestClassify_MalformedOutputFallsBack(t *testing.T) {
	provider := &mockProvider{
		response: "I believe the user is asking about the budget for this trip.",
	}
	r := newTestRouter(t, provider)

	out, err := r.Classify(context.Background(), "ok and that?", testTrip(), nil)
	if err != nil {
		t.Fatalf("classification must not fail on malformed output, got: %v", err)
	}
	if out.Intent != IntentBudgetQuestion {
		t.Errorf("expected budget_question from keyword fallback, got %s", out.Intent)
	}
	if out.Reasoning != ReasonParsingError {
		t.Errorf("expected parsing-error reasoning, got %q", out.Reasoning)
	}
}

func TestClassify_UnknownIntentFallsBack(t *testing.T) {
	provider := &mockProvider{
		response: `{"intent": "lodging_search", "confidence": 70}`,
	}
	r := newTestRouter(t, provider)

	out, err := r.Classify(context.Background(), "where should we stay in Kyoto", testTrip(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != IntentHotelSearch {
		t.Errorf("expected hotel_search from keyword fallback, got %s", out.Intent)
	}
}

func TestClassify_LLMErrorFallsBack(t *testing.T) {
	provider := &mockProvider{err: errors.New("model overloaded")}
	r := newTestRouter(t, provider)

	out, err := r.Classify(context.Background(), "how much money will this trip cost", testTrip(), nil)
	if err != nil {
		t.Fatalf("classification must not fail when the model is down, got: %v", err)
	}
	if out.Intent != IntentBudgetQuestion {
		t.Errorf("expected budget_question from keyword fallback, got %s", out.Intent)
	}
	if out.Reasoning != ReasonLLMError {
		t.Errorf("expected llm-error reasoning, got %q", out.Reasoning)
	}
}

func TestClassify_PromptCarriesContext(t *testing.T) {
	provider := &mockProvider{
		response: `{"intent": "general_chat", "confidence": 95}`,
	}
	r := newTestRouter(t, provider)

	history := []string{"user: hi", "assistant: hello, where are we going?"}
	_, err := r.Classify(context.Background(), "what about the Louvre?", testTrip(), history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if provider.lastReq == nil || len(provider.lastReq.Messages) != 1 {
		t.Fatalf("expected a single-message request, got %+v", provider.lastReq)
	}
	prompt := provider.lastReq.Messages[0].Text
	if !strings.Contains(prompt, "Recent conversation:") {
		t.Errorf("expected history block in prompt")
	}
	if !strings.Contains(prompt, "2. assistant: hello, where are we going?") {
		t.Errorf("expected numbered history lines in prompt, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Paris") {
		t.Errorf("expected trip context in prompt")
	}
	if !strings.Contains(prompt, "what about the Louvre?") {
		t.Errorf("expected user message in prompt")
	}
	if provider.lastReq.Temperature != RouterTemperature {
		t.Errorf("expected temperature %v, got %v", RouterTemperature, provider.lastReq.Temperature)
	}
}

func TestFallback(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{name: "budget keyword", text: "What's the budget for food?", want: IntentBudgetQuestion},
		{name: "money keyword", text: "I don't want to spend too much", want: IntentBudgetQuestion},
		{name: "itinerary keyword", text: "plan my week in Rome", want: IntentItineraryRequest},
		{name: "flight keyword", text: "any flights to Lisbon on Friday?", want: IntentFlightSearch},
		{name: "hotel keyword", text: "where should we stay in Kyoto", want: IntentHotelSearch},
		{name: "attraction keyword", text: "what museums are worth it", want: IntentAttractionQuery},
		{name: "intent label wins over keywords", text: `budget {"intent": "hotel_search"`, want: IntentHotelSearch},
		{name: "no keywords", text: "hello there", want: IntentGeneralChat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Fallback(tt.text)
			if out.Intent != tt.want {
				t.Errorf("Fallback(%q) = %s, want %s", tt.text, out.Intent, tt.want)
			}
			if out.Confidence != RouterFallbackConfidence {
				t.Errorf("expected fallback confidence %d, got %d", RouterFallbackConfidence, out.Confidence)
			}
		})
	}

	t.Run("no keywords reason", func(t *testing.T) {
		out := Fallback("hello there")
		if out.Reasoning != ReasonNoKeywordHits {
			t.Errorf("expected no-keyword reasoning, got %q", out.Reasoning)
		}
	})
}
