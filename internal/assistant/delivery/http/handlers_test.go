package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"travel-planning-assistant/internal/agent"
	"travel-planning-assistant/internal/assistant"
	assistantHTTP "travel-planning-assistant/internal/assistant/delivery/http"
	"travel-planning-assistant/internal/middleware"
	"travel-planning-assistant/internal/model"
	"travel-planning-assistant/pkg/response"
)

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

// mockUseCase is a scriptable test implementation of assistant.UseCase.
// Unscripted methods return zero values.
type mockUseCase struct {
	startSessionFn func(ctx context.Context) (assistant.Session, error)
	chatFn         func(ctx context.Context, in assistant.ChatInput) (assistant.ChatOutput, error)
	itineraryFn    func(ctx context.Context, in assistant.ItineraryInput) (assistant.ItineraryOutput, error)
	recommendFn    func(ctx context.Context, in assistant.RecommendationInput) (assistant.RecommendationOutput, error)
	searchFn       func(ctx context.Context, in assistant.SearchInput) (assistant.SearchOutput, error)
}

func (m *mockUseCase) StartSession(ctx context.Context) (assistant.Session, error) {
	if m.startSessionFn != nil {
		return m.startSessionFn(ctx)
	}
	return assistant.Session{}, nil
}

func (m *mockUseCase) Chat(ctx context.Context, in assistant.ChatInput) (assistant.ChatOutput, error) {
	if m.chatFn != nil {
		return m.chatFn(ctx, in)
	}
	return assistant.ChatOutput{}, nil
}

func (m *mockUseCase) CreateCompleteItinerary(ctx context.Context, in assistant.ItineraryInput) (assistant.ItineraryOutput, error) {
	if m.itineraryFn != nil {
		return m.itineraryFn(ctx, in)
	}
	return assistant.ItineraryOutput{}, nil
}

func (m *mockUseCase) GetRecommendations(ctx context.Context, in assistant.RecommendationInput) (assistant.RecommendationOutput, error) {
	if m.recommendFn != nil {
		return m.recommendFn(ctx, in)
	}
	return assistant.RecommendationOutput{}, nil
}

func (m *mockUseCase) SearchAndSummarize(ctx context.Context, in assistant.SearchInput) (assistant.SearchOutput, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, in)
	}
	return assistant.SearchOutput{}, nil
}

func (m *mockUseCase) Status() assistant.Status {
	return assistant.StatusReady
}

func newTestRouter(uc assistant.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := assistantHTTP.New(&mockLogger{}, uc)
	mw := middleware.New(&mockLogger{}, "", 0)
	assistantHTTP.RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResp(t *testing.T, w *httptest.ResponseRecorder) (response.Resp, map[string]interface{}) {
	t.Helper()
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	data, _ := resp.Data.(map[string]interface{})
	return resp, data
}

const validTrip = `{"origin":"Hanoi","destination":"Tokyo","start_date":"2026-09-01","end_date":"2026-09-05","travelers":2,"budget":3000,"currency":"USD"}`

func TestStartSession(t *testing.T) {
	t.Run("Returns Session ID And Creation Time", func(t *testing.T) {
		created := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
		uc := &mockUseCase{
			startSessionFn: func(ctx context.Context) (assistant.Session, error) {
				return assistant.Session{ID: "sess-123", CreatedAt: created}, nil
			},
		}
		w := postJSON(t, newTestRouter(uc), "/api/v1/assistant/sessions", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}
		resp, data := decodeResp(t, w)
		if resp.Message != response.MessageSuccess {
			t.Errorf("expected success message, got %q", resp.Message)
		}
		if data["session_id"] != "sess-123" {
			t.Errorf("expected session_id sess-123, got %v", data["session_id"])
		}
		createdAt, ok := data["created_at"].(string)
		if !ok {
			t.Fatalf("created_at should be a string, got %T", data["created_at"])
		}
		if _, err := time.Parse(response.DateTimeFormat, createdAt); err != nil {
			t.Errorf("created_at %q does not match %q", createdAt, response.DateTimeFormat)
		}
	})

	t.Run("Maps Not Initialized To 503", func(t *testing.T) {
		uc := &mockUseCase{
			startSessionFn: func(ctx context.Context) (assistant.Session, error) {
				return assistant.Session{}, assistant.ErrNotInitialized
			},
		}
		w := postJSON(t, newTestRouter(uc), "/api/v1/assistant/sessions", "")

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected %d, got %d", http.StatusServiceUnavailable, w.Code)
		}
	})
}

func TestChat(t *testing.T) {
	t.Run("Returns Synthesized Reply", func(t *testing.T) {
		var got assistant.ChatInput
		uc := &mockUseCase{
			chatFn: func(ctx context.Context, in assistant.ChatInput) (assistant.ChatOutput, error) {
				got = in
				return assistant.ChatOutput{
					SessionID:       in.SessionID,
					Reply:           "Tokyo in September is lovely.",
					Intent:          "general_chat",
					AgentsConsulted: []string{},
				}, nil
			},
		}
		body := fmt.Sprintf(`{"session_id":"sess-1","message":"tell me about Tokyo","trip":%s}`, validTrip)
		w := postJSON(t, newTestRouter(uc), "/api/v1/assistant/chat", body)

		if w.Code != http.StatusOK {
			t.Fatalf("expected %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}
		_, data := decodeResp(t, w)
		if data["reply"] != "Tokyo in September is lovely." {
			t.Errorf("unexpected reply %v", data["reply"])
		}
		if data["intent"] != "general_chat" {
			t.Errorf("unexpected intent %v", data["intent"])
		}
		if got.Trip.Destination != "Tokyo" || got.Trip.Travelers != 2 {
			t.Errorf("trip not passed through: %+v", got.Trip)
		}
	})

	t.Run("Rejects Missing Message", func(t *testing.T) {
		uc := &mockUseCase{}
		body := fmt.Sprintf(`{"trip":%s}`, validTrip)
		w := postJSON(t, newTestRouter(uc), "/api/v1/assistant/chat", body)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
		}
	})

	t.Run("Rejects Malformed Date", func(t *testing.T) {
		uc := &mockUseCase{}
		body := `{"message":"hi","trip":{"destination":"Tokyo","start_date":"09/01/2026"}}`
		w := postJSON(t, newTestRouter(uc), "/api/v1/assistant/chat", body)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
		}
	})

	t.Run("Defaults Travelers And Currency", func(t *testing.T) {
		var got assistant.ChatInput
		uc := &mockUseCase{
			chatFn: func(ctx context.Context, in assistant.ChatInput) (assistant.ChatOutput, error) {
				got = in
				return assistant.ChatOutput{}, nil
			},
		}
		body := `{"message":"hi","trip":{"destination":"Tokyo"}}`
		w := postJSON(t, newTestRouter(uc), "/api/v1/assistant/chat", body)

		if w.Code != http.StatusOK {
			t.Fatalf("expected %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}
		if got.Trip.Travelers != 1 {
			t.Errorf("expected 1 traveler, got %d", got.Trip.Travelers)
		}
		if got.Trip.Currency != model.CurrencyUSD {
			t.Errorf("expected USD, got %s", got.Trip.Currency)
		}
	})

	t.Run("Maps Exhausted Chain To 503", func(t *testing.T) {
		uc := &mockUseCase{
			chatFn: func(ctx context.Context, in assistant.ChatInput) (assistant.ChatOutput, error) {
				return assistant.ChatOutput{}, fmt.Errorf("chat: %w", assistant.ErrModelUnavailable)
			},
		}
		body := fmt.Sprintf(`{"message":"hi","trip":%s}`, validTrip)
		w := postJSON(t, newTestRouter(uc), "/api/v1/assistant/chat", body)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected %d, got %d", http.StatusServiceUnavailable, w.Code)
		}
	})
}

func TestCreateItinerary(t *testing.T) {
	t.Run("Returns Merged Plan", func(t *testing.T) {
		uc := &mockUseCase{
			itineraryFn: func(ctx context.Context, in assistant.ItineraryInput) (assistant.ItineraryOutput, error) {
				return assistant.ItineraryOutput{
					Plan: model.CompletePlan{
						Destination:  "Tokyo",
						DurationDays: 5,
						Currency:     model.CurrencyUSD,
						Itinerary: []model.ItineraryItem{
							{Day: 1, Activity: "Senso-ji temple", Cost: 0},
						},
						BudgetBreakdown: map[string]float64{"food": 750},
					},
					OverBudget: false,
					Sections:   map[string]string{"planning": "day one draft"},
				}, nil
			},
		}
		body := fmt.Sprintf(`{"trip":%s}`, validTrip)
		w := postJSON(t, newTestRouter(uc), "/api/v1/assistant/itinerary", body)

		if w.Code != http.StatusOK {
			t.Fatalf("expected %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}
		_, data := decodeResp(t, w)
		plan, ok := data["plan"].(map[string]interface{})
		if !ok {
			t.Fatalf("plan should be an object, got %T", data["plan"])
		}
		if plan["destination"] != "Tokyo" {
			t.Errorf("unexpected destination %v", plan["destination"])
		}
		if data["over_budget"] != false {
			t.Errorf("expected over_budget false, got %v", data["over_budget"])
		}
	})

	t.Run("Maps Plan Generation Failure To 502 With Sections", func(t *testing.T) {
		uc := &mockUseCase{
			itineraryFn: func(ctx context.Context, in assistant.ItineraryInput) (assistant.ItineraryOutput, error) {
				return assistant.ItineraryOutput{
					Sections: map[string]string{"planning": "draft", "finance": "numbers"},
				}, fmt.Errorf("itinerary: %w", assistant.ErrPlanGeneration)
			},
		}
		body := fmt.Sprintf(`{"trip":%s}`, validTrip)
		w := postJSON(t, newTestRouter(uc), "/api/v1/assistant/itinerary", body)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected %d, got %d", http.StatusBadGateway, w.Code)
		}
		_, data := decodeResp(t, w)
		sections, ok := data["sections"].(map[string]interface{})
		if !ok {
			t.Fatalf("sections should ride in the error envelope, got %v", data)
		}
		if sections["planning"] != "draft" {
			t.Errorf("unexpected sections %v", sections)
		}
	})

	t.Run("Maps Invalid Trip To 400", func(t *testing.T) {
		uc := &mockUseCase{
			itineraryFn: func(ctx context.Context, in assistant.ItineraryInput) (assistant.ItineraryOutput, error) {
				return assistant.ItineraryOutput{}, fmt.Errorf("%w: %v", assistant.ErrInvalidTrip, model.ErrMissingDates)
			},
		}
		body := fmt.Sprintf(`{"trip":%s}`, validTrip)
		w := postJSON(t, newTestRouter(uc), "/api/v1/assistant/itinerary", body)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
		}
	})
}

func TestGetRecommendations(t *testing.T) {
	t.Run("Returns One Agent's Take", func(t *testing.T) {
		uc := &mockUseCase{
			recommendFn: func(ctx context.Context, in assistant.RecommendationInput) (assistant.RecommendationOutput, error) {
				return assistant.RecommendationOutput{
					Topic:      in.Topic,
					Agent:      "Budget Planner",
					Text:       "Allocate most of the budget to accommodation.",
					Structured: map[string]interface{}{"daily_budget": 600.0},
				}, nil
			},
		}
		body := fmt.Sprintf(`{"topic":"finance","trip":%s}`, validTrip)
		w := postJSON(t, newTestRouter(uc), "/api/v1/assistant/recommendations", body)

		if w.Code != http.StatusOK {
			t.Fatalf("expected %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}
		_, data := decodeResp(t, w)
		if data["topic"] != string(agent.KindFinance) {
			t.Errorf("unexpected topic %v", data["topic"])
		}
		if data["agent"] != "Budget Planner" {
			t.Errorf("unexpected agent %v", data["agent"])
		}
	})

	t.Run("Maps Unknown Topic To 400", func(t *testing.T) {
		uc := &mockUseCase{
			recommendFn: func(ctx context.Context, in assistant.RecommendationInput) (assistant.RecommendationOutput, error) {
				return assistant.RecommendationOutput{}, fmt.Errorf("%w: %q", assistant.ErrUnknownTopic, in.Topic)
			},
		}
		body := fmt.Sprintf(`{"topic":"astrology","trip":%s}`, validTrip)
		w := postJSON(t, newTestRouter(uc), "/api/v1/assistant/recommendations", body)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
		}
	})
}

func TestSearch(t *testing.T) {
	t.Run("Returns Summary", func(t *testing.T) {
		uc := &mockUseCase{
			searchFn: func(ctx context.Context, in assistant.SearchInput) (assistant.SearchOutput, error) {
				return assistant.SearchOutput{
					Query:      in.Query,
					SearchType: in.SearchType,
					Summary:    "Three good options under $900.",
				}, nil
			},
		}
		body := fmt.Sprintf(`{"query":"flights to Tokyo","search_type":"flights","trip":%s}`, validTrip)
		w := postJSON(t, newTestRouter(uc), "/api/v1/assistant/search", body)

		if w.Code != http.StatusOK {
			t.Fatalf("expected %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}
		_, data := decodeResp(t, w)
		if data["summary"] != "Three good options under $900." {
			t.Errorf("unexpected summary %v", data["summary"])
		}
		if data["search_type"] != "flights" {
			t.Errorf("unexpected search_type %v", data["search_type"])
		}
	})

	t.Run("Rejects Missing Query", func(t *testing.T) {
		uc := &mockUseCase{}
		body := fmt.Sprintf(`{"trip":%s}`, validTrip)
		w := postJSON(t, newTestRouter(uc), "/api/v1/assistant/search", body)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
		}
	})
}
