package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"travel-planning-assistant/internal/middleware"
	"travel-planning-assistant/pkg/log"
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

func newPingRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{}, mw...)
	handlers = append(handlers, func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/ping", handlers...)
	return r
}

func pingRequest(remoteAddr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	return req
}

func TestAuth(t *testing.T) {
	t.Run("Pass Through When Unconfigured", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, "", 0)
		r := newPingRouter(mw.Auth())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, pingRequest("10.0.0.1:1234"))
		if w.Code != http.StatusOK {
			t.Errorf("expected %d, got %d", http.StatusOK, w.Code)
		}
	})

	t.Run("Rejects Missing Key", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, "secret", 0)
		r := newPingRouter(mw.Auth())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, pingRequest("10.0.0.1:1234"))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("Rejects Wrong Key", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, "secret", 0)
		r := newPingRouter(mw.Auth())

		req := pingRequest("10.0.0.1:1234")
		req.Header.Set(middleware.HeaderAPIKey, "not-the-secret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("Accepts Valid Key", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, "secret", 0)
		r := newPingRouter(mw.Auth())

		req := pingRequest("10.0.0.1:1234")
		req.Header.Set(middleware.HeaderAPIKey, "secret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("expected %d, got %d", http.StatusOK, w.Code)
		}
	})
}

func TestRequestID(t *testing.T) {
	mw := middleware.New(&mockLogger{}, "", 0)

	var seenInContext string
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", mw.RequestID(), func(c *gin.Context) {
		seenInContext = log.RequestIDFromContext(c.Request.Context())
		c.String(http.StatusOK, "pong")
	})

	t.Run("Mints An ID When Absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, pingRequest("10.0.0.1:1234"))

		id := w.Header().Get(middleware.HeaderRequestID)
		if id == "" {
			t.Fatal("expected a generated request ID header")
		}
		if seenInContext != id {
			t.Errorf("context carried %q, header carried %q", seenInContext, id)
		}
	})

	t.Run("Keeps Inbound ID", func(t *testing.T) {
		req := pingRequest("10.0.0.1:1234")
		req.Header.Set(middleware.HeaderRequestID, "req-abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(middleware.HeaderRequestID); got != "req-abc-123" {
			t.Errorf("expected the inbound ID to be kept, got %q", got)
		}
		if seenInContext != "req-abc-123" {
			t.Errorf("context carried %q, want req-abc-123", seenInContext)
		}
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("Pass Through When Disabled", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, "", 0)
		r := newPingRouter(mw.RateLimit())

		for i := 0; i < 20; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, pingRequest("10.0.0.1:1234"))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected %d, got %d", i, http.StatusOK, w.Code)
			}
		}
	})

	t.Run("Throttles After Burst", func(t *testing.T) {
		// 60 req/min allows a burst of 6 before refill kicks in.
		mw := middleware.New(&mockLogger{}, "", 60)
		r := newPingRouter(mw.RateLimit())

		for i := 0; i < 6; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, pingRequest("10.0.0.1:1234"))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected %d, got %d", i, http.StatusOK, w.Code)
			}
		}

		w := httptest.NewRecorder()
		r.ServeHTTP(w, pingRequest("10.0.0.1:1234"))
		if w.Code != http.StatusTooManyRequests {
			t.Errorf("expected %d after the burst, got %d", http.StatusTooManyRequests, w.Code)
		}
	})

	t.Run("Clients Are Throttled Independently", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, "", 60)
		r := newPingRouter(mw.RateLimit())

		// Exhaust one client.
		for i := 0; i < 7; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, pingRequest("10.0.0.1:1234"))
			_ = w
		}

		w := httptest.NewRecorder()
		r.ServeHTTP(w, pingRequest("10.0.0.2:1234"))
		if w.Code != http.StatusOK {
			t.Errorf("second client should not be throttled, got %d", w.Code)
		}

		// The forwarded header identifies the real client behind a proxy.
		req := pingRequest("10.0.0.1:1234")
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("forwarded client should have its own bucket, got %d", w.Code)
		}
	})
}
