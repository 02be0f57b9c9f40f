package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/log"
)

type stubResolver struct {
	sessions map[string]*model.Session
}

func (s stubResolver) SessionByToken(token string) (*model.Session, bool) {
	sess, ok := s.sessions[token]
	return sess, ok
}

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error", Mode: "debug", Encoding: "console"})
}

func newEngine(mw middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/protected", mw.Auth(), func(c *gin.Context) {
		sess := middleware.SessionFromContext(c)
		if sess == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session on context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": sess.User.Email})
	})
	return engine
}

func TestAuth(t *testing.T) {
	resolver := stubResolver{sessions: map[string]*model.Session{
		"good-token": {ID: "good-token", User: model.UserInfo{Email: "user@example.com"}},
	}}
	engine := newEngine(middleware.New(testLogger(), resolver, 600))

	t.Run("No token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Unknown token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Bearer token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("Session cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "good-token"})
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(testLogger(), stubResolver{}, 60)

	engine := gin.New()
	engine.GET("/limited", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	var ok, throttled int
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		engine.ServeHTTP(w, req)

		switch w.Code {
		case http.StatusOK:
			ok++
		case http.StatusTooManyRequests:
			throttled++
		default:
			t.Fatalf("unexpected status %d", w.Code)
		}
	}

	if ok == 0 {
		t.Error("expected some requests to pass")
	}
	if throttled == 0 {
		t.Error("expected burst to be throttled")
	}
}
