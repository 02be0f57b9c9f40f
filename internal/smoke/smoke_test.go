package smoke_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"calendar-assistant/internal/smoke"
	"calendar-assistant/pkg/log"
)

type backendStub struct {
	mu             sync.Mutex
	frontendStatus int
	statusStatus   int
	paths          []string
}

func (b *backendStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.paths = append(b.paths, r.URL.Path)
		b.mu.Unlock()

		switch r.URL.Path {
		case "/":
			w.WriteHeader(b.frontendStatus)
		case "/api/v1/auth/status":
			w.WriteHeader(b.statusStatus)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func (b *backendStub) requested(path string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, p := range b.paths {
		if p == path {
			return true
		}
	}
	return false
}

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error", Mode: "debug", Encoding: "console"})
}

func setGoogleEnv(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "client-id-for-tests")
	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret-for-tests")
	t.Setenv("GOOGLE_REDIRECT_URI", "http://localhost:9999/api/v1/auth/callback")
}

func TestRun(t *testing.T) {
	setGoogleEnv(t)

	t.Run("All checks pass", func(t *testing.T) {
		stub := &backendStub{frontendStatus: http.StatusOK, statusStatus: http.StatusUnauthorized}
		ts := httptest.NewServer(stub.handler())
		defer ts.Close()

		var out bytes.Buffer
		runner := smoke.NewRunner(testLogger(), smoke.Config{BaseURL: ts.URL}, &out)

		if !runner.Run(context.Background()) {
			t.Fatalf("expected success, output:\n%s", out.String())
		}
		if !strings.Contains(out.String(), "All checks passed") {
			t.Errorf("missing summary line in output:\n%s", out.String())
		}
		if !strings.Contains(out.String(), "redirect URI http://localhost:9999/api/v1/auth/callback") {
			t.Errorf("missing redirect URI in output:\n%s", out.String())
		}
	})

	t.Run("Forbidden also counts as protected", func(t *testing.T) {
		stub := &backendStub{frontendStatus: http.StatusOK, statusStatus: http.StatusForbidden}
		ts := httptest.NewServer(stub.handler())
		defer ts.Close()

		var out bytes.Buffer
		runner := smoke.NewRunner(testLogger(), smoke.Config{BaseURL: ts.URL}, &out)

		if !runner.Run(context.Background()) {
			t.Fatalf("expected success with 403, output:\n%s", out.String())
		}
	})

	t.Run("Frontend failure short-circuits", func(t *testing.T) {
		stub := &backendStub{frontendStatus: http.StatusServiceUnavailable, statusStatus: http.StatusUnauthorized}
		ts := httptest.NewServer(stub.handler())
		defer ts.Close()

		var out bytes.Buffer
		runner := smoke.NewRunner(testLogger(), smoke.Config{BaseURL: ts.URL}, &out)

		if runner.Run(context.Background()) {
			t.Fatal("expected failure")
		}
		if stub.requested("/api/v1/auth/status") {
			t.Error("auth endpoint must not be probed after frontend failure")
		}
	})

	t.Run("Permissive auth endpoint is a failure", func(t *testing.T) {
		stub := &backendStub{frontendStatus: http.StatusOK, statusStatus: http.StatusOK}
		ts := httptest.NewServer(stub.handler())
		defer ts.Close()

		var out bytes.Buffer
		runner := smoke.NewRunner(testLogger(), smoke.Config{BaseURL: ts.URL}, &out)

		if runner.Run(context.Background()) {
			t.Fatal("expected failure when status endpoint answers 200 unauthenticated")
		}
		if !strings.Contains(out.String(), "without credentials") {
			t.Errorf("expected permissive-endpoint diagnostic, got:\n%s", out.String())
		}
	})

	t.Run("Unreachable backend is a failure", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close() // connection refused from here on

		var out bytes.Buffer
		runner := smoke.NewRunner(testLogger(), smoke.Config{BaseURL: ts.URL}, &out)

		if runner.Run(context.Background()) {
			t.Fatal("expected failure against closed server")
		}
	})
}
