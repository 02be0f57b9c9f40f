package auth_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"calendar-assistant/config"
	"calendar-assistant/internal/auth"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/log"
)

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error", Mode: "debug", Encoding: "console"})
}

func testGoogleConfig() config.GoogleConfig {
	return config.GoogleConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "http://localhost:8080/api/v1/auth/callback",
		Scopes: []string{
			"https://www.googleapis.com/auth/calendar.readonly",
			"https://www.googleapis.com/auth/userinfo.email",
		},
	}
}

func newTestService(t *testing.T) *auth.Service {
	t.Helper()
	svc, err := auth.NewService(testLogger(), testGoogleConfig(), config.AuthConfig{SessionTTLMinutes: 60})
	if err != nil {
		t.Fatalf("unexpected error creating service: %v", err)
	}
	return svc
}

func TestNewService(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.GoogleConfig)
		wantErr bool
	}{
		{"valid config", func(c *config.GoogleConfig) {}, false},
		{"missing client id", func(c *config.GoogleConfig) { c.ClientID = "" }, true},
		{"missing client secret", func(c *config.GoogleConfig) { c.ClientSecret = "" }, true},
		{"missing redirect uri", func(c *config.GoogleConfig) { c.RedirectURI = "" }, true},
		{"no scopes", func(c *config.GoogleConfig) { c.Scopes = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testGoogleConfig()
			tt.mutate(&cfg)

			_, err := auth.NewService(testLogger(), cfg, config.AuthConfig{})
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestServiceConfiguration(t *testing.T) {
	svc := newTestService(t)

	if got := len(svc.Scopes()); got != 2 {
		t.Errorf("expected 2 scopes, got %d", got)
	}
	if svc.RedirectURI() != "http://localhost:8080/api/v1/auth/callback" {
		t.Errorf("unexpected redirect URI: %s", svc.RedirectURI())
	}
}

func TestLoginURL(t *testing.T) {
	svc := newTestService(t)

	first, second := svc.LoginURL(), svc.LoginURL()

	u, err := url.Parse(first)
	if err != nil {
		t.Fatalf("login URL not parseable: %v", err)
	}
	if u.Query().Get("state") == "" {
		t.Error("login URL has no state parameter")
	}
	if !strings.Contains(first, url.QueryEscape("http://localhost:8080/api/v1/auth/callback")) {
		t.Errorf("login URL missing redirect URI: %s", first)
	}

	u2, _ := url.Parse(second)
	if u.Query().Get("state") == u2.Query().Get("state") {
		t.Error("state tokens must be single-use and unique")
	}
}

func TestSessions(t *testing.T) {
	svc := newTestService(t)

	sess := svc.CreateSession(
		model.UserInfo{Email: "user@example.com"},
		gcalendar.Credential{AccessToken: "tok"},
	)
	if sess.ID == "" {
		t.Fatal("session has no ID")
	}

	got, ok := svc.SessionByToken(sess.ID)
	if !ok {
		t.Fatal("session not resolvable by token")
	}
	if got.User.Email != "user@example.com" {
		t.Errorf("unexpected session user: %s", got.User.Email)
	}
	if got.Credential.AccessToken != "tok" {
		t.Errorf("unexpected credential on session")
	}

	svc.Logout(sess.ID)
	if _, ok := svc.SessionByToken(sess.ID); ok {
		t.Error("session still resolvable after logout")
	}
}

func TestExchangeRejectsBadCallbacks(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Exchange(context.Background(), "some-state", ""); !errors.Is(err, auth.ErrMissingCode) {
		t.Errorf("expected ErrMissingCode, got %v", err)
	}
	if _, err := svc.Exchange(context.Background(), "never-issued", "code"); !errors.Is(err, auth.ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
}
