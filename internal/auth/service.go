package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"calendar-assistant/config"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/log"
)

const (
	maxSessions  = 1000
	maxStates    = 1000
	stateTTL     = 10 * time.Minute
	userInfoURL  = "https://www.googleapis.com/oauth2/v2/userinfo"
	userInfoWait = 5 * time.Second
)

// Service owns the OAuth2 application registration and the active sessions.
// It is the object the smoke test constructs in its final step.
type Service struct {
	l        log.Logger
	oauth    *oauth2.Config
	sessions *expirable.LRU[string, *model.Session]
	states   *expirable.LRU[string, struct{}]
}

// NewService builds the OAuth service from the Google application config.
// It fails when the registration is incomplete.
func NewService(l log.Logger, googleCfg config.GoogleConfig, authCfg config.AuthConfig) (*Service, error) {
	if googleCfg.ClientID == "" {
		return nil, fmt.Errorf("google client_id is required")
	}
	if googleCfg.ClientSecret == "" {
		return nil, fmt.Errorf("google client_secret is required")
	}
	if googleCfg.RedirectURI == "" {
		return nil, fmt.Errorf("google redirect_uri is required")
	}
	if len(googleCfg.Scopes) == 0 {
		return nil, fmt.Errorf("at least one oauth scope is required")
	}

	sessionTTL := time.Duration(authCfg.SessionTTLMinutes) * time.Minute
	if sessionTTL <= 0 {
		sessionTTL = time.Hour
	}

	return &Service{
		l: l,
		oauth: &oauth2.Config{
			ClientID:     googleCfg.ClientID,
			ClientSecret: googleCfg.ClientSecret,
			RedirectURL:  googleCfg.RedirectURI,
			Scopes:       googleCfg.Scopes,
			Endpoint:     google.Endpoint,
		},
		sessions: expirable.NewLRU[string, *model.Session](maxSessions, nil, sessionTTL),
		states:   expirable.NewLRU[string, struct{}](maxStates, nil, stateTTL),
	}, nil
}

// Scopes returns the configured OAuth scopes.
func (s *Service) Scopes() []string {
	return s.oauth.Scopes
}

// RedirectURI returns the configured OAuth redirect URI.
func (s *Service) RedirectURI() string {
	return s.oauth.RedirectURL
}

// OAuthConfig exposes the underlying oauth2 config for clients that need
// refreshable token sources.
func (s *Service) OAuthConfig() *oauth2.Config {
	return s.oauth
}

// LoginURL generates a consent URL with a fresh single-use state token.
func (s *Service) LoginURL() string {
	state := uuid.NewString()
	s.states.Add(state, struct{}{})
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange validates the callback state, trades the authorization code for
// a token and opens a session for the authenticated user.
func (s *Service) Exchange(ctx context.Context, state, code string) (*model.Session, error) {
	if code == "" {
		return nil, ErrMissingCode
	}
	if _, ok := s.states.Get(state); !ok {
		return nil, ErrInvalidState
	}
	s.states.Remove(state)

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	user := s.fetchUserInfo(ctx, token)

	return s.CreateSession(user, gcalendar.Credential{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
		Scopes:       s.oauth.Scopes,
	}), nil
}

// CreateSession opens a session for an already-authenticated user.
func (s *Service) CreateSession(user model.UserInfo, cred gcalendar.Credential) *model.Session {
	sess := &model.Session{
		ID:         uuid.NewString(),
		User:       user,
		Credential: cred,
		CreatedAt:  time.Now(),
	}
	s.sessions.Add(sess.ID, sess)
	return sess
}

// SessionByToken resolves a session token. Implements middleware.SessionResolver.
func (s *Service) SessionByToken(token string) (*model.Session, bool) {
	return s.sessions.Get(token)
}

// Logout removes the session for the given token.
func (s *Service) Logout(token string) {
	s.sessions.Remove(token)
}

// fetchUserInfo retrieves the account identity behind the token. Identity
// is informational only, so failures degrade to an empty UserInfo.
func (s *Service) fetchUserInfo(ctx context.Context, token *oauth2.Token) model.UserInfo {
	ctx, cancel := context.WithTimeout(ctx, userInfoWait)
	defer cancel()

	resp, err := s.oauth.Client(ctx, token).Get(userInfoURL)
	if err != nil {
		s.l.Warnf(ctx, "internal.auth.fetchUserInfo: %v", err)
		return model.UserInfo{}
	}
	defer resp.Body.Close()

	var user model.UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		s.l.Warnf(ctx, "internal.auth.fetchUserInfo: decoding response: %v", err)
		return model.UserInfo{}
	}
	return user
}
