package middleware

import (
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/log"
)

// ContextKeySession is the gin context key the Auth middleware stores the
// resolved session under.
const ContextKeySession = "session"

// SessionResolver resolves a session token to an active session.
type SessionResolver interface {
	SessionByToken(token string) (*model.Session, bool)
}

type Middleware struct {
	l        log.Logger
	sessions SessionResolver
	limiter  *rateLimiter
}

func New(l log.Logger, sessions SessionResolver, rateLimitPerMin int) Middleware {
	return Middleware{
		l:        l,
		sessions: sessions,
		limiter:  newRateLimiter(rateLimitPerMin),
	}
}
