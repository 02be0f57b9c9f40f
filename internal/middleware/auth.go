package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/response"
)

// SessionCookie is the cookie the frontend stores the session token in.
const SessionCookie = "session_token"

// Auth requires a valid session token, supplied either as a bearer token
// or as the session cookie. The resolved session is stored on the context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sess, ok := m.sessions.SessionByToken(token)
		if !ok {
			m.l.Debugf(c.Request.Context(), "internal.middleware.Auth: unknown session token")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(ContextKeySession, sess)
		c.Next()
	}
}

// SessionFromContext returns the session stored by Auth, or nil.
func SessionFromContext(c *gin.Context) *model.Session {
	v, ok := c.Get(ContextKeySession)
	if !ok {
		return nil
	}
	sess, ok := v.(*model.Session)
	if !ok {
		return nil
	}
	return sess
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}
