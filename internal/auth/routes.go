package auth

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Status and Logout require an authenticated session; the login pair is
// public but rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/login", mw.RateLimit(), h.Login)
	rg.GET("/callback", mw.RateLimit(), h.Callback)
	rg.GET("/status", mw.Auth(), h.Status)
	rg.POST("/logout", mw.Auth(), h.Logout)
}
