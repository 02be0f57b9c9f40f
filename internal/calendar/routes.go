package calendar

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require an authenticated session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/events", mw.Auth(), h.ListEvents)
}
