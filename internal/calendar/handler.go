package calendar

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
	"calendar-assistant/pkg/response"
)

// ListEvents godoc
// @Summary     List calendar events
// @Description Lists events from the caller's Google Calendar. Provider-side
// @Description failures are reported inside the payload, not as HTTP errors.
// @Tags        Calendar
// @Produce     json
// @Param       calendar_id   query string false "Calendar ID (default: primary)"
// @Param       max_results   query int    false "Page size (default: 10)"
// @Param       upcoming_only query bool   false "Only upcoming events (default: true)"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	sess := middleware.SessionFromContext(c)
	if sess == nil {
		response.Unauthorized(c)
		return
	}

	var req listEventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	result, err := h.client.GetEvents(ctx, sess.Credential, req.toOptions())
	if err != nil {
		h.l.Errorf(ctx, "internal.calendar.ListEvents: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, result)
}
