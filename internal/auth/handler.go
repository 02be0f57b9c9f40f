package auth

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
	"calendar-assistant/pkg/response"
)

// Login godoc
// @Summary     Start Google OAuth login
// @Description Returns the Google consent URL the frontend should redirect to.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/login [GET]
func (h *handler) Login(c *gin.Context) {
	response.OK(c, loginResp{AuthURL: h.svc.LoginURL()})
}

// Callback godoc
// @Summary     OAuth callback
// @Description Exchanges the authorization code for a session token.
// @Tags        Auth
// @Produce     json
// @Param       state query string true "OAuth state"
// @Param       code  query string true "Authorization code"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid state or code"
// @Router      /api/v1/auth/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := h.svc.Exchange(ctx, c.Query("state"), c.Query("code"))
	if err != nil {
		if errors.Is(err, ErrInvalidState) || errors.Is(err, ErrMissingCode) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "internal.auth.Callback: %v", err)
		response.InternalError(c, err)
		return
	}

	h.l.Infof(ctx, "internal.auth.Callback: session opened for %q", sess.User.Email)
	response.OK(c, callbackResp{Token: sess.ID, Email: sess.User.Email})
}

// Status godoc
// @Summary     Session status
// @Description Reports whether the caller is authenticated and with what scopes.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/status [GET]
func (h *handler) Status(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	if sess == nil {
		response.Unauthorized(c)
		return
	}

	response.OK(c, statusResp{
		Authenticated: true,
		Email:         sess.User.Email,
		ScopeCount:    len(h.svc.Scopes()),
		RedirectURI:   h.svc.RedirectURI(),
	})
}

// Logout godoc
// @Summary     Log out
// @Description Invalidates the calling session.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	if sess == nil {
		response.Unauthorized(c)
		return
	}

	h.svc.Logout(sess.ID)
	response.OK(c, gin.H{"logged_out": true})
}
