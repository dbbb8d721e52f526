package handler

import (
	"net/http"

	"invitehub/pkg/token"

	"github.com/gin-gonic/gin"
)

// InviteSessionCookie names the cookie that carries the anonymous invite
// session id between the landing and the authentication round trip.
const InviteSessionCookie = "invite_session"

// RedemptionHandler handles the public invitation landing. No
// authentication: knowledge of the token is the whole credential at this
// phase.
type RedemptionHandler struct {
	coordinator     RedemptionCoordinator
	cookieMaxAgeSec int
}

// NewRedemptionHandler creates a new RedemptionHandler. cookieMaxAgeSec
// bounds how long an unauthenticated visitor can sit on the login page
// before the bound token is forgotten.
func NewRedemptionHandler(coordinator RedemptionCoordinator, cookieMaxAgeSec int) *RedemptionHandler {
	return &RedemptionHandler{coordinator: coordinator, cookieMaxAgeSec: cookieMaxAgeSec}
}

// Land godoc
// @Summary      Invitation landing
// @Description  Bind the invitation token to the visitor's session and redirect to login. Unknown, expired and missing tokens all redirect to / without detail.
// @Tags         invitations
// @Produce      json
// @Param        token  query  string  true  "Invitation token"
// @Success      302
// @Router       /invitations [get]
func (h *RedemptionHandler) Land(c *gin.Context) {
	tok := c.Query("token")
	if tok == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	sessionID, err := c.Cookie(InviteSessionCookie)
	if err != nil || sessionID == "" {
		sessionID = token.NewSessionID()
		c.SetCookie(InviteSessionCookie, sessionID, h.cookieMaxAgeSec, "/", "", false, true)
	}

	redirect := h.coordinator.BindTokenToSession(c.Request.Context(), sessionID, tok)
	c.Redirect(http.StatusFound, redirect)
}
