// Package handler contains HTTP handlers for the API.
package handler

import (
	"context"
	"errors"
	"net/http"

	apperrors "invitehub/internal/errors"
	"invitehub/internal/models"
	"invitehub/internal/service"
	"invitehub/pkg/response"

	"github.com/gin-gonic/gin"
)

// RedemptionCoordinator is the post-authentication hook of the invitation
// redemption protocol.
type RedemptionCoordinator interface {
	BindTokenToSession(ctx context.Context, sessionID, token string) string
	OnUserAuthenticated(ctx context.Context, sessionID string, user *models.User) string
}

// AuthHandler handles HTTP requests for authentication operations. After a
// successful register or login it hands the session to the redemption
// coordinator so a pending invitation is redeemed in the same round trip.
type AuthHandler struct {
	service     service.AuthServicer
	coordinator RedemptionCoordinator
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service service.AuthServicer, coordinator RedemptionCoordinator) *AuthHandler {
	return &AuthHandler{service: service, coordinator: coordinator}
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a new user account. A pending invitation bound to the session is redeemed and its redirect returned.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateUserRequest  true  "User registration details"
// @Success      201      {object}  response.Response{data=models.AuthResponse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	h.completeRedemption(c, result)
	response.Created(c, result)
}

// Login godoc
// @Summary      User login
// @Description  Authenticate a user. A pending invitation bound to the session is redeemed and its redirect returned.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.LoginRequest  true  "User credentials"
// @Success      200      {object}  response.Response{data=models.AuthResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	h.completeRedemption(c, result)
	response.Success(c, result)
}

// completeRedemption runs the post-auth redemption hook when the request
// carries an invite session cookie. The cookie is single-shot: one
// authentication consumes it whatever the outcome.
func (h *AuthHandler) completeRedemption(c *gin.Context, result *models.AuthResponse) {
	sessionID, err := c.Cookie(InviteSessionCookie)
	if err != nil || sessionID == "" {
		return
	}

	result.RedirectTo = h.coordinator.OnUserAuthenticated(c.Request.Context(), sessionID, &result.User)
	c.SetCookie(InviteSessionCookie, "", -1, "/", "", false, true)
}

// Refresh godoc
// @Summary      Refresh access token
// @Description  Exchange a refresh token for a rotated token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.RefreshRequest  true  "Refresh token"
// @Success      200      {object}  response.Response{data=models.RefreshResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req models.RefreshRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidRefreshToken),
			errors.Is(err, apperrors.ErrRefreshTokenExpired),
			errors.Is(err, apperrors.ErrRefreshTokenReused):
			response.Unauthorized(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, result)
}

// Logout godoc
// @Summary      User logout
// @Description  Invalidate the refresh token family
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.LogoutRequest  true  "Refresh token to invalidate"
// @Success      204      "No Content"
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req models.LogoutRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Logout(c.Request.Context(), &req); err != nil {
		response.InternalError(c)
		return
	}

	c.Status(http.StatusNoContent)
}
