package handler

import (
	"errors"

	apperrors "invitehub/internal/errors"
	"invitehub/internal/middleware"
	"invitehub/internal/models"
	"invitehub/internal/service"
	"invitehub/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminInvitationHandler handles the authenticated admin invitation API.
type AdminInvitationHandler struct {
	service service.InvitationAdminServicer
}

// NewAdminInvitationHandler creates a new AdminInvitationHandler.
func NewAdminInvitationHandler(service service.InvitationAdminServicer) *AdminInvitationHandler {
	return &AdminInvitationHandler{service: service}
}

// adminID extracts the authenticated admin's id from the context set by the
// auth middleware.
func adminID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(middleware.GetUserID(c))
	if err != nil {
		response.Unauthorized(c, "invalid user id in token")
		return primitive.NilObjectID, false
	}
	return id, true
}

// Create godoc
// @Summary      Create an invitation
// @Description  Create an invitation of the given type. Requires the permissions the invitation would exercise on its target.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateInvitationRequest  true  "Invitation details"
// @Success      201      {object}  response.Response{data=models.InvitationResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/invitations [post]
func (h *AdminInvitationHandler) Create(c *gin.Context) {
	id, ok := adminID(c)
	if !ok {
		return
	}

	var req models.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateInvitation(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, result)
}

// Update godoc
// @Summary      Edit an invitation
// @Description  Replace the invitation behind the token with a rebuilt one carrying the same token.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        token    path      string                          true  "Invitation token"
// @Param        request  body      models.CreateInvitationRequest  true  "New invitation details"
// @Success      200      {object}  response.Response{data=models.InvitationResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/invitations/{token} [put]
func (h *AdminInvitationHandler) Update(c *gin.Context) {
	id, ok := adminID(c)
	if !ok {
		return
	}

	var req models.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateInvitation(c.Request.Context(), id, c.Param("token"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, result)
}

// Get godoc
// @Summary      Get an invitation
// @Description  Fetch the invitation behind the token, provided the admin is still allowed to manage it.
// @Tags         admin
// @Produce      json
// @Param        token  path      string  true  "Invitation token"
// @Success      200    {object}  response.Response{data=models.InvitationResponse}
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/invitations/{token} [get]
func (h *AdminInvitationHandler) Get(c *gin.Context) {
	id, ok := adminID(c)
	if !ok {
		return
	}

	result, err := h.service.GetInvitation(c.Request.Context(), id, c.Param("token"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, result)
}

// Remove godoc
// @Summary      Remove an invitation
// @Description  Retire the invitation behind the token.
// @Tags         admin
// @Produce      json
// @Param        token  path      string  true  "Invitation token"
// @Success      200    {object}  response.Response{data=models.InvitationResponse}
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/invitations/{token} [delete]
func (h *AdminInvitationHandler) Remove(c *gin.Context) {
	id, ok := adminID(c)
	if !ok {
		return
	}

	result, err := h.service.RemoveInvitation(c.Request.Context(), id, c.Param("token"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, result)
}

// List godoc
// @Summary      List invitations
// @Description  List the invitations the admin is allowed to manage.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=models.InvitationListResponse}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/invitations [get]
func (h *AdminInvitationHandler) List(c *gin.Context) {
	id, ok := adminID(c)
	if !ok {
		return
	}

	result, err := h.service.ListInvitations(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, result)
}

// ListTypes godoc
// @Summary      List invitation types
// @Description  List the invitation variants the admin could create an invitation of.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=models.InvitationTypeListResponse}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/invitation-types [get]
func (h *AdminInvitationHandler) ListTypes(c *gin.Context) {
	id, ok := adminID(c)
	if !ok {
		return
	}

	result, err := h.service.ListInvitationTypes(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, result)
}

// writeError maps admin service errors to HTTP responses. Access denial is
// explicit and distinguishable from validation failures.
func (h *AdminInvitationHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrAccessDenied):
		response.AccessDenied(c, err.Error())
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrUnknownInvitationType):
		response.BadRequest(c, err.Error())
	case errors.Is(err, apperrors.ErrInvitationNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrDuplicateToken):
		response.Conflict(c, err.Error())
	default:
		response.InternalError(c)
	}
}
