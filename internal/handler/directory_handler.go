package handler

import (
	"invitehub/internal/service"
	"invitehub/pkg/response"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves the read-only directory listings the admin UI
// uses when composing invitations.
type DirectoryHandler struct {
	service service.DirectoryServicer
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(service service.DirectoryServicer) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// ListProjects godoc
// @Summary      List projects
// @Description  List all non-archived projects.
// @Tags         directory
// @Produce      json
// @Success      200  {object}  response.Response{data=models.ProjectListResponse}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/projects [get]
func (h *DirectoryHandler) ListProjects(c *gin.Context) {
	result, err := h.service.ListProjects(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Success(c, result)
}

// ListRoles godoc
// @Summary      List roles
// @Description  List all grantable roles.
// @Tags         directory
// @Produce      json
// @Success      200  {object}  response.Response{data=models.RoleListResponse}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/roles [get]
func (h *DirectoryHandler) ListRoles(c *gin.Context) {
	result, err := h.service.ListRoles(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Success(c, result)
}
