package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fiscly/fiscly_backend/internal/core/ports/services"
	"github.com/fiscly/fiscly_backend/internal/dto"
	"github.com/fiscly/fiscly_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workspaceHandler handles HTTP requests related to the caller's workspace.
type workspaceHandler struct {
	workspaceService portssvc.WorkspaceService
}

func newWorkspaceHandler(ws portssvc.WorkspaceService) *workspaceHandler {
	return &workspaceHandler{
		workspaceService: ws,
	}
}

// RegisterWorkspaceRoutes registers routes related to the workspace profile.
func RegisterWorkspaceRoutes(rg *gin.RouterGroup, workspaceService portssvc.WorkspaceService) {
	h := newWorkspaceHandler(workspaceService)

	workspace := rg.Group("/workspace")
	{
		workspace.GET("", h.getWorkspace)
		workspace.PUT("", h.updateWorkspace)
	}
}

// getWorkspace godoc
// @Summary Get the caller's workspace
// @Description Returns the company profile, creating a default one on first access
// @Tags workspace
// @Produce  json
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve workspace"
// @Security BearerAuth
// @Router /workspace [get]
func (h *workspaceHandler) getWorkspace(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	workspace, err := h.workspaceService.GetOrCreateWorkspace(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve workspace")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

// updateWorkspace godoc
// @Summary Update the caller's workspace
// @Description Updates the company profile. Fields left out are unchanged.
// @Tags workspace
// @Accept  json
// @Produce  json
// @Param   workspace body dto.UpdateWorkspaceRequest true "Profile fields to update"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to update workspace"
// @Security BearerAuth
// @Router /workspace [put]
func (h *workspaceHandler) updateWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateWorkspace", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID))
	logger.Info("Received request to update workspace")

	workspace, err := h.workspaceService.UpdateWorkspace(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to update workspace")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}
