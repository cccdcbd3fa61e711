package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ProjectsHandler serves the featured project list as JSON.
type ProjectsHandler struct {
	content SnapshotProvider
}

// NewProjectsHandler creates a new ProjectsHandler.
func NewProjectsHandler(content SnapshotProvider) *ProjectsHandler {
	return &ProjectsHandler{content: content}
}

// List handles GET /api/projects.
func (h *ProjectsHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, NewProjectsResponse(h.content.Snapshot().Projects))
}
