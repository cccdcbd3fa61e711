package handlers

import (
	"net/http"

	"github.com/divyank00/portfolio/internal/config"
	"github.com/divyank00/portfolio/internal/content"
	"github.com/divyank00/portfolio/internal/middleware"
	"github.com/divyank00/portfolio/internal/rendering"
	"github.com/divyank00/portfolio/internal/reveal"
	"github.com/divyank00/portfolio/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// SnapshotProvider hands out the current content snapshot.
type SnapshotProvider interface {
	Snapshot() content.Snapshot
}

// HomeHandler handles requests for the home page.
type HomeHandler struct {
	site     *config.Site
	content  SnapshotProvider
	renderer rendering.Renderer
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(site *config.Site, content SnapshotProvider, renderer rendering.Renderer) *HomeHandler {
	return &HomeHandler{site: site, content: content, renderer: renderer}
}

// HomeGet renders the home page. Every request is a new mount with its own reveal registry.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	reg := reveal.NewRegistry()
	snap := h.content.Snapshot()
	page := pages.Home(pages.HomeData{Site: h.site, Content: snap}, reg)

	if err := h.renderer.RenderPage(c, http.StatusOK, page); err != nil {
		return err
	}

	middleware.FromContext(c.Request().Context()).Debug("Rendered home page",
		"projects", len(snap.Projects),
		"reveal_registrations", reg.Len(),
	)
	return nil
}
