package handlers

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/divyank00/portfolio/internal/domain"
	"github.com/divyank00/portfolio/internal/middleware"
	"github.com/divyank00/portfolio/internal/storage"
	"github.com/labstack/echo/v4"
)

// servedExtensions are the content files exposed over HTTP. Markdown sources stay private.
var servedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".pdf":  true,
}

// IsServedContent reports whether a content file may be exposed publicly.
func IsServedContent(name string) bool {
	return servedExtensions[strings.ToLower(path.Ext(name))]
}

// ContentHandler serves images from the content directory.
type ContentHandler struct {
	store storage.Store
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(store storage.Store) *ContentHandler {
	return &ContentHandler{store: store}
}

// Get handles GET /content/*.
func (h *ContentHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	name := c.Param("*")
	if !IsServedContent(name) {
		return echo.NewHTTPError(http.StatusNotFound, "File not found")
	}

	file, err := h.store.Get(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "File not found")
		}
		logger.Error("Failed to open content file", slog.String("path", name), slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not retrieve file")
	}
	defer file.Close()

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	return c.Stream(http.StatusOK, contentType, file)
}
