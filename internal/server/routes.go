package server

import (
	"net/http"

	"github.com/divyank00/portfolio/internal/handlers"
	"github.com/divyank00/portfolio/internal/middleware"
	"github.com/divyank00/portfolio/web"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	a := s.App

	homeHandler := handlers.NewHomeHandler(a.Site, a.Content, a.Renderer)
	projectsHandler := handlers.NewProjectsHandler(a.Content)
	contentHandler := handlers.NewContentHandler(a.Store)
	rateLimiter := middleware.RateLimiter(a.Config.APIRateLimit)

	s.E.GET("/", homeHandler.HomeGet)

	api := s.E.Group("/api", rateLimiter)
	api.GET("/projects", projectsHandler.List)

	s.E.GET("/content/*", contentHandler.Get)
	s.E.StaticFS("/static", web.Static())

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
