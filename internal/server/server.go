package server

import (
	"github.com/divyank00/portfolio/internal/app"
	appmiddleware "github.com/divyank00/portfolio/internal/middleware"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	App *app.App
}

// New creates a new Server instance over the resolved application services.
func New(a *app.App) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = a.Renderer

	setupErrorHandling(e)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())

	return &Server{E: e, App: a}
}
