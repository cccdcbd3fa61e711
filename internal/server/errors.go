package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/divyank00/portfolio/internal/handlers"
	appmiddleware "github.com/divyank00/portfolio/internal/middleware"
	"github.com/labstack/echo/v4"
)

// setupErrorHandling installs the HTTP error handler. Errors that are not
// *echo.HTTPError are unexpected and get logged with a stack trace.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := appmiddleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"stack_trace", string(debug.Stack()),
			)
			he = echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		} else if he.Code >= http.StatusInternalServerError {
			logger.Error("Internal Server Error", "status", he.Code, "error", he.Error())
		}

		message := fmt.Sprint(he.Message)

		var respErr error
		switch {
		case c.Request().Method == http.MethodHead:
			respErr = c.NoContent(he.Code)
		case strings.HasPrefix(c.Request().URL.Path, "/api/"):
			respErr = c.JSON(he.Code, handlers.ErrorResponse{
				Code:    strings.ToLower(strings.ReplaceAll(http.StatusText(he.Code), " ", "_")),
				Message: message,
			})
		default:
			respErr = c.String(he.Code, message)
		}
		if respErr != nil {
			logger.Error("Failed to write error response", "error", respErr)
		}
	}
}
