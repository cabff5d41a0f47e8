package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/authpage/internal/middleware"
)

// setupErrorHandling installs an error handler that logs errors no handler
// mapped to an HTTP status, with a stack trace, and answers them with a bare
// 500. HTTP errors go through echo's default handler.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Internal != nil {
				middleware.FromContext(c.Request().Context()).Error("Request failed",
					"status", he.Code, "error", he.Internal)
			}
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
			"error", err.Error(),
			"path", c.Request().URL.Path,
			"stack_trace", string(debug.Stack()),
		)
		if c.Response().Committed {
			return
		}
		_ = c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
