package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/authpage/internal/handlers"
	"github.com/nfrund/authpage/internal/middleware"
	"github.com/nfrund/authpage/web/src/templates/pages"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter(middleware.DefaultSubmitLimit)

	s.E.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, handlers.PathAuth)
	})

	s.E.GET(handlers.PathAuth, s.authHandler.AuthGet)
	s.E.POST(pages.PathField, s.authHandler.FieldPost)
	s.E.POST(pages.PathMode, s.authHandler.ModePost)
	s.E.POST(pages.PathGoogle, s.authHandler.GooglePost)
	s.E.POST(pages.PathGoogleBack, s.authHandler.GoogleBackPost)
	s.E.POST(pages.PathSubmit, s.authHandler.SubmitPost, rateLimiter)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
