package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"

	"github.com/nfrund/authpage/internal/app"
	"github.com/nfrund/authpage/internal/config"
	"github.com/nfrund/authpage/internal/formstore"
	"github.com/nfrund/authpage/internal/handlers"
	"github.com/nfrund/authpage/internal/middleware"
	"github.com/nfrund/authpage/internal/pubsub"
	"github.com/nfrund/authpage/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E           *echo.Echo
	Cfg         *config.Config
	forms       *formstore.Store
	bus         *pubsub.WatermillBridge
	authHandler *handlers.AuthHandler
}

// New creates a new Server instance from cfg and registers its routes.
func New(cfg *config.Config) (*Server, error) {
	deps, err := app.Resolve(app.NewInjector(cfg))
	if err != nil {
		return nil, fmt.Errorf("resolve dependencies: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	setupErrorHandling(e)
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400, // 1 day
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.Renderer = deps.Renderer
	e.Validator = handlers.NewValidator()
	e.StaticFS("/static", afero.NewIOFS(web.Assets(cfg.StaticDir)))

	s := &Server{
		E:           e,
		Cfg:         cfg,
		forms:       deps.Forms,
		bus:         deps.Bus,
		authHandler: deps.AuthHandler,
	}
	s.RegisterRoutes()

	slog.Debug("Server configured", "addr", cfg.Addr, "static_dir", cfg.StaticDir)
	return s, nil
}

// Forms is a getter for the server's form store, useful for testing.
func (s *Server) Forms() *formstore.Store {
	return s.forms
}
