package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/goby-reset/internal/config"
	"github.com/nfrund/goby-reset/internal/handlers"
	appmiddleware "github.com/nfrund/goby-reset/internal/middleware"
	"github.com/nfrund/goby-reset/internal/module"
	"github.com/nfrund/goby-reset/internal/modules/auth"
	"github.com/nfrund/goby-reset/internal/passwordreset"
	"github.com/nfrund/goby-reset/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E           *echo.Echo
	Cfg         config.Provider
	homeHandler *handlers.HomeHandler
	modules     []module.Module
}

// New creates a new Server instance with the shared middleware installed.
// Routes are added by RegisterRoutes.
func New(cfg config.Provider) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = rendering.NewUniversalRenderer()
	setupErrorHandling(e)

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmiddleware.Logger)
	e.Use(appmiddleware.AccessLog())
	e.Use(echomw.Recover())

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.GetSessionSecure(),
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	return &Server{
		E:           e,
		Cfg:         cfg,
		homeHandler: handlers.NewHomeHandler(cfg.GetAppName()),
		modules: []module.Module{
			auth.New(auth.Dependencies{
				AppName:            cfg.GetAppName(),
				SessionName:        passwordreset.DefaultSessionName,
				RateLimitPerMinute: cfg.GetRateLimitPerMinute(),
			}),
		},
	}
}

// shutdownModules gives every module a chance to release resources.
func (s *Server) shutdownModules(ctx context.Context) {
	for _, m := range s.modules {
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("module shutdown failed", "module", m.Name(), "error", err)
		}
	}
}
