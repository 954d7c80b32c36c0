package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/goby-reset/internal/routepath"
	"github.com/nfrund/goby-reset/web"
)

// RegisterRoutes sets up the top-level routes and boots every module.
func (s *Server) RegisterRoutes(ctx context.Context) error {
	s.E.GET(routepath.Home, s.homeHandler.HomeGet)
	s.E.GET(routepath.About, s.homeHandler.AboutGet)
	s.E.GET(routepath.Health, func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	s.E.StaticFS(routepath.Static, echo.MustSubFS(web.FS, "static"))

	for _, m := range s.modules {
		if err := m.Boot(ctx, s.E.Group(m.Name())); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		slog.Debug("module booted", "module", m.Name())
	}
	return nil
}
