package auth

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/goby-reset/internal/handlers"
	"github.com/nfrund/goby-reset/internal/middleware"
	"github.com/nfrund/goby-reset/internal/module"
	"github.com/nfrund/goby-reset/internal/passwordreset"
	"github.com/nfrund/goby-reset/internal/routepath"
)

// Dependencies holds all the services that the module requires.
type Dependencies struct {
	AppName            string
	SessionName        string
	RateLimitPerMinute int
}

// Module mounts the sign-in destination and the forgot password flow.
type Module struct {
	module.BaseModule
	deps    Dependencies
	handler *handlers.AuthHandler
}

// New creates a new instance of the module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

// Name returns the module's route prefix.
func (m *Module) Name() string {
	return routepath.AuthPrefix
}

// Boot registers the auth routes. Posts are rate limited per client IP.
func (m *Module) Boot(ctx context.Context, group *echo.Group) error {
	slog.Info("Booting auth module: setting up routes...")

	m.handler = handlers.NewAuthHandler(passwordreset.NewSessionStore(m.deps.SessionName), m.deps.AppName)
	rateLimiter := middleware.RateLimiter(m.deps.RateLimitPerMinute)

	group.GET(relative(routepath.SignIn), m.handler.SignInGet)
	group.GET(relative(routepath.ForgotPassword), m.handler.ForgotPasswordGet)
	group.POST(relative(routepath.ForgotPassword), m.handler.ForgotPasswordPost, rateLimiter)
	group.POST(relative(routepath.ForgotPasswordRetry), m.handler.ForgotPasswordRetryPost, rateLimiter)
	return nil
}

// relative strips the module prefix so routes can be declared with their
// canonical paths.
func relative(path string) string {
	return path[len(routepath.AuthPrefix):]
}
