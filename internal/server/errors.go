package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	appmiddleware "github.com/nfrund/goby-reset/internal/middleware"
)

// setupErrorHandling installs the central HTTP error handler. Echo HTTP
// errors keep their status; anything else is logged with a stack trace and
// answered with a 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		logger := appmiddleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Internal != nil {
				logger.Warn("Request failed", "status", he.Code, "error", he.Internal)
			}
			respond(c, he.Code, he.Message)
			return
		}

		logger.Error("Internal Server Error (Unhandled)",
			"error", err,
			"stack_trace", string(debug.Stack()),
		)
		respond(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func respond(c echo.Context, code int, message interface{}) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else if msg, ok := message.(string); ok {
		err = c.String(code, msg)
	} else {
		err = c.JSON(code, map[string]interface{}{"message": message})
	}
	if err != nil {
		slog.Error("Failed to write error response", "error", err)
	}
}
