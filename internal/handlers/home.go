package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/goby-reset/web/src/templates/pages"
)

// HomeHandler handles requests for the landing pages.
type HomeHandler struct {
	appName string
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(appName string) *HomeHandler {
	return &HomeHandler{appName: appName}
}

// HomeGet handles the GET request for the home page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, h.appName, "Home", pages.Home(h.appName))
}
