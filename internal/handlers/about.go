package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/goby-reset/web/src/templates/pages"
)

// AboutGet renders the about page.
func (h *HomeHandler) AboutGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, h.appName, "About", pages.AboutContent())
}
