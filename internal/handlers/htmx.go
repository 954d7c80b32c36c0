package handlers

import (
	"github.com/labstack/echo/v4"
	ghttp "maragu.dev/gomponents-htmx/http"
)

// isHTMX reports whether the request was issued by htmx and therefore wants
// a fragment instead of a full page.
func isHTMX(c echo.Context) bool {
	return ghttp.IsRequest(c.Request().Header)
}

// redirectHTMX tells htmx to do a full client-side navigation to path.
func redirectHTMX(c echo.Context, path string) {
	ghttp.SetRedirect(c.Response().Header(), path)
}
