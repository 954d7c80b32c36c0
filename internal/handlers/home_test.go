package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/goby-reset/internal/handlers"
	"github.com/nfrund/goby-reset/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeHandler(t *testing.T) {
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	h := handlers.NewHomeHandler("Acme")
	e.GET("/", h.HomeGet)
	e.GET("/about", h.AboutGet)

	t.Run("home", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Welcome to Acme")
		assert.Contains(t, rec.Body.String(), `href="/auth/forgot-password"`)
	})

	t.Run("about", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/about", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<title>About - Acme</title>")
	})
}
