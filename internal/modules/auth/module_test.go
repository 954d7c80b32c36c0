package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/goby-reset/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModule_Boot(t *testing.T) {
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	m := New(Dependencies{AppName: "Goby", RateLimitPerMinute: 2})

	require.NoError(t, m.Boot(context.Background(), e.Group(m.Name())))

	var got []string
	for _, r := range e.Routes() {
		got = append(got, r.Method+" "+r.Path)
	}
	sort.Strings(got)
	assert.Equal(t, []string{
		"GET /auth/forgot-password",
		"GET /auth/login",
		"POST /auth/forgot-password",
		"POST /auth/forgot-password/retry",
	}, got)
}

func TestModule_PostsAreRateLimited(t *testing.T) {
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	m := New(Dependencies{AppName: "Goby", RateLimitPerMinute: 2})
	require.NoError(t, m.Boot(context.Background(), e.Group(m.Name())))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/forgot-password", nil)
		req.RemoteAddr = "192.0.2.10:1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	// Without a body the submit violates the form constraint.
	assert.Equal(t, []int{http.StatusUnprocessableEntity, http.StatusUnprocessableEntity, http.StatusTooManyRequests}, codes)
}

func TestModule_Shutdown(t *testing.T) {
	assert.NoError(t, New(Dependencies{}).Shutdown(context.Background()))
}
