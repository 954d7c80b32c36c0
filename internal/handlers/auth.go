package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/goby-reset/internal/middleware"
	"github.com/nfrund/goby-reset/internal/passwordreset"
	"github.com/nfrund/goby-reset/internal/routepath"
	"github.com/nfrund/goby-reset/internal/view"
	"github.com/nfrund/goby-reset/web/src/templates/layouts"
	"github.com/nfrund/goby-reset/web/src/templates/pages"
	g "maragu.dev/gomponents"
)

const saveFailedMessage = "We couldn't process your request. Please try again."

// ForgotPasswordRequest is the form posted by the forgot password page.
type ForgotPasswordRequest struct {
	Email string `form:"email"`
}

// AuthHandler serves the sign-in destination and the forgot password flow.
type AuthHandler struct {
	store   *passwordreset.SessionStore
	appName string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(store *passwordreset.SessionStore, appName string) *AuthHandler {
	return &AuthHandler{
		store:   store,
		appName: appName,
	}
}

// SignInGet renders the sign-in page (GET /auth/login).
func (h *AuthHandler) SignInGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, h.appName, "Sign In", pages.SignIn())
}

// ForgotPasswordGet renders the forgot password page in whatever phase the
// session's view is in (GET /auth/forgot-password).
func (h *AuthHandler) ForgotPasswordGet(c echo.Context) error {
	return h.renderView(c, http.StatusOK, h.store.Load(c))
}

// ForgotPasswordPost submits the form (POST /auth/forgot-password). Nothing
// is sent anywhere: the view simply moves to its confirmation.
func (h *AuthHandler) ForgotPasswordPost(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form submission").SetInternal(err)
	}

	v := h.store.Load(c)
	if err := v.Submit(req.Email); err != nil {
		if !errors.Is(err, passwordreset.ErrConstraintViolation) {
			return err
		}
		// A browser would have blocked this submit without a message, so
		// the form is shown again as-is.
		logger.Debug("forgot password submit refused by form constraint", "error", err)
		v.Input(req.Email)
		return h.renderView(c, http.StatusUnprocessableEntity, v)
	}

	if err := h.store.Save(c, v); err != nil {
		logger.Error("failed to save forgot password view", "error", err)
		return h.recoverFromSaveFailure(c)
	}

	logger.Info("password reset link requested", "phase", v.Phase.String())

	if isHTMX(c) {
		return h.renderView(c, http.StatusOK, v)
	}
	return c.Redirect(http.StatusSeeOther, routepath.ForgotPassword)
}

// ForgotPasswordRetryPost handles "Try another email"
// (POST /auth/forgot-password/retry). The previously entered email stays
// in the input.
func (h *AuthHandler) ForgotPasswordRetryPost(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	v := h.store.Load(c)
	v.TryAnother()

	if err := h.store.Save(c, v); err != nil {
		logger.Error("failed to save forgot password view", "error", err)
		return h.recoverFromSaveFailure(c)
	}

	if isHTMX(c) {
		return h.renderView(c, http.StatusOK, v)
	}
	return c.Redirect(http.StatusSeeOther, routepath.ForgotPassword)
}

// recoverFromSaveFailure sends the browser back to the page with an error
// notice. HTMX requests get a client-side redirect so the notice is shown
// with the full layout.
func (h *AuthHandler) recoverFromSaveFailure(c echo.Context) error {
	view.SetFlashError(c, saveFailedMessage)
	if isHTMX(c) {
		redirectHTMX(c, routepath.ForgotPassword)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, routepath.ForgotPassword)
}

func (h *AuthHandler) renderView(c echo.Context, status int, v passwordreset.View) error {
	var fragment g.Node
	if v.Submitted() {
		fragment = pages.ForgotPasswordSent(pages.ForgotPasswordSentData{Email: v.Email})
	} else {
		fragment = pages.ForgotPassword(pages.ForgotPasswordData{Email: v.Email})
	}

	if isHTMX(c) {
		return c.Render(status, "", fragment)
	}
	return renderPage(c, status, h.appName, "Forgot Password", fragment)
}

// renderPage wraps content in the base layout together with any pending
// flash messages.
func renderPage(c echo.Context, status int, appName, title string, content g.Node) error {
	page := layouts.Base(appName, title, view.GetFlashData(c), view.AdaptGomponentToTempl(content))
	return c.Render(status, "", page)
}
