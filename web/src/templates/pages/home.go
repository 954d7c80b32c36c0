package pages

import (
	"github.com/nfrund/goby-reset/internal/routepath"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Home is the landing page.
func Home(appName string) g.Node {
	return h.Div(
		h.Class("card"),
		h.H1(g.Textf("Welcome to %s", appName)),
		h.P(g.Text("Sign in to continue, or request a link to reset your password.")),
		h.Div(
			h.Class("links"),
			h.A(h.Href(routepath.SignIn), g.Text("Sign in")),
			h.A(h.Href(routepath.ForgotPassword), g.Text("Forgot your password?")),
			h.A(h.Href(routepath.About), g.Text("About")),
		),
	)
}

// SignIn is the sign-in destination linked from the reset flow. Credential
// checks belong to the authentication service, not to this page.
func SignIn() g.Node {
	return h.Div(
		h.Class("card"),
		h.H1(g.Text("Sign in")),
		h.P(g.Text("Sign-in is handled by the authentication service.")),
		h.Div(
			h.Class("links"),
			h.A(h.Href(routepath.ForgotPassword), g.Text("Forgot your password?")),
			h.A(h.Href(routepath.Home), g.Text("Home")),
		),
	)
}
