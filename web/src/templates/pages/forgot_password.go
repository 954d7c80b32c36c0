package pages

import (
	"github.com/nfrund/goby-reset/internal/passwordreset"
	"github.com/nfrund/goby-reset/internal/routepath"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// ForgotPasswordCardID is the element HTMX swaps between the form and the
// confirmation.
const ForgotPasswordCardID = "forgot-password-card"

// ForgotPasswordData carries the value pre-filled into the email input.
type ForgotPasswordData struct {
	Email string
}

// ForgotPasswordSentData carries the email the link was "sent" to.
type ForgotPasswordSentData struct {
	Email string
}

// ForgotPassword renders the email form. The input relies on the browser's
// native required/email constraint; no error text is ever rendered here.
func ForgotPassword(data ForgotPasswordData) g.Node {
	return card(
		MailIcon(),
		h.H1(g.Text("Forgot your password?")),
		h.P(g.Text("Enter the email address associated with your account and we'll send you a link to reset your password.")),
		h.Form(
			h.Method("post"),
			h.Action(routepath.ForgotPassword),
			hx.Post(routepath.ForgotPassword),
			hx.Target("#"+ForgotPasswordCardID),
			hx.Swap("outerHTML"),
			h.Div(
				h.Class("field"),
				h.Label(h.For("email"), g.Text("Email")),
				h.Input(
					h.Type("email"),
					h.Name("email"),
					h.ID("email"),
					h.Placeholder("you@example.com"),
					h.AutoComplete("email"),
					h.Required(),
					h.Value(data.Email),
				),
			),
			h.Button(h.Type("submit"), h.Class("button"), g.Text("Send reset link")),
		),
		navLinks(),
	)
}

// ForgotPasswordSent renders the confirmation for a submitted email.
func ForgotPasswordSent(data ForgotPasswordSentData) g.Node {
	return card(
		MailIcon(),
		h.H1(g.Text("Check your email")),
		h.P(
			h.ID("confirmation"),
			g.Text(passwordreset.ConfirmationPrefix),
			h.Strong(g.Text(data.Email)),
		),
		h.P(g.Text("Didn't receive the email? Check your spam folder or try another email address.")),
		h.Form(
			h.Method("post"),
			h.Action(routepath.ForgotPasswordRetry),
			hx.Post(routepath.ForgotPasswordRetry),
			hx.Target("#"+ForgotPasswordCardID),
			hx.Swap("outerHTML"),
			h.Button(h.Type("submit"), h.Class("button button-secondary"), g.Text("Try another email")),
		),
		navLinks(),
	)
}

func card(children ...g.Node) g.Node {
	return h.Div(append([]g.Node{h.ID(ForgotPasswordCardID), h.Class("card")}, children...)...)
}

func navLinks() g.Node {
	return h.Div(
		h.Class("links"),
		h.A(h.Href(routepath.SignIn), g.Text("Back to sign in")),
		h.A(h.Href(routepath.Home), g.Text("Home")),
	)
}
