package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// AboutContent describes how the pages are put together.
func AboutContent() g.Node {
	return h.Div(
		h.Class("card"),
		h.H1(g.Text("About")),
		h.P(g.Text("Pages are built with gomponents and wrapped in a templ layout, so they render without a code generation step.")),
		h.P(g.Text("Forms work as plain HTML posts and are upgraded with HTMX fragment swaps when the script is available.")),
	)
}
