package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/goby-reset/internal/routepath"
	"github.com/nfrund/goby-reset/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps page content in the full HTML document, rendering any flash
// messages above it.
func Base(appName, title string, flashes view.FlashData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return document(appName, title, flashes, view.AdaptTemplToGomponent(ctx, content)).Render(w)
	})
}

func document(appName, title string, flashes view.FlashData, content g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(title, appName))),
				h.Link(h.Rel("stylesheet"), h.Href(routepath.Static+"/css/app.css")),
				h.Script(h.Src(htmxScriptURL), h.Defer()),
			),
			h.Body(
				h.Main(
					h.Class("container"),
					Flashes(flashes),
					content,
				),
			),
		),
	)
}

// Flashes renders error notices. It renders nothing when there are none.
func Flashes(flashes view.FlashData) g.Node {
	if flashes.Empty() {
		return nil
	}

	var nodes []g.Node
	for _, msg := range flashes.Error {
		nodes = append(nodes, h.Div(h.Class("flash flash-error"), g.Text(msg)))
	}
	return h.Div(append([]g.Node{h.ID("flashes")}, nodes...)...)
}
