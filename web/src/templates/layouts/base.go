package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/authpage/internal/view"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps page content in the HTML document shell and shows pending
// flash notices as an open dialog above it.
func Base(title string, flashes view.FlashData, content g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "en",
		Head: []g.Node{
			h.Link(h.Rel("stylesheet"), h.Href("/static/auth.css")),
			h.Script(h.Src(htmxSrc), h.Defer()),
		},
		Body: []g.Node{
			Notices(flashes),
			content,
		},
	})
}

// showModalScript reopens every notice as a modal dialog, which makes the
// rest of the page inert until the user dismisses it. Without scripting the
// notices stay open inline.
const showModalScript = `<script>document.querySelectorAll("dialog.alert").forEach(function (d) { d.close(); d.showModal(); });</script>`

// ShowNotices opens the rendered notices modally.
func ShowNotices() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, showModalScript)
		return err
	})
}

// Notices renders every flash message as a modal dialog the user dismisses
// explicitly. It renders nothing when there are no messages.
func Notices(flashes view.FlashData) g.Node {
	if flashes.Empty() {
		return nil
	}
	return g.Group{
		g.Map(flashes.Error, func(msg string) g.Node { return notice("alert-error", msg) }),
		g.Map(flashes.Success, func(msg string) g.Node { return notice("alert-success", msg) }),
		view.AdaptTemplToGomponent(ShowNotices()),
	}
}

func notice(class, msg string) g.Node {
	return h.Dialog(
		g.Attr("open"),
		h.Class("alert "+class),
		h.Role("alertdialog"),
		h.P(g.Text(msg)),
		h.Form(
			h.Method("dialog"),
			h.Button(h.Type("submit"), g.Text("OK")),
		),
	)
}
