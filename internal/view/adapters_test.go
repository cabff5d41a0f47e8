package view

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	h "maragu.dev/gomponents/html"
)

func TestAdaptGomponentToTempl(t *testing.T) {
	var b strings.Builder
	c := AdaptGomponentToTempl(h.P(h.Class("alert"), h.Span()))

	require.NoError(t, c.Render(context.Background(), &b))
	assert.Equal(t, `<p class="alert"><span></span></p>`, b.String())
}

func TestAdaptTemplToGomponent(t *testing.T) {
	var b strings.Builder
	comp := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<script>ok()</script>")
		return err
	})

	require.NoError(t, h.Div(AdaptTemplToGomponent(comp)).Render(&b))
	assert.Equal(t, "<div><script>ok()</script></div>", b.String())
}
