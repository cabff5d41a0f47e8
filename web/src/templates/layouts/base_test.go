package layouts

import (
	"strings"
	"testing"

	g "maragu.dev/gomponents"

	"github.com/nfrund/authpage/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase_RendersNotices(t *testing.T) {
	var b strings.Builder
	flashes := view.FlashData{Error: []string{"Passwords do not match"}}

	require.NoError(t, Base("Sign in", flashes, g.Text("body")).Render(&b))

	html := b.String()
	assert.Contains(t, html, "<title>Sign in - authpage</title>")
	assert.Contains(t, html, `class="alert alert-error"`)
	assert.Contains(t, html, "Passwords do not match")
	assert.Contains(t, html, "/static/auth.css")
	assert.Contains(t, html, "d.showModal()")
	assert.Less(t, strings.Index(html, "<dialog"), strings.Index(html, "showModal"),
		"the script runs after the dialogs exist")
}

func TestBase_NoNotices(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Base("", view.FlashData{}, g.Text("body")).Render(&b))

	assert.NotContains(t, b.String(), "<dialog")
	assert.NotContains(t, b.String(), "showModal")
	assert.Contains(t, b.String(), "<title>authpage</title>")
}
