package pages

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/authpage/internal/authform"
)

// Routes the auth page posts to.
const (
	PathSubmit     = "/auth/submit"
	PathField      = "/auth/field"
	PathMode       = "/auth/mode"
	PathGoogle     = "/auth/google"
	PathGoogleBack = "/auth/google/back"
)

// Auth renders the login / sign-up form for vm.
func Auth(vm authform.ViewModel) g.Node {
	return h.Div(
		h.Class("auth-container"),
		h.Div(
			h.Class("auth-box"),
			h.H2(g.Text(vm.Heading)),
			h.Form(
				h.Action(PathSubmit),
				h.Method("post"),
				g.Attr("novalidate"),
				textInput(authform.FieldUsername, "Username", "text", vm.Username, vm.CredentialsDisabled),
				textInput(authform.FieldEmail, "Email", "email", vm.Email, vm.CredentialsDisabled),
				g.If(vm.ShowPassword, textInput(authform.FieldPassword, "Password", "password", vm.Password, false)),
				g.If(vm.ShowStrengthHint, h.Small(g.Text(authform.StrengthHint))),
				g.If(vm.ShowConfirm, textInput(authform.FieldConfirmPassword, "Confirm Password", "password", vm.Confirm, false)),
				h.Button(h.Type("submit"), g.Text(vm.SubmitLabel)),
			),
			g.If(vm.ShowModeToggle, h.Div(
				h.Class("toggle-text"),
				h.Span(g.Text(vm.TogglePrompt)),
				actionButton(PathMode, "mode-btn", vm.ToggleLabel),
			)),
			g.If(vm.ShowGoogleButton, h.Div(
				h.Class("google-signin"),
				h.P(g.Text("Or login with")),
				actionButton(PathGoogle, "google-btn", "Google"),
			)),
			g.If(vm.ShowBackButton, actionButton(PathGoogleBack, "back-btn", authform.BackLabel)),
		),
	)
}

// textInput renders a labeled input that reports each change back to the
// server so the stored form state follows what the user typed.
func textInput(f authform.Field, label, typ, value string, disabled bool) g.Node {
	name := string(f)
	return g.Group{
		h.Label(h.For(name), g.Text(label)),
		h.Input(
			h.Type(typ),
			h.ID(name),
			h.Name(name),
			h.Value(value),
			h.Required(),
			g.If(disabled, h.Disabled()),
			hx.Post(PathField),
			hx.Trigger("change"),
			hx.Swap("none"),
			g.Attr("hx-vals", `{"field":"`+name+`"}`),
		),
	}
}

func actionButton(action, id, label string) g.Node {
	return h.Form(
		h.Action(action),
		h.Method("post"),
		h.Button(h.Type("submit"), h.ID(id), g.Text(label)),
	)
}
