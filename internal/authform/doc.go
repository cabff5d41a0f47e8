// Package authform implements the login / sign-up form as a value-typed
// state machine.
//
// A FormState is never mutated in place. UpdateField, SwitchMode,
// EnterGoogleMode, ExitGoogleMode and Submit each take a state and return
// the next one, so every reset point can be exercised on its own. Submit
// reports rejections as *ValidationError values whose messages are shown to
// the user as-is.
//
// Google mode is a mock: it pre-fills a fixed identity and never contacts an
// identity provider.
package authform
