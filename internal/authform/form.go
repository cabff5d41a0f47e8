package authform

import "fmt"

// Mode selects which variant of the form is active.
type Mode int

const (
	ModeLogin Mode = iota
	ModeSignUp
)

// String returns the wire name of the mode.
func (m Mode) String() string {
	if m == ModeSignUp {
		return "signup"
	}
	return "login"
}

// ParseMode converts a wire name ("login" or "signup") into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "login", "":
		return ModeLogin, nil
	case "signup":
		return ModeSignUp, nil
	}
	return ModeLogin, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Field names one of the four inputs of the form.
type Field string

const (
	FieldUsername        Field = "username"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// AllFields lists every input in display order.
func AllFields() []Field {
	return []Field{FieldUsername, FieldEmail, FieldPassword, FieldConfirmPassword}
}

// ParseField validates a raw input name.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldUsername, FieldEmail, FieldPassword, FieldConfirmPassword:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Fields holds the raw input values.
type Fields struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// FormState is the complete state of one form session. It is a value type;
// every transition returns a fresh copy.
type FormState struct {
	Mode       Mode
	GoogleMode bool
	Fields     Fields
}

// New returns the state a form starts with: login mode, every field empty.
func New() FormState {
	return FormState{Mode: ModeLogin}
}

// Value returns the current value of f.
func (s FormState) Value(f Field) string {
	switch f {
	case FieldUsername:
		return s.Fields.Username
	case FieldEmail:
		return s.Fields.Email
	case FieldPassword:
		return s.Fields.Password
	case FieldConfirmPassword:
		return s.Fields.ConfirmPassword
	}
	return ""
}
