package authform

// Google pre-fill values used when the simulated federated login starts.
// No identity provider is contacted.
const (
	GoogleUsername = "GoogleUser"
	GoogleEmail    = "user@gmail.com"
)

// UpdateField returns s with field f set to v. No validation is done here.
func UpdateField(s FormState, f Field, v string) FormState {
	switch f {
	case FieldUsername:
		s.Fields.Username = v
	case FieldEmail:
		s.Fields.Email = v
	case FieldPassword:
		s.Fields.Password = v
	case FieldConfirmPassword:
		s.Fields.ConfirmPassword = v
	}
	return s
}

// SwitchMode toggles between login and sign-up. It always leaves Google
// mode and clears every field.
func SwitchMode(s FormState) FormState {
	next := ModeSignUp
	if s.Mode == ModeSignUp {
		next = ModeLogin
	}
	return FormState{Mode: next}
}

// EnterGoogleMode starts the mock federated login and pre-fills the
// identity it would have returned.
func EnterGoogleMode(s FormState) FormState {
	return FormState{
		Mode:       s.Mode,
		GoogleMode: true,
		Fields: Fields{
			Username: GoogleUsername,
			Email:    GoogleEmail,
		},
	}
}

// ExitGoogleMode leaves Google mode and clears every field.
func ExitGoogleMode(s FormState) FormState {
	return FormState{Mode: s.Mode}
}

// clearFields keeps the mode flags and empties the inputs.
func clearFields(s FormState) FormState {
	s.Fields = Fields{}
	return s
}
