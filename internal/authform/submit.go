package authform

// OutcomeKind identifies which flow accepted a submission.
type OutcomeKind int

const (
	LoginSucceeded OutcomeKind = iota + 1
	SignUpSucceeded
	GoogleLoginSucceeded
)

func (k OutcomeKind) String() string {
	switch k {
	case LoginSucceeded:
		return "login_succeeded"
	case SignUpSucceeded:
		return "signup_succeeded"
	case GoogleLoginSucceeded:
		return "google_login_succeeded"
	}
	return "unknown"
}

// Outcome describes an accepted submission.
type Outcome struct {
	Kind    OutcomeKind
	Message string
}

// Submit evaluates s and either accepts or rejects it.
//
// Checks run in a fixed order and the first failing one is reported as a
// *ValidationError; the returned state is then s unchanged. On success the
// returned state has every field cleared (and Google mode left, if it was
// active).
func Submit(s FormState) (FormState, Outcome, error) {
	if s.GoogleMode {
		if !check(s.Fields.Email, tagRequired) {
			return s, Outcome{}, ErrMissingGoogleEmail
		}
		return ExitGoogleMode(s), Outcome{Kind: GoogleLoginSucceeded, Message: MsgGoogleLoginSucceeded}, nil
	}

	if err := validateCredentials(s); err != nil {
		return s, Outcome{}, err
	}

	out := Outcome{Kind: LoginSucceeded, Message: MsgLoginSucceeded}
	if s.Mode == ModeSignUp {
		out = Outcome{Kind: SignUpSucceeded, Message: MsgSignUpSucceeded}
	}
	return clearFields(s), out, nil
}

func validateCredentials(s FormState) error {
	f := s.Fields

	required := []string{f.Username, f.Email, f.Password}
	if s.Mode == ModeSignUp {
		required = append(required, f.ConfirmPassword)
	}
	for _, v := range required {
		if !check(v, tagRequired) {
			return ErrMissingField
		}
	}

	if !check(f.Email, tagLooseEmail) {
		return ErrInvalidEmail
	}

	if s.Mode != ModeSignUp {
		return nil
	}
	if !check(f.Password, tagStrongPassword) {
		return ErrWeakPassword
	}
	if f.Password != f.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}
