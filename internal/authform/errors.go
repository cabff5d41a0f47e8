package authform

import "errors"

// Kind classifies a rejected submission.
type Kind int

const (
	MissingField Kind = iota + 1
	InvalidEmail
	WeakPassword
	PasswordMismatch
	MissingGoogleEmail
)

func (k Kind) String() string {
	switch k {
	case MissingField:
		return "missing_field"
	case InvalidEmail:
		return "invalid_email"
	case WeakPassword:
		return "weak_password"
	case PasswordMismatch:
		return "password_mismatch"
	case MissingGoogleEmail:
		return "missing_google_email"
	}
	return "unknown"
}

// User-facing messages. These strings are the observable contract of Submit.
const (
	MsgMissingField       = "Please fill in all fields"
	MsgInvalidEmail       = "Please enter a valid email address"
	MsgWeakPassword       = "Password must be at least 8 characters, include one uppercase, one number, and one special character"
	MsgPasswordMismatch   = "Passwords do not match"
	MsgMissingGoogleEmail = "Google email is required"

	MsgLoginSucceeded       = "Login successful"
	MsgSignUpSucceeded      = "Sign Up successful"
	MsgGoogleLoginSucceeded = "Google Login successful"
)

// Sentinel errors, one per rejection kind. A *ValidationError matches its
// sentinel under errors.Is.
var (
	ErrMissingField       = &ValidationError{Kind: MissingField, Message: MsgMissingField}
	ErrInvalidEmail       = &ValidationError{Kind: InvalidEmail, Message: MsgInvalidEmail}
	ErrWeakPassword       = &ValidationError{Kind: WeakPassword, Message: MsgWeakPassword}
	ErrPasswordMismatch   = &ValidationError{Kind: PasswordMismatch, Message: MsgPasswordMismatch}
	ErrMissingGoogleEmail = &ValidationError{Kind: MissingGoogleEmail, Message: MsgMissingGoogleEmail}
)

// Input parsing errors.
var (
	ErrUnknownField = errors.New("unknown form field")
	ErrUnknownMode  = errors.New("unknown form mode")
)

// ValidationError reports why a submission was rejected. Its message is
// meant to be shown to the user verbatim.
type ValidationError struct {
	Kind    Kind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports whether target is a ValidationError of the same kind.
func (e *ValidationError) Is(target error) bool {
	var ve *ValidationError
	if !errors.As(target, &ve) {
		return false
	}
	return ve.Kind == e.Kind
}

// IsValidation reports whether err was produced by a rejected submission,
// as opposed to a fault in the surrounding plumbing.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
