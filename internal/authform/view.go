package authform

// Labels shown by the form. Kept here so every renderer agrees with the
// state machine on what is visible.
const (
	HeadingGoogle = "Login with Google"
	HeadingLogin  = "Welcome Back"
	HeadingSignUp = "Create Account"

	StrengthHint = "Password must be at least 8 characters and include one uppercase letter, one number, and one special character."

	BackLabel = "Back to Login/Signup"
)

// ViewModel is a projection of FormState onto the visible form.
type ViewModel struct {
	Heading string

	Username string
	Email    string
	Password string
	Confirm  string

	// CredentialsDisabled disables the username and email inputs.
	CredentialsDisabled bool
	ShowPassword        bool
	ShowConfirm         bool
	ShowStrengthHint    bool

	SubmitLabel string

	ShowModeToggle bool
	TogglePrompt   string
	ToggleLabel    string

	ShowGoogleButton bool
	ShowBackButton   bool
}

// Project derives what the form should display for s.
func Project(s FormState) ViewModel {
	signUp := s.Mode == ModeSignUp
	standard := !s.GoogleMode

	vm := ViewModel{
		Username:            s.Fields.Username,
		Email:               s.Fields.Email,
		CredentialsDisabled: s.GoogleMode,
		ShowPassword:        standard,
		ShowConfirm:         signUp && standard,
		ShowStrengthHint:    signUp && standard,
		ShowModeToggle:      standard,
		ShowGoogleButton:    standard,
		ShowBackButton:      s.GoogleMode,
	}
	if standard {
		vm.Password = s.Fields.Password
	}
	if vm.ShowConfirm {
		vm.Confirm = s.Fields.ConfirmPassword
	}

	switch {
	case s.GoogleMode:
		vm.Heading = HeadingGoogle
		vm.SubmitLabel = "Login with Google"
	case signUp:
		vm.Heading = HeadingSignUp
		vm.SubmitLabel = "Sign Up"
	default:
		vm.Heading = HeadingLogin
		vm.SubmitLabel = "Login"
	}

	if signUp {
		vm.TogglePrompt = "Already have an account?"
		vm.ToggleLabel = "Login"
	} else {
		vm.TogglePrompt = "Don't have an account?"
		vm.ToggleLabel = "Sign Up"
	}
	return vm
}
