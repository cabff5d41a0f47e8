package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfrund/authpage/internal/authform"
)

type submitFlags struct {
	mode            string
	google          bool
	username        string
	email           string
	password        string
	confirmPassword string
}

var submitOpts submitFlags

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Validate one form submission from the command line",
	Long: `Run the form's submit rules against the given values and print the message
the user would see. Exits with status 1 when the submission is rejected.

With --google the form starts from the mock Google identity; --email overrides
the pre-filled address.`,
	Example: `  authpage submit --mode signup --username bob --email bob@x.com \
    --password 'Abcdef1!' --confirm-password 'Abcdef1!'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := submitOpts.state(cmd)
		if err != nil {
			return err
		}

		ctrl := authform.NewController(state, authform.NotifierFuncs{
			OnSuccess: func(msg string) { fmt.Fprintln(cmd.OutOrStdout(), msg) },
			OnError:   func(msg string) { fmt.Fprintln(cmd.ErrOrStderr(), msg) },
		})
		if _, err := ctrl.Submit(); err != nil {
			cmd.SilenceErrors = true
			return err
		}
		return nil
	},
}

// state builds the form the way a user would have filled it in.
func (f submitFlags) state(cmd *cobra.Command) (authform.FormState, error) {
	mode, err := authform.ParseMode(f.mode)
	if err != nil {
		return authform.FormState{}, err
	}
	s := authform.New()
	if mode == authform.ModeSignUp {
		s = authform.SwitchMode(s)
	}

	if f.google {
		s = authform.EnterGoogleMode(s)
		if cmd.Flags().Changed("email") {
			s = authform.UpdateField(s, authform.FieldEmail, f.email)
		}
		return s, nil
	}

	s = authform.UpdateField(s, authform.FieldUsername, f.username)
	s = authform.UpdateField(s, authform.FieldEmail, f.email)
	s = authform.UpdateField(s, authform.FieldPassword, f.password)
	s = authform.UpdateField(s, authform.FieldConfirmPassword, f.confirmPassword)
	return s, nil
}

func init() {
	flags := submitCmd.Flags()
	flags.StringVar(&submitOpts.mode, "mode", "login", "form mode: login or signup")
	flags.BoolVar(&submitOpts.google, "google", false, "use the mock Google login")
	flags.StringVar(&submitOpts.username, "username", "", "username")
	flags.StringVar(&submitOpts.email, "email", "", "email address")
	flags.StringVar(&submitOpts.password, "password", "", "password")
	flags.StringVar(&submitOpts.confirmPassword, "confirm-password", "", "password confirmation (signup only)")
	rootCmd.AddCommand(submitCmd)
}
