package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/authpage/internal/authform"
)

// run executes the root command with args on fresh flag state.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	submitOpts = submitFlags{}
	submitCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSubmitCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantOut string
		wantErr error
	}{
		{
			name:    "login succeeds",
			args:    []string{"submit", "--username", "bob", "--email", "bob@x.com", "--password", "pw"},
			wantOut: "Login successful\n",
		},
		{
			name:    "login missing password",
			args:    []string{"submit", "--username", "bob", "--email", "bob@x.com"},
			wantErr: authform.ErrMissingField,
		},
		{
			name: "signup weak password",
			args: []string{"submit", "--mode", "signup", "--username", "bob", "--email", "bob@x.com",
				"--password", "short", "--confirm-password", "short"},
			wantErr: authform.ErrWeakPassword,
		},
		{
			name: "signup succeeds",
			args: []string{"submit", "--mode", "signup", "--username", "bob", "--email", "bob@x.com",
				"--password", "Abcdef1!", "--confirm-password", "Abcdef1!"},
			wantOut: "Sign Up successful\n",
		},
		{
			name:    "google uses pre-filled email",
			args:    []string{"submit", "--google"},
			wantOut: "Google Login successful\n",
		},
		{
			name:    "google with blank email",
			args:    []string{"submit", "--google", "--email", ""},
			wantErr: authform.ErrMissingGoogleEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := run(t, tt.args...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, stderr, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, stdout)
		})
	}
}

func TestSubmitCmd_UnknownMode(t *testing.T) {
	_, _, err := run(t, "submit", "--mode", "register")
	assert.ErrorIs(t, err, authform.ErrUnknownMode)
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "authpage v"+version+"\n", stdout)
}
