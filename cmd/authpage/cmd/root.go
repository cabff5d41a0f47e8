package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "authpage",
	Short: "Login / sign-up form server",
	Long: `authpage serves a login and sign-up form with a simulated Google login.

Available commands:
  serve     Start the HTTP server
  submit    Validate one form submission from the command line
  version   Print the version number

Use "authpage [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
