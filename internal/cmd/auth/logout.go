package auth

import (
	"fmt"

	"github.com/marckohlbrugge/tempmail-cli/internal/auth"
	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/spf13/cobra"
)

type logoutOptions struct {
	Yes bool
}

// NewCmdLogout creates the auth logout command.
func NewCmdLogout(f *cmdutil.Factory) *cobra.Command {
	opts := &logoutOptions{}

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored server and key",
		Long: `Remove the stored server address from the config file and the auth key
from your system keychain.

Environment variables TM_SERVER and TM_KEY are not affected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout(f, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "Skip confirmation prompt")

	return cmd
}

func runLogout(f *cmdutil.Factory, opts *logoutOptions) error {
	out := f.IOStreams.Out

	if !opts.Yes && f.IOStreams.IsInteractive() {
		if !f.IOStreams.Confirm("Log out and forget the stored key?") {
			return cmdutil.CancelError
		}
	}

	if err := auth.Clear(); err != nil {
		return err
	}

	fmt.Fprintln(out, "Logged out.")
	fmt.Fprintln(out, "Key removed from system keychain.")
	return nil
}
