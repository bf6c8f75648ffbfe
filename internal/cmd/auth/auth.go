package auth

import (
	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/spf13/cobra"
)

// NewCmdAuth creates the auth parent command.
func NewCmdAuth(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth <command>",
		Short: "Connect tm to a mail server",
		Long: `Connect tm to a disposable mail server.

The server address is stored in the config file and the auth key in your
system's credential store (macOS Keychain, Windows Credential Manager, or
Linux Secret Service).

Alternatively, set the TM_SERVER and TM_KEY environment variables.`,
		Example: `  $ tm auth login --server https://tmp.example.org
  $ tm auth status
  $ tm auth logout`,
		GroupID: "auth",
	}

	cmd.AddCommand(NewCmdLogin(f))
	cmd.AddCommand(NewCmdStatus(f))
	cmd.AddCommand(NewCmdLogout(f))

	return cmd
}
