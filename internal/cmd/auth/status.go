package auth

import (
	"fmt"

	"github.com/marckohlbrugge/tempmail-cli/internal/api"
	"github.com/marckohlbrugge/tempmail-cli/internal/auth"
	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/spf13/cobra"
)

// NewCmdStatus creates the auth status command.
func NewCmdStatus(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Display authentication status",
		Long:  `Display the configured server, where the key comes from, and whether the server accepts it.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(f)
		},
	}

	return cmd
}

func runStatus(f *cmdutil.Factory) error {
	out := f.IOStreams.Out
	cs := f.Credentials
	if cs == nil {
		cs = auth.NewCredentialSource()
	}

	server, key := cs.Server(), cs.Key()
	if server == "" || key == "" {
		fmt.Fprintln(out, "✗ Not logged in")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Run 'tm auth login' to connect to a server.")
		return cmdutil.SilentError
	}

	fmt.Fprintln(out, server)
	if cs.FromEnv() {
		fmt.Fprintln(out, "  - Credentials from TM_SERVER / TM_KEY environment variables")
	} else {
		fmt.Fprintln(out, "  - Key stored in system keychain")
	}
	fmt.Fprintf(out, "  - Key: %s\n", maskKey(key))

	status, ok := api.CheckConnection(server, key)
	if !ok {
		fmt.Fprintln(out, "  ✗ Server rejected the key or is unreachable")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Run 'tm auth login' to log in again.")
		return cmdutil.SilentError
	}
	fmt.Fprintf(out, "  ✓ Connected to %s\n", status.ServerName)
	return nil
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
