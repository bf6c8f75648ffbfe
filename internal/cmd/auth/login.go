package auth

import (
	"fmt"

	"github.com/marckohlbrugge/tempmail-cli/internal/api"
	"github.com/marckohlbrugge/tempmail-cli/internal/auth"
	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/spf13/cobra"
)

type loginOptions struct {
	Server  string
	WithKey bool
}

// NewCmdLogin creates the auth login command.
func NewCmdLogin(f *cmdutil.Factory) *cobra.Command {
	opts := &loginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to a mail server",
		Long: `Log in to a mail server with its auth key.

The key is checked against the server's status endpoint before it is
stored. A server address without a scheme defaults to http://.`,
		Example: `  # Interactive login (prompts for server and key)
  $ tm auth login

  # Key from stdin
  $ echo "$KEY" | tm auth login --server tmp.example.org --with-key`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(f, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Server, "server", "", "Server address")
	cmd.Flags().BoolVar(&opts.WithKey, "with-key", false, "Read the auth key from standard input")

	return cmd
}

func runLogin(f *cmdutil.Factory, opts *loginOptions) error {
	ios := f.IOStreams
	out := ios.Out

	server := opts.Server
	if server == "" {
		if !ios.IsStdinTTY() {
			return cmdutil.FlagErrorf("--server required when not running interactively")
		}
		var err error
		server, err = ios.ReadLine("Server address: ")
		if err != nil {
			return err
		}
	}
	server = api.NormalizeAddress(server)
	if server == "" {
		return cmdutil.FlagErrorf("server address cannot be empty")
	}

	var key string
	var err error
	if opts.WithKey || !ios.IsStdinTTY() {
		key, err = ios.ReadLine("")
	} else {
		key, err = ios.ReadSecret("Paste your auth key: ")
	}
	if err != nil || key == "" {
		return cmdutil.FlagErrorf("key cannot be empty")
	}

	fmt.Fprintln(ios.ErrOut, "Checking connection...")
	status, ok := api.CheckConnection(server, key)
	if !ok {
		return cmdutil.NewAuthError(fmt.Sprintf("could not connect to %s with this key", server))
	}

	if err := auth.Save(auth.Credentials{Server: server, Key: key}); err != nil {
		return err
	}

	fmt.Fprintf(out, "✓ Logged in to %s (%s)\n", status.ServerName, server)
	fmt.Fprintln(out, "Key stored in system keychain.")
	return nil
}
