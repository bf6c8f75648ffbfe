package mailbox

import (
	"fmt"
	"time"

	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/spf13/cobra"
)

type listOptions struct {
	JSON bool
}

// NewCmdList creates the mailbox list command.
func NewCmdList(f *cmdutil.Factory) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List mailboxes",
		Long: `List all mailboxes on the server.

Displays ID, name, full address, expiration, and flags (locked, unread count,
time of the last email).`,
		Example: `  # List all mailboxes
  tm mailbox list

  # Output as JSON
  tm mailbox list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, f, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// runList prints the mailbox list. It backs both 'tm mailbox list' and
// 'tm mailboxes'.
func runList(cmd *cobra.Command, f *cmdutil.Factory, opts *listOptions) error {
	s, err := f.ConnectOnce(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer s.Disconnect()

	mailboxes := s.Mailboxes()

	if opts.JSON {
		return cmdutil.PrintJSON(f.IOStreams.Out, mailboxes)
	}

	if len(mailboxes) == 0 {
		fmt.Fprintln(f.IOStreams.Out, "No mailboxes found.")
		return nil
	}

	cmdutil.PrintMailboxList(f.IOStreams.Out, mailboxes, s.Connection().ServerName, time.Now())
	return nil
}
