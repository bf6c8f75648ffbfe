package mailboxes

import (
	"github.com/marckohlbrugge/tempmail-cli/internal/cmd/mailbox"
	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/spf13/cobra"
)

// NewCmdMailboxes creates the mailboxes command, a shortcut for
// 'tm mailbox list'.
func NewCmdMailboxes(f *cmdutil.Factory) *cobra.Command {
	cmd := mailbox.NewCmdList(f)
	cmd.Use = "mailboxes"
	cmd.Long = `List all mailboxes on the server.

This is an alias for 'tm mailbox list'.`
	cmd.Example = `  # List all mailboxes
  tm mailboxes

  # Output as JSON
  tm mailboxes --json`
	cmd.GroupID = "core"
	return cmd
}
