package email

import (
	"fmt"

	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/marckohlbrugge/tempmail-cli/internal/store"
	"github.com/spf13/cobra"
)

type deleteOptions struct {
	Yes    bool
	Unsafe bool
}

// NewCmdDelete creates the email delete command.
func NewCmdDelete(f *cmdutil.Factory) *cobra.Command {
	opts := &deleteOptions{}

	cmd := &cobra.Command{
		Use:   "delete <mailbox-id> <email-id>...",
		Short: "Delete emails",
		Long: fmt.Sprintf(`Delete up to %d emails of a mailbox in one request.

This action requires confirmation unless --yes is provided.
In non-interactive mode (scripts, AI), this command is blocked unless --unsafe is specified.`, store.MaxDeleteBatch),
		Example: `  # Delete with confirmation prompt
  tm email delete 12 345

  # Delete several without confirmation
  tm email delete 12 345 346 347 --yes`,
		Args: cmdutil.MinimumArgs(2, "mailbox ID and at least one email ID required\n\nUsage: tm email delete <mailbox-id> <email-id>..."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, f, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "Skip confirmation prompt")
	cmd.Flags().BoolVar(&opts.Unsafe, "unsafe", false, "Allow in non-interactive mode")

	return cmd
}

func runDelete(cmd *cobra.Command, f *cmdutil.Factory, opts *deleteOptions, args []string) error {
	if err := cmdutil.CheckSafeMode(f.IOStreams, opts.Unsafe, "email delete"); err != nil {
		return err
	}

	ids, err := cmdutil.ParseIDs(args)
	if err != nil {
		return err
	}
	mailboxID, emailIDs := ids[0], ids[1:]

	s, err := f.ConnectOnce(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer s.Disconnect()

	mb, ok := s.Mailbox(mailboxID)
	if !ok {
		return &cmdutil.NotFoundError{Resource: "mailbox", ID: mailboxID.String()}
	}

	if !opts.Yes && f.IOStreams.IsInteractive() {
		fmt.Fprintf(f.IOStreams.ErrOut, "Mailbox: %s\n", mb.Name)
		if !f.IOStreams.Confirm(fmt.Sprintf("Delete %d email(s)?", len(emailIDs))) {
			return cmdutil.CancelError
		}
	}

	if !s.DeleteEmails(mailboxID, emailIDs) {
		return cmdutil.SilentError
	}

	fmt.Fprintf(f.IOStreams.Out, "Deleted %d email(s).\n", len(emailIDs))
	return nil
}
