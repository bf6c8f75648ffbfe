package mailbox

import (
	"fmt"

	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/marckohlbrugge/tempmail-cli/internal/notify"
	"github.com/spf13/cobra"
)

type deleteOptions struct {
	Yes    bool
	Unsafe bool
}

// NewCmdDelete creates the mailbox delete command.
func NewCmdDelete(f *cmdutil.Factory) *cobra.Command {
	opts := &deleteOptions{}

	cmd := &cobra.Command{
		Use:   "delete <mailbox-id>",
		Short: "Delete a mailbox and its emails",
		Long: `Delete a mailbox together with all of its emails.

This action requires confirmation unless --yes is provided.
In non-interactive mode (scripts, AI), this command is blocked unless --unsafe is specified.`,
		Example: `  # Delete with confirmation prompt
  tm mailbox delete 12

  # Delete without confirmation
  tm mailbox delete 12 --yes`,
		Args: cmdutil.ExactArgs(1, "mailbox ID required\n\nUsage: tm mailbox delete <mailbox-id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, f, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "Skip confirmation prompt")
	cmd.Flags().BoolVar(&opts.Unsafe, "unsafe", false, "Allow in non-interactive mode")

	return cmd
}

func runDelete(cmd *cobra.Command, f *cmdutil.Factory, opts *deleteOptions, arg string) error {
	if err := cmdutil.CheckSafeMode(f.IOStreams, opts.Unsafe, "mailbox delete"); err != nil {
		return err
	}

	declined := false
	confirmer := notify.ConfirmFunc(func(prompt string) bool {
		if opts.Yes || !f.IOStreams.IsInteractive() {
			return true
		}
		if !f.IOStreams.Confirm(prompt) {
			declined = true
			return false
		}
		return true
	})

	s, err := f.ConnectOnce(cmd.Context(), confirmer)
	if err != nil {
		return err
	}
	defer s.Disconnect()

	mb, err := findMailbox(s, arg)
	if err != nil {
		return err
	}

	if !s.DeleteMailbox(mb) {
		if declined {
			return cmdutil.CancelError
		}
		return cmdutil.SilentError
	}

	fmt.Fprintf(f.IOStreams.Out, "Mailbox %s deleted.\n", mb.Name)
	return nil
}
