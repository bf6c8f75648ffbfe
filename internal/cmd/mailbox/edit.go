package mailbox

import (
	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/spf13/cobra"
)

// NewCmdEdit creates the mailbox edit command.
func NewCmdEdit(f *cmdutil.Factory) *cobra.Command {
	opts := &draftOptions{}

	cmd := &cobra.Command{
		Use:   "edit <mailbox-id>",
		Short: "Edit a mailbox",
		Long: `Change the name, address or expiration of a mailbox.

Only the flags given are changed. Without flags in an interactive terminal,
a form prefilled with the current values is shown.`,
		Example: `  tm mailbox edit 12 --name "Old shop"
  tm mailbox edit 12 --never`,
		Args: cmdutil.ExactArgs(1, "mailbox ID required\n\nUsage: tm mailbox edit <mailbox-id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			return runEdit(cmd, f, opts, args[0])
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, f *cmdutil.Factory, opts *draftOptions, arg string) error {
	s, err := f.ConnectOnce(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer s.Disconnect()

	mb, err := findMailbox(s, arg)
	if err != nil {
		return err
	}

	d := s.NewDraft(&mb)
	if anyDraftFlag(cmd) {
		opts.apply(cmd, d)
	} else if f.IOStreams.IsInteractive() {
		if err := runDraftForm(d); err != nil {
			return err
		}
	} else {
		return cmdutil.FlagErrorf("nothing to change: use --name, --address, --expires or --never")
	}

	if !s.SaveDraft(d) {
		return cmdutil.SilentError
	}
	return nil
}
