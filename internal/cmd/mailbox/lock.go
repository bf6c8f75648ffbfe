package mailbox

import (
	"fmt"

	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/spf13/cobra"
)

// NewCmdLock creates the mailbox lock command.
func NewCmdLock(f *cmdutil.Factory) *cobra.Command {
	return newLockCmd(f, true)
}

// NewCmdUnlock creates the mailbox unlock command.
func NewCmdUnlock(f *cmdutil.Factory) *cobra.Command {
	return newLockCmd(f, false)
}

func newLockCmd(f *cmdutil.Factory, locked bool) *cobra.Command {
	verb := "lock"
	short := "Lock a mailbox so it stops expiring"
	if !locked {
		verb = "unlock"
		short = "Unlock a mailbox"
	}

	return &cobra.Command{
		Use:   verb + " <mailbox-id>",
		Short: short,
		Args:  cmdutil.ExactArgs(1, fmt.Sprintf("mailbox ID required\n\nUsage: tm mailbox %s <mailbox-id>", verb)),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.ConnectOnce(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Disconnect()

			mb, err := findMailbox(s, args[0])
			if err != nil {
				return err
			}
			if !s.SetMailboxLocked(mb, locked) {
				return cmdutil.SilentError
			}
			fmt.Fprintf(f.IOStreams.Out, "Mailbox %s %sed.\n", mb.Name, verb)
			return nil
		},
	}
}
