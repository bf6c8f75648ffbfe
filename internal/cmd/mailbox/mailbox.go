package mailbox

import (
	"github.com/marckohlbrugge/tempmail-cli/internal/api"
	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/marckohlbrugge/tempmail-cli/internal/store"
	"github.com/spf13/cobra"
)

// NewCmdMailbox creates the mailbox parent command.
func NewCmdMailbox(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mailbox <command>",
		Short: "Manage mailboxes",
		Long:  "Create, edit, lock, and delete disposable mailboxes.",
		Example: `  $ tm mailbox list
  $ tm mailbox create --name "Shop" --expires 2026-12-31
  $ tm mailbox lock 12
  $ tm mailbox address 12 --copy`,
		GroupID: "mailbox",
	}

	cmd.AddCommand(NewCmdList(f))
	cmd.AddCommand(NewCmdCreate(f))
	cmd.AddCommand(NewCmdEdit(f))
	cmd.AddCommand(NewCmdLock(f))
	cmd.AddCommand(NewCmdUnlock(f))
	cmd.AddCommand(NewCmdDelete(f))
	cmd.AddCommand(NewCmdAddress(f))

	return cmd
}

// findMailbox looks up a mailbox in the store's list.
func findMailbox(s *store.Store, arg string) (api.Mailbox, error) {
	id, err := api.ParseID(arg)
	if err != nil {
		return api.Mailbox{}, cmdutil.FlagErrorWrap(err)
	}
	mb, ok := s.Mailbox(id)
	if !ok {
		return api.Mailbox{}, &cmdutil.NotFoundError{Resource: "mailbox", ID: id.String()}
	}
	return mb, nil
}
