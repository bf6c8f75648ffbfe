package email

import (
	"github.com/marckohlbrugge/tempmail-cli/internal/api"
	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/marckohlbrugge/tempmail-cli/internal/store"
	"github.com/spf13/cobra"
)

// NewCmdEmail creates the email parent command.
func NewCmdEmail(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email <command>",
		Short: "Read and delete emails",
		Long:  "List, read, and delete the emails of a mailbox.",
		Example: `  $ tm email list 12
  $ tm email read 12 345
  $ tm email delete 12 345 346`,
		GroupID: "email",
	}

	cmd.AddCommand(NewCmdList(f))
	cmd.AddCommand(NewCmdRead(f))
	cmd.AddCommand(NewCmdDelete(f))

	return cmd
}

// openMailbox opens a mailbox of the list so its emails are loaded.
func openMailbox(s *store.Store, arg string) (api.ID, error) {
	id, err := api.ParseID(arg)
	if err != nil {
		return "", cmdutil.FlagErrorWrap(err)
	}
	if _, ok := s.Mailbox(id); !ok {
		return "", &cmdutil.NotFoundError{Resource: "mailbox", ID: id.String()}
	}
	if !s.OpenMailbox(id) {
		return "", cmdutil.SilentError
	}
	return id, nil
}
