package email

import (
	"fmt"
	"time"

	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/spf13/cobra"
)

type listOptions struct {
	JSON bool
}

// NewCmdList creates the email list command.
func NewCmdList(f *cmdutil.Factory) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list <mailbox-id>",
		Short: "List the emails of a mailbox",
		Long: `List the emails of a mailbox, newest first.

Unread emails are marked with *.`,
		Example: `  tm email list 12
  tm email list 12 --json`,
		Args: cmdutil.ExactArgs(1, "mailbox ID required\n\nUsage: tm email list <mailbox-id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, f, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, f *cmdutil.Factory, opts *listOptions, arg string) error {
	s, err := f.ConnectOnce(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer s.Disconnect()

	if _, err := openMailbox(s, arg); err != nil {
		return err
	}
	emails := s.Emails()

	if opts.JSON {
		return cmdutil.PrintJSON(f.IOStreams.Out, emails)
	}

	if len(emails) == 0 {
		fmt.Fprintln(f.IOStreams.Out, "No emails.")
		return nil
	}

	cmdutil.PrintEmailList(f.IOStreams.Out, emails, time.Now())
	return nil
}
