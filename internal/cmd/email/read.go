package email

import (
	"fmt"
	"strings"

	"github.com/marckohlbrugge/tempmail-cli/internal/api"
	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/marckohlbrugge/tempmail-cli/internal/render"
	"github.com/spf13/cobra"
)

type readOptions struct {
	Headers bool
	JSON    bool
}

// NewCmdRead creates the email read command.
func NewCmdRead(f *cmdutil.Factory) *cobra.Command {
	opts := &readOptions{}

	cmd := &cobra.Command{
		Use:   "read <mailbox-id> <email-id>",
		Short: "Display an email",
		Long: `Display an email and mark it read.

The body is sanitized and converted to plain text. Use --headers to show the
raw headers instead.`,
		Example: `  # Read an email
  tm email read 12 345

  # Show raw headers
  tm email read 12 345 --headers`,
		Args: cmdutil.ExactArgs(2, "mailbox ID and email ID required\n\nUsage: tm email read <mailbox-id> <email-id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(cmd, f, opts, args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&opts.Headers, "headers", false, "Show raw headers instead of the body")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

func runRead(cmd *cobra.Command, f *cmdutil.Factory, opts *readOptions, mailboxArg, emailArg string) error {
	s, err := f.ConnectOnce(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer s.Disconnect()

	if _, err := openMailbox(s, mailboxArg); err != nil {
		return err
	}

	emailID, err := api.ParseID(emailArg)
	if err != nil {
		return cmdutil.FlagErrorWrap(err)
	}
	if !hasEmail(s.Emails(), emailID) {
		return &cmdutil.NotFoundError{Resource: "email", ID: emailID.String()}
	}
	if !s.OpenEmail(emailID) {
		return cmdutil.SilentError
	}
	email, _ := s.CurrentEmail()

	if opts.JSON {
		return cmdutil.PrintJSON(f.IOStreams.Out, email)
	}

	if opts.Headers {
		fmt.Fprintln(f.IOStreams.Out, strings.TrimRight(email.Headers, "\r\n"))
		return nil
	}

	printEmail(f, &email, render.Terminal(s.CurrentEmailBody()))
	return nil
}

func hasEmail(emails []api.Email, id api.ID) bool {
	for _, e := range emails {
		if e.ID == id {
			return true
		}
	}
	return false
}

func printEmail(f *cmdutil.Factory, email *api.Email, body string) {
	out := f.IOStreams.Out
	sep := strings.Repeat("─", 72)
	env := email.Envelope()

	fmt.Fprintln(out, sep)
	fmt.Fprintf(out, "ID:      %s\n", email.ID)
	fmt.Fprintf(out, "From:    %s\n", env.From)
	fmt.Fprintf(out, "To:      %s\n", env.To)
	if !env.Date.IsZero() {
		fmt.Fprintf(out, "Date:    %s\n", env.Date.Local().Format("Mon, Jan 2, 2006 at 3:04 PM"))
	}

	subject := env.Subject
	if subject == "" {
		subject = "(no subject)"
	}
	fmt.Fprintf(out, "Subject: %s\n", subject)
	fmt.Fprintln(out, sep)

	if body == "" {
		body = "(no body)"
	}
	fmt.Fprintln(out, body)
}
