package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/marckohlbrugge/tempmail-cli/internal/socket"
	"github.com/marckohlbrugge/tempmail-cli/internal/store"
	"github.com/spf13/cobra"
)

// NewCmdWatch creates the watch command.
func NewCmdWatch(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream mailbox and email events",
		Long: `Connect to the server's push channel and print mailbox changes and new
emails as they happen, until interrupted or the server closes the connection.`,
		Example: `  $ tm watch`,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runWatch(ctx, f)
		},
	}

	return cmd
}

type printer struct {
	mu    sync.Mutex
	out   io.Writer
	store *store.Store
}

func (p *printer) print(ev socket.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	serverName := p.store.Connection().ServerName
	switch e := ev.(type) {
	case socket.MailboxCreated:
		fmt.Fprintf(p.out, "+ mailbox %s %s <%s>\n", e.Mailbox.ID, e.Mailbox.Name, e.Mailbox.FullAddress(serverName))
	case socket.MailboxEdited:
		fmt.Fprintf(p.out, "~ mailbox %s %s <%s>\n", e.Mailbox.ID, e.Mailbox.Name, e.Mailbox.FullAddress(serverName))
	case socket.MailboxDeleted:
		fmt.Fprintf(p.out, "- mailbox %s\n", e.ID)
	case socket.NewEmail:
		name := e.MailboxID.String()
		if mb, ok := p.store.Mailbox(e.MailboxID); ok {
			name = mb.Name
		}
		env := e.Email.Envelope()
		subject := env.Subject
		if subject == "" {
			subject = "(no subject)"
		}
		fmt.Fprintf(p.out, "* %s: %s (from %s, email %s)\n", name, subject, env.From, e.Email.ID)
	}
}

func runWatch(ctx context.Context, f *cmdutil.Factory) error {
	creds, err := f.Creds()
	if err != nil {
		return err
	}

	p := &printer{out: f.IOStreams.Out}
	s := f.NewStore(nil, store.WithEventHook(p.print))
	p.store = s

	fmt.Fprintf(f.IOStreams.ErrOut, "Watching %s. Press Ctrl+C to stop.\n", creds.Server)
	if !s.Connect(ctx, creds.Server, creds.Key) {
		return cmdutil.SilentError
	}
	defer s.Disconnect()

	return s.Wait()
}
