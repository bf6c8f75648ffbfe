package ui

import (
	"context"

	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/marckohlbrugge/tempmail-cli/internal/config"
	"github.com/marckohlbrugge/tempmail-cli/internal/tui"
	"github.com/spf13/cobra"
)

type runFunc func(ctx context.Context, opts tui.Options) error

// NewCmdUI creates the ui command.
func NewCmdUI(f *cmdutil.Factory) *cobra.Command {
	return newCmdUI(f, tui.Run)
}

func newCmdUI(f *cmdutil.Factory, run runFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive interface",
		Long: `Browse mailboxes and emails in an interactive terminal interface that
updates live as emails arrive.

Use 'tm theme' to switch between the dark and light palette.`,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !f.IOStreams.IsInteractive() {
				return cmdutil.FlagErrorf("tm ui requires an interactive terminal")
			}

			creds, err := f.Creds()
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			return run(cmd.Context(), tui.Options{
				Server:       creds.Server,
				Key:          creds.Key,
				DarkTheme:    cfg.DarkTheme,
				StoreOptions: f.StoreOptions,
			})
		},
	}

	return cmd
}
