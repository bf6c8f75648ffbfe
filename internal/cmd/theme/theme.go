package theme

import (
	"fmt"

	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/marckohlbrugge/tempmail-cli/internal/config"
	"github.com/spf13/cobra"
)

// NewCmdTheme creates the theme command.
func NewCmdTheme(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [dark|light]",
		Short: "Show or change the interface theme",
		Long: `Set the color theme of the interactive interface. Without an argument the
theme is toggled between dark and light.`,
		Example: `  $ tm theme
  $ tm theme dark`,
		GroupID:   "utility",
		Args:      cmdutil.RangeArgs(0, 1, ""),
		ValidArgs: []string{"dark", "light"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(f, args)
		},
	}

	return cmd
}

func runTheme(f *cmdutil.Factory, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		cfg.DarkTheme = !cfg.DarkTheme
	} else {
		switch args[0] {
		case "dark":
			cfg.DarkTheme = true
		case "light":
			cfg.DarkTheme = false
		default:
			return cmdutil.FlagErrorf("invalid theme %q: use dark or light", args[0])
		}
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Fprintf(f.IOStreams.Out, "Theme set to %s.\n", Name(cfg.DarkTheme))
	return nil
}

// Name returns the theme name for the dark flag.
func Name(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
