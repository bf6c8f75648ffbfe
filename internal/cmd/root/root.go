package root

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/marckohlbrugge/tempmail-cli/internal/cmd/auth"
	"github.com/marckohlbrugge/tempmail-cli/internal/cmd/completion"
	"github.com/marckohlbrugge/tempmail-cli/internal/cmd/email"
	"github.com/marckohlbrugge/tempmail-cli/internal/cmd/mailbox"
	"github.com/marckohlbrugge/tempmail-cli/internal/cmd/mailboxes"
	"github.com/marckohlbrugge/tempmail-cli/internal/cmd/theme"
	"github.com/marckohlbrugge/tempmail-cli/internal/cmd/ui"
	"github.com/marckohlbrugge/tempmail-cli/internal/cmd/version"
	"github.com/marckohlbrugge/tempmail-cli/internal/cmd/watch"
	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/marckohlbrugge/tempmail-cli/internal/log"
	"github.com/spf13/cobra"
)

// Version is set at build time
var Version = "dev"

// NewCmdRoot creates the root command for the CLI.
func NewCmdRoot(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tm <command> [flags]",
		Short: "Disposable mailbox CLI",
		Long:  "Manage disposable mailboxes and read their emails from the command line.",
		Example: `  $ tm auth login --server https://mail.example.com
  $ tm mailbox create --name Shopping
  $ tm email list 12
  $ tm watch`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			return log.Setup(debug)
		},
	}

	// Enable suggestions for typos
	cmd.SuggestionsMinimumDistance = 2

	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		rootHelpFunc(f.IOStreams.Out, c, args)
	})
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return rootUsageFunc(f.IOStreams.ErrOut, c)
	})

	// Global flags
	cmd.PersistentFlags().Bool("help", false, "Show help for command")
	cmd.PersistentFlags().Bool("debug", false, "Write a debug log")
	cmd.Flags().BoolP("version", "v", false, "Show tm version")
	cmd.Version = Version
	cmd.SetVersionTemplate("tm version {{.Version}}\n")

	cmd.AddGroup(&cobra.Group{
		ID:    "auth",
		Title: "Authentication",
	})
	cmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core commands",
	})
	cmd.AddGroup(&cobra.Group{
		ID:    "mailbox",
		Title: "Mailbox commands",
	})
	cmd.AddGroup(&cobra.Group{
		ID:    "email",
		Title: "Email commands",
	})
	cmd.AddGroup(&cobra.Group{
		ID:    "utility",
		Title: "Utility commands",
	})

	cmd.AddCommand(auth.NewCmdAuth(f))

	// Core commands (top-level)
	cmd.AddCommand(mailboxes.NewCmdMailboxes(f))
	cmd.AddCommand(watch.NewCmdWatch(f))
	cmd.AddCommand(ui.NewCmdUI(f))

	cmd.AddCommand(mailbox.NewCmdMailbox(f))
	cmd.AddCommand(email.NewCmdEmail(f))

	// Utility commands
	cmd.AddCommand(theme.NewCmdTheme(f))
	cmd.AddCommand(version.NewCmdVersion(f, Version))
	cmd.AddCommand(completion.NewCmdCompletion(f))

	return cmd
}

// rootHelpFunc provides custom help output similar to gh CLI
func rootHelpFunc(w io.Writer, cmd *cobra.Command, args []string) {
	if isRootCmd(cmd) {
		printRootHelp(w, cmd)
		return
	}

	printSubcommandHelp(w, cmd)
}

func printSubcommandHelp(w io.Writer, cmd *cobra.Command) {
	if cmd.Long != "" {
		fmt.Fprintln(w, cmd.Long)
		fmt.Fprintln(w)
	} else if cmd.Short != "" {
		fmt.Fprintln(w, cmd.Short)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "USAGE\n  %s\n\n", cmd.UseLine())

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintln(w, "COMMANDS")
		for _, c := range cmd.Commands() {
			if c.IsAvailableCommand() {
				fmt.Fprintf(w, "  %-16s %s\n", c.Name(), c.Short)
			}
		}
		fmt.Fprintln(w)
	}

	flags := cmd.Flags()
	if flags.HasAvailableFlags() {
		fmt.Fprintln(w, "FLAGS")
		fmt.Fprintln(w, flags.FlagUsages())
	}

	if cmd.Example != "" {
		fmt.Fprintln(w, "EXAMPLES")
		fmt.Fprintln(w, cmd.Example)
	}
}

func isRootCmd(cmd *cobra.Command) bool {
	return cmd.Parent() == nil
}

func printRootHelp(w io.Writer, cmd *cobra.Command) {
	fmt.Fprintf(w, "%s\n\n", cmd.Long)

	fmt.Fprintf(w, "USAGE\n  %s\n\n", cmd.Use)

	for _, group := range cmd.Groups() {
		cmds := getCommandsInGroup(cmd, group.ID)
		if len(cmds) == 0 {
			continue
		}

		fmt.Fprintf(w, "%s\n", strings.ToUpper(group.Title))
		for _, c := range cmds {
			fmt.Fprintf(w, "  %-16s %s\n", c.Name(), c.Short)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "FLAGS")
	fmt.Fprintln(w, "  -h, --help      Show help for command")
	fmt.Fprintln(w, "  -v, --version   Show tm version")
	fmt.Fprintln(w, "      --debug     Write a debug log")
	fmt.Fprintln(w)

	if cmd.Example != "" {
		fmt.Fprintln(w, "EXAMPLES")
		fmt.Fprintln(w, cmd.Example)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "LEARN MORE")
	fmt.Fprintln(w, "  Use 'tm <command> --help' for more information about a command.")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "AUTHENTICATION")
	fmt.Fprintln(w, "  Run 'tm auth login' to connect to a mail server.")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "ENVIRONMENT")
	fmt.Fprintln(w, "  TM_SERVER       Server address (overrides stored server)")
	fmt.Fprintln(w, "  TM_KEY          Server key (overrides stored key)")
	fmt.Fprintln(w, "  TM_UNSAFE=1     Allow destructive operations in non-interactive mode")
	fmt.Fprintln(w, "  TM_DEBUG=1      Write a debug log")
	fmt.Fprintln(w, "  NO_COLOR        Disable color output")
}

func getCommandsInGroup(cmd *cobra.Command, groupID string) []*cobra.Command {
	var cmds []*cobra.Command
	for _, c := range cmd.Commands() {
		if c.GroupID == groupID && c.IsAvailableCommand() {
			cmds = append(cmds, c)
		}
	}
	return cmds
}

func rootUsageFunc(w io.Writer, cmd *cobra.Command) error {
	fmt.Fprintf(w, "Usage: %s\n", cmd.UseLine())
	fmt.Fprintf(w, "\nRun '%s --help' for more information.\n", cmd.CommandPath())
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer log.Close()

	f := cmdutil.NewFactory()
	rootCmd := NewCmdRoot(f)

	err := rootCmd.ExecuteContext(ctx)
	return exitCode(f.IOStreams.ErrOut, err)
}

func exitCode(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	var (
		authErr     *cmdutil.AuthError
		notFoundErr *cmdutil.NotFoundError
	)
	switch {
	case errors.Is(err, cmdutil.SilentError):
		return 1
	case errors.Is(err, cmdutil.CancelError):
		return 0
	case errors.As(err, &authErr):
		fmt.Fprintf(w, "Authentication error: %s\n", authErr.Error())
		return 2
	case errors.As(err, &notFoundErr):
		fmt.Fprintf(w, "Error: %s\n", notFoundErr.Error())
		return 3
	default:
		fmt.Fprintf(w, "Error: %s\n", err.Error())
		return 1
	}
}
