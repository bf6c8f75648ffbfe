package completion

import (
	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/spf13/cobra"
)

// NewCmdCompletion creates the completion command.
func NewCmdCompletion(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for tm.

SUPPORTED SHELLS
  bash, zsh, fish, powershell`,
		Example: `  # Bash - add to ~/.bashrc:
  eval "$(tm completion bash)"

  # Zsh:
  tm completion zsh > ~/.zsh/completions/_tm

  # Fish:
  tm completion fish > ~/.config/fish/completions/tm.fish`,
		GroupID:           "utility",
		Args:              cmdutil.ExactArgs(1, "shell type required: bash, zsh, fish, or powershell"),
		ValidArgsFunction: completeShellTypes,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := f.IOStreams.Out
			rootCmd := cmd.Root()

			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletionV2(out, true)
			case "zsh":
				return rootCmd.GenZshCompletion(out)
			case "fish":
				return rootCmd.GenFishCompletion(out, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(out)
			default:
				return cmdutil.FlagErrorf("unsupported shell type: %s\n\nSupported: bash, zsh, fish, powershell", args[0])
			}
		},
	}
	return cmd
}

func completeShellTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"bash", "zsh", "fish", "powershell"}, cobra.ShellCompDirectiveNoFileComp
}

