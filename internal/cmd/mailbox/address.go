package mailbox

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/spf13/cobra"
)

type addressOptions struct {
	Copy bool
}

// NewCmdAddress creates the mailbox address command.
func NewCmdAddress(f *cmdutil.Factory) *cobra.Command {
	opts := &addressOptions{}

	cmd := &cobra.Command{
		Use:   "address <mailbox-id>",
		Short: "Print the full address of a mailbox",
		Example: `  tm mailbox address 12
  tm mailbox address 12 --copy`,
		Args: cmdutil.ExactArgs(1, "mailbox ID required\n\nUsage: tm mailbox address <mailbox-id>"),
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

			address := mb.FullAddress(s.Connection().ServerName)
			fmt.Fprintln(f.IOStreams.Out, address)

			if opts.Copy {
				if err := clipboard.WriteAll(address); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				fmt.Fprintln(f.IOStreams.ErrOut, "Copied to clipboard.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Copy, "copy", false, "Copy the address to the clipboard")

	return cmd
}
