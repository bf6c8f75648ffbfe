package mailbox

import (
	"fmt"
	"strings"

	"github.com/marckohlbrugge/tempmail-cli/internal/api"
	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/marckohlbrugge/tempmail-cli/internal/store"
	"github.com/spf13/cobra"
)

type draftOptions struct {
	Name    string
	Address string
	Expires string
	Never   bool
}

func (o *draftOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.Name, "name", "", "Mailbox name")
	cmd.Flags().StringVar(&o.Address, "address", "", "Local part of the address")
	cmd.Flags().StringVar(&o.Expires, "expires", "", "Expiration as YYYY-MM-DD or YYYY-MM-DDTHH:MM")
	cmd.Flags().BoolVar(&o.Never, "never", false, "Never expire")
}

func (o *draftOptions) validate() error {
	if err := cmdutil.MutuallyExclusive("specify only one of --expires or --never", o.Expires != "", o.Never); err != nil {
		return err
	}
	if o.Expires != "" {
		if err := validateExpiration(o.Expires); err != nil {
			return cmdutil.FlagErrorf("invalid --expires %q: %v", o.Expires, err)
		}
	}
	return nil
}

// apply copies the flags that were set onto the draft.
func (o *draftOptions) apply(cmd *cobra.Command, d *store.Draft) {
	if cmd.Flags().Changed("name") {
		d.Name = o.Name
	}
	if cmd.Flags().Changed("address") {
		d.Address = o.Address
	}
	if o.Expires != "" {
		d.Expiration = o.Expires
	}
	if o.Never {
		d.Expiration = api.NeverExpires
	}
}

func anyDraftFlag(cmd *cobra.Command) bool {
	for _, name := range []string{"name", "address", "expires", "never"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// NewCmdCreate creates the mailbox create command.
func NewCmdCreate(f *cmdutil.Factory) *cobra.Command {
	opts := &draftOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a mailbox",
		Long: `Create a new mailbox.

Without flags in an interactive terminal, a form asks for name, address and
expiration. The address defaults to a random one and the expiration to
tomorrow.`,
		Example: `  # Interactive form
  tm mailbox create

  # Random address that never expires
  tm mailbox create --name Signups --never

  # Fixed address and expiration
  tm mailbox create --name Shop --address shop42 --expires 2026-12-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			return runCreate(cmd, f, opts)
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, f *cmdutil.Factory, opts *draftOptions) error {
	s, err := f.ConnectOnce(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer s.Disconnect()

	d := s.NewDraft(nil)
	opts.apply(cmd, d)

	if !anyDraftFlag(cmd) && f.IOStreams.IsInteractive() {
		if err := runDraftForm(d); err != nil {
			return err
		}
	}
	if strings.TrimSpace(d.Address) == "" {
		d.RandomizeAddress()
	}

	if !s.SaveDraft(d) {
		return cmdutil.SilentError
	}

	mb := api.Mailbox{Address: strings.TrimSpace(d.Address)}
	fmt.Fprintln(f.IOStreams.Out, mb.FullAddress(s.Connection().ServerName))
	return nil
}
