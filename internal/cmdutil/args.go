package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/marckohlbrugge/tempmail-cli/internal/api"
)

// MinimumArgs returns a PositionalArgs that requires at least n arguments
// with a custom error message.
func MinimumArgs(n int, msg string) cobra.PositionalArgs {
	if msg == "" {
		return cobra.MinimumNArgs(n)
	}

	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return FlagErrorf("%s", msg)
		}
		return nil
	}
}

// ExactArgs returns a PositionalArgs that requires exactly n arguments
// with a custom error message.
func ExactArgs(n int, msg string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return FlagErrorf("too many arguments")
		}

		if len(args) < n {
			return FlagErrorf("%s", msg)
		}

		return nil
	}
}

// RangeArgs returns a PositionalArgs that requires between min and max arguments.
func RangeArgs(min, max int, msg string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < min {
			return FlagErrorf("%s", msg)
		}
		if len(args) > max {
			return FlagErrorf("too many arguments")
		}
		return nil
	}
}

// ParseIDs converts positional arguments to IDs.
func ParseIDs(args []string) ([]api.ID, error) {
	ids := make([]api.ID, 0, len(args))
	for _, arg := range args {
		id, err := api.ParseID(arg)
		if err != nil {
			return nil, FlagErrorWrap(err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
