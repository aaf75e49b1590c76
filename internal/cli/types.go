package cli

import (
	"github.com/spf13/cobra"

	cliadapter "github.com/example/stackgen/internal/adapters/cli"
)

// TypesCmd returns the types command
func TypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the recognized field types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliadapter.NewScaffoldAdapter(nil, cmd.OutOrStdout()).Types()
		},
	}
}
