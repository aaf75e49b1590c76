package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/stackgen/internal/version"
)

// RootCmd returns the stackgen root command with every subcommand attached.
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "stackgen",
		Short:   "stackgen - entity scaffolding for NestJS/TypeORM projects",
		Version: version.String(),
		Long: `stackgen generates a consistent set of backend and client source files
for an entity and keeps the project's export index files up to date.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("root", "", "Project root (default: current directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(GenerateCmd())
	rootCmd.AddCommand(PreviewCmd())
	rootCmd.AddCommand(TypesCmd())
	rootCmd.AddCommand(HistoryCmd())
	rootCmd.AddCommand(ConfigCmd())

	return rootCmd
}
