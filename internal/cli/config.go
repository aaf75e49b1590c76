package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/stackgen/internal/adapters/filesystem"
	"github.com/example/stackgen/internal/config"
)

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage stackgen.yaml",
	}

	cmd.AddCommand(configInitCmd())
	cmd.AddCommand(configShowCmd())

	return cmd
}

func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write stackgen.yaml with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			force, _ := cmd.Flags().GetBool("force")

			store, err := filesystem.NewProjectStore(root)
			if err != nil {
				return err
			}

			path, err := config.Save(store.Root(), config.Default(), force)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing stackgen.yaml")

	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (file, environment and defaults)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := containerFor(cmd, true)
			if err != nil {
				return err
			}
			defer c.Close()

			data, err := c.Config().Marshal()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# project root: %s\n", c.Root())
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
