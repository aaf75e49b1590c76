package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/stackgen/internal/ports/primary"
)

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <entity> [fields]",
		Short: "Generate the full artifact stack for an entity",
		Long: `Generate the data model, create/update DTOs, service, controller,
migration, client model and client service for an entity, then add their
exports to the shared index files.

Fields are a comma-separated list of name:type pairs. Mark optional fields
with '?' on either side of the colon. Run 'stackgen types' for the type list.
When no fields are given, "` + DefaultFieldSpec + `" is used.

Examples:
  stackgen generate product "name:string,price:number,isActive?:boolean"
  stackgen generate category "name:string,description?:string" --skip-client
  stackgen generate orderItem "quantity:int" --dry-run`,
		Args: entityArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			skipExisting, _ := cmd.Flags().GetBool("skip-existing")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			show, _ := cmd.Flags().GetBool("show")

			c, err := containerFor(cmd, dryRun)
			if err != nil {
				return err
			}
			defer c.Close()

			adapter := c.ScaffoldAdapter(cmd.OutOrStdout())

			req := primary.GenerateRequest{
				Entity:       args[0],
				FieldSpec:    fieldSpecArg(args),
				SkipExisting: skipExisting,
			}

			if dryRun {
				return adapter.Preview(ctx, req, show)
			}
			return adapter.Generate(ctx, req)
		},
	}

	addLayoutFlags(cmd)
	cmd.Flags().Bool("skip-existing", false, "Leave existing artifact files untouched")
	cmd.Flags().Bool("dry-run", false, "Show what would be written without writing")
	cmd.Flags().Bool("show", false, "With --dry-run, print the rendered artifacts")
	cmd.Flags().Bool("no-history", false, "Do not record this run")

	return cmd
}

// PreviewCmd returns the preview command
func PreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <entity> [fields]",
		Short: "Print the artifacts generate would write",
		Long: `Render every artifact for an entity and print it without touching the disk.

Examples:
  stackgen preview product "name:string,price:number"`,
		Args: entityArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := containerFor(cmd, true)
			if err != nil {
				return err
			}
			defer c.Close()

			adapter := c.ScaffoldAdapter(cmd.OutOrStdout())
			return adapter.Preview(context.Background(), primary.GenerateRequest{
				Entity:    args[0],
				FieldSpec: fieldSpecArg(args),
			}, true)
		},
	}

	addLayoutFlags(cmd)

	return cmd
}
