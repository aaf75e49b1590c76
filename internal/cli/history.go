package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/stackgen/internal/app"
	"github.com/example/stackgen/internal/ports/primary"
)

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded generation runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, _ := cmd.Flags().GetString("entity")
			limit, _ := cmd.Flags().GetInt("limit")

			c, err := containerFor(cmd, false)
			if err != nil {
				return err
			}
			defer c.Close()

			adapter := c.ScaffoldAdapter(cmd.OutOrStdout())

			err = adapter.History(context.Background(), primary.HistoryRequest{Entity: entity, Limit: limit})
			if errors.Is(err, app.ErrHistoryDisabled) {
				fmt.Fprintln(cmd.OutOrStdout(), "History is disabled (history.enabled: false)")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringP("entity", "e", "", "Only show runs for this entity")
	cmd.Flags().IntP("limit", "n", 20, "Maximum number of runs to show (0 for all)")

	cmd.AddCommand(historyShowCmd())

	return cmd
}

func historyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one recorded generation run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := containerFor(cmd, false)
			if err != nil {
				return err
			}
			defer c.Close()

			err = c.ScaffoldAdapter(cmd.OutOrStdout()).ShowRun(context.Background(), args[0])
			if errors.Is(err, app.ErrHistoryDisabled) {
				fmt.Fprintln(cmd.OutOrStdout(), "History is disabled (history.enabled: false)")
				return nil
			}
			return err
		},
	}
}
