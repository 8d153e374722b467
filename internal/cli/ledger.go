package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the top players by balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result LeaderboardResult

			path := fmt.Sprintf("/api/v1/leaderboard?limit=%d", limit)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of players to show")

	return cmd
}

func newAuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Dump all player balances for reconciliation",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result AuditResult

			if err := client.Get("/api/v1/audit", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
