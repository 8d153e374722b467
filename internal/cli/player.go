package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join",
		Short: "Register as a player",
		RunE: func(cmd *cobra.Command, args []string) error {
			player, ok := cfg.RequirePlayer()
			if !ok {
				return fmt.Errorf("--player is required")
			}

			req := map[string]string{"player_id": player}
			var result RegisterResult

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show your current balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			player, ok := cfg.RequirePlayer()
			if !ok {
				return fmt.Errorf("--player is required")
			}

			var result BalanceResult

			if err := client.Get("/api/v1/players/"+player+"/balance", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
