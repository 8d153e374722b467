package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDepositCmd() *cobra.Command {
	var address, otp string
	var amount int64

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Send coins on-chain and credit your balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			player, ok := cfg.RequirePlayer()
			if !ok {
				return fmt.Errorf("--player is required")
			}

			req := map[string]any{
				"address":     address,
				"amount_sats": amount,
				"otp_code":    otp,
			}
			var result DepositResult

			if err := client.Post("/api/v1/players/"+player+"/deposit", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Destination address (required)")
	cmd.Flags().Int64Var(&amount, "amount", 0, "Amount in satoshis (required)")
	cmd.Flags().StringVar(&otp, "otp", "", "OTP code (required)")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("otp")

	return cmd
}

func newBetCmd() *cobra.Command {
	var otp string
	var amount int64

	cmd := &cobra.Command{
		Use:   "bet",
		Short: "Place a bet into the pot",
		RunE: func(cmd *cobra.Command, args []string) error {
			player, ok := cfg.RequirePlayer()
			if !ok {
				return fmt.Errorf("--player is required")
			}

			req := map[string]any{
				"amount_sats": amount,
				"otp_code":    otp,
			}
			var result BetResult

			if err := client.Post("/api/v1/players/"+player+"/bets", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", 0, "Amount in satoshis (required)")
	cmd.Flags().StringVar(&otp, "otp", "", "OTP code (required)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("otp")

	return cmd
}

func newWinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "win",
		Short: "Claim the open pot",
		RunE: func(cmd *cobra.Command, args []string) error {
			player, ok := cfg.RequirePlayer()
			if !ok {
				return fmt.Errorf("--player is required")
			}

			var result SettleResult

			if err := client.Post("/api/v1/players/"+player+"/settle", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
