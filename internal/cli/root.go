package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "gambotctl",
		Short: "CLI tool for the wagering ledger API",
		Long: `gambotctl is a CLI tool for interacting with the wagering ledger JSON API.

It covers the full command surface: registration, balances, deposits,
bets, settlement, the leaderboard, chain transaction lookups, and the
audit dump.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: GAMBOT_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.PlayerID, "player", cfg.PlayerID, "Player identity (env: GAMBOT_PLAYER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newJoinCmd())
	rootCmd.AddCommand(newBalanceCmd())
	rootCmd.AddCommand(newDepositCmd())
	rootCmd.AddCommand(newBetCmd())
	rootCmd.AddCommand(newWinCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newTxCmd())
	rootCmd.AddCommand(newAuditCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
