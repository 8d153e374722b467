package cli

import (
	"github.com/spf13/cobra"
)

func newTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tx <txid>",
		Short: "Look up a chain transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TransactionResult

			if err := client.Get("/api/v1/transactions/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
