package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TruWeaveTrader/alpaca-mcp/internal/trading"
	"github.com/TruWeaveTrader/alpaca-mcp/pkg/formatters"
)

func init() {
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(acctCmd) // Alias
}

var acctCmd = &cobra.Command{
	Use:   "acct",
	Short: "Account summary (alias)",
	RunE:  runAccount,
}

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Display account information",
	Long:  `Shows account status, cash, buying power and equity.`,
	RunE:  runAccount,
}

func runAccount(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	account, err := trading.GetAccount(ctx, clients.Trading)
	if err != nil {
		return fmt.Errorf("failed to get account: %w", err)
	}

	fmt.Println(formatters.FormatAccount(account))
	return nil
}
