package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TruWeaveTrader/alpaca-mcp/internal/trading"
	"github.com/TruWeaveTrader/alpaca-mcp/pkg/formatters"
)

func init() {
	rootCmd.AddCommand(positionsCmd)
	rootCmd.AddCommand(posCmd) // Alias
}

var posCmd = &cobra.Command{
	Use:   "pos [symbol]",
	Short: "Show positions (alias)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPositions,
}

var positionsCmd = &cobra.Command{
	Use:   "positions [symbol]",
	Short: "Display open positions",
	Long: `Shows current positions with P&L, cost basis, and market value.
With a symbol argument, shows the detail for that one position.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPositions,
}

func runPositions(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) == 1 {
		position, err := trading.GetPosition(ctx, clients.Trading, args[0])
		if err != nil || position == nil {
			fmt.Printf("No position found for %s\n", args[0])
			return nil
		}
		fmt.Println(formatters.FormatPosition(position))
		return nil
	}

	positions, err := trading.GetPositions(ctx, clients.Trading)
	if err != nil {
		return fmt.Errorf("failed to get positions: %w", err)
	}

	if len(positions) == 0 {
		fmt.Println("No open positions")
		return nil
	}

	fmt.Println(formatters.FormatPositionsTable(positions))
	return nil
}
