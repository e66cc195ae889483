package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TruWeaveTrader/alpaca-mcp/internal/trading"
	"github.com/TruWeaveTrader/alpaca-mcp/pkg/formatters"
)

func init() {
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(qCmd) // Alias
}

var qCmd = &cobra.Command{
	Use:   "q [symbol]",
	Short: "Quick quote (alias for quote)",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuote,
}

var quoteCmd = &cobra.Command{
	Use:   "quote [symbol]",
	Short: "Get the latest market quote",
	Long: `Fetches the current bid/ask quote for a symbol. Crypto pairs use
their slash form, e.g. "ETH/USD".`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func runQuote(cmd *cobra.Command, args []string) error {
	symbol := args[0]
	if !trading.IsCryptoSymbol(symbol) {
		symbol = strings.ToUpper(symbol)
	}
	ctx := context.Background()

	api := trading.MarketDataAPI(clients.StockData)
	if trading.IsCryptoSymbol(symbol) {
		api = clients.CryptoData
	}

	quote, err := trading.GetLatestQuote(ctx, api, symbol)
	if err != nil {
		return fmt.Errorf("failed to get quote: %w", err)
	}

	fmt.Println(formatters.FormatQuote(quote))
	return nil
}
