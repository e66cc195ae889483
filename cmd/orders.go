package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TruWeaveTrader/alpaca-mcp/internal/models"
	"github.com/TruWeaveTrader/alpaca-mcp/internal/trading"
	"github.com/TruWeaveTrader/alpaca-mcp/pkg/formatters"
)

func init() {
	ordersCmd.Flags().Bool("all", false, "Show all orders (default: open only)")
	ordersCmd.Flags().Int("limit", trading.DefaultOrderLimit, "Maximum number of orders to show")

	rootCmd.AddCommand(ordersCmd)
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Display orders",
	Long:  `Shows open orders by default. Use --all to see all orders.`,
	RunE:  runOrders,
}

func runOrders(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	showAll, _ := cmd.Flags().GetBool("all")
	limit, _ := cmd.Flags().GetInt("limit")

	status := models.FilterOpen
	if showAll {
		status = models.FilterAll
	}

	orders, err := trading.GetOrders(ctx, clients.Trading, status, limit, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to get orders: %w", err)
	}

	if len(orders) == 0 {
		if showAll {
			fmt.Println("No orders found")
		} else {
			fmt.Println("No open orders")
		}
		return nil
	}

	fmt.Println(formatters.FormatOrdersTable(orders))
	return nil
}
