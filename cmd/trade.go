package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/TruWeaveTrader/alpaca-mcp/internal/models"
	"github.com/TruWeaveTrader/alpaca-mcp/internal/trading"
	"github.com/TruWeaveTrader/alpaca-mcp/pkg/formatters"
)

func init() {
	tradeCmd.AddCommand(buyCmd)
	tradeCmd.AddCommand(sellCmd)
	tradeCmd.AddCommand(cancelCmd)

	for _, cmd := range []*cobra.Command{buyCmd, sellCmd} {
		cmd.Flags().String("type", "market", "Order type: market, limit, stop, stop_limit")
		cmd.Flags().Float64("limit", 0, "Limit price (required for limit/stop_limit orders)")
		cmd.Flags().Float64("stop", 0, "Stop price (required for stop/stop_limit orders)")
		cmd.Flags().String("tif", "day", "Time in force: day, gtc, opg, cls, ioc, fok")
		cmd.Flags().Bool("extended", false, "Allow extended hours trading")
		cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	}

	rootCmd.AddCommand(tradeCmd)

	// Direct buy/sell shortcuts
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(sellCmd)
}

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Execute trades",
	Long:  `Parent command for trading operations (buy, sell, cancel).`,
}

var buyCmd = &cobra.Command{
	Use:   "buy [symbol] [quantity]",
	Short: "Buy shares",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeTrade(cmd, args, models.Buy)
	},
}

var sellCmd = &cobra.Command{
	Use:   "sell [symbol] [quantity]",
	Short: "Sell shares",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeTrade(cmd, args, models.Sell)
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel [order-id]",
	Short: "Cancel an order",
	Args:  cobra.ExactArgs(1),
	RunE:  runCancel,
}

func executeTrade(cmd *cobra.Command, args []string, side models.OrderSide) error {
	symbol := args[0]
	if !trading.IsCryptoSymbol(symbol) {
		symbol = strings.ToUpper(symbol)
	}
	qty, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid quantity: %w", err)
	}

	req, err := buildOrderRequest(cmd, symbol, qty, side)
	if err != nil {
		return err
	}

	showOrderPreview(req)

	skipConfirm, _ := cmd.Flags().GetBool("yes")
	if !skipConfirm && !confirmOrder() {
		fmt.Println("Order cancelled")
		return nil
	}

	order, err := trading.PlaceOrder(context.Background(), clients.Trading, req)
	if err != nil {
		return fmt.Errorf("failed to place order: %w", err)
	}

	fmt.Println(formatters.FormatOrderConfirmation(order))
	return nil
}

func runCancel(cmd *cobra.Command, args []string) error {
	orderID := args[0]

	if err := clients.Trading.CancelOrder(context.Background(), orderID); err != nil {
		return fmt.Errorf("failed to cancel order: %w", err)
	}

	fmt.Printf("Order %s has been successfully canceled.\n", orderID)
	return nil
}

// buildOrderRequest assembles the request from flags. Price completeness is
// left to the order mapper, which names any missing field.
func buildOrderRequest(cmd *cobra.Command, symbol string, qty decimal.Decimal, side models.OrderSide) (*models.OrderRequest, error) {
	orderType, _ := cmd.Flags().GetString("type")
	limitPrice, _ := cmd.Flags().GetFloat64("limit")
	stopPrice, _ := cmd.Flags().GetFloat64("stop")
	tif, _ := cmd.Flags().GetString("tif")
	extendedHours, _ := cmd.Flags().GetBool("extended")

	orderTIF, err := models.ParseTimeInForce(strings.ToLower(tif))
	if err != nil {
		return nil, fmt.Errorf("invalid time in force %q: valid options are day, gtc, opg, cls, ioc, fok", tif)
	}

	req := &models.OrderRequest{
		Symbol:        symbol,
		Qty:           qty,
		Side:          side,
		Type:          models.OrderType(orderType),
		TimeInForce:   orderTIF,
		ExtendedHours: extendedHours,
	}

	if limitPrice != 0 {
		lp := decimal.NewFromFloat(limitPrice)
		req.LimitPrice = &lp
	}
	if stopPrice != 0 {
		sp := decimal.NewFromFloat(stopPrice)
		req.StopPrice = &sp
	}

	return req, nil
}

func showOrderPreview(req *models.OrderRequest) {
	fmt.Println("Order Preview:")
	fmt.Printf("  Symbol: %s\n", req.Symbol)
	sideColor := formatters.ColorGreen
	if req.Side == models.Sell {
		sideColor = formatters.ColorRed
	}
	fmt.Printf("  Side: %s\n", sideColor.Sprint(strings.ToUpper(string(req.Side))))
	fmt.Printf("  Quantity: %s\n", req.Qty.String())
	fmt.Printf("  Type: %s\n", req.Type)
	if req.LimitPrice != nil {
		fmt.Printf("  Limit Price: %s\n", formatters.FormatMoney(*req.LimitPrice))
	}
	if req.StopPrice != nil {
		fmt.Printf("  Stop Price: %s\n", formatters.FormatMoney(*req.StopPrice))
	}
	fmt.Printf("  Time in Force: %s\n", req.TimeInForce)
}

func confirmOrder() bool {
	fmt.Print("\nProceed with order? (y/N): ")
	var confirm string
	fmt.Scanln(&confirm)
	return strings.ToLower(confirm) == "y"
}
