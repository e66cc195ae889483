// Package formatters renders domain model values as human-readable text.
// Everything here is purely derived from its inputs; the agent-facing
// functions return plain blocks, the CLI table functions use go-pretty.
package formatters

import (
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"

	"github.com/TruWeaveTrader/alpaca-mcp/internal/models"
)

// Colors for the CLI table renderers
var (
	ColorGreen  = text.FgGreen
	ColorRed    = text.FgRed
	ColorYellow = text.FgYellow
	ColorWhite  = text.FgWhite
)

// FormatMoney formats a dollar amount to cents
func FormatMoney(amount decimal.Decimal) string {
	return fmt.Sprintf("$%.2f", amount.InexactFloat64())
}

// FormatSignedMoney formats a dollar amount with an explicit sign
func FormatSignedMoney(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + FormatMoney(amount.Abs())
	}
	return "+" + FormatMoney(amount)
}

// FormatSignedPercent formats a percentage with an explicit sign
func FormatSignedPercent(percent decimal.Decimal) string {
	sign := ""
	if !percent.IsNegative() {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, percent.InexactFloat64())
}

// FormatVolume formats large numbers with K/M/B suffixes
func FormatVolume(volume int64) string {
	if volume >= 1_000_000_000 {
		return fmt.Sprintf("%.1fB", float64(volume)/1_000_000_000)
	} else if volume >= 1_000_000 {
		return fmt.Sprintf("%.1fM", float64(volume)/1_000_000)
	} else if volume >= 1_000 {
		return fmt.Sprintf("%.1fK", float64(volume)/1_000)
	}
	return fmt.Sprintf("%d", volume)
}

// FormatAccount renders the account summary block
func FormatAccount(account *models.Account) string {
	return fmt.Sprintf(
		"Account Summary:\n"+
			"Status: %s\n"+
			"Cash: %s\n"+
			"Portfolio Value: %s\n"+
			"Buying Power: %s\n"+
			"Equity: %s\n"+
			"Daytrade Count: %d\n"+
			"Pattern Day Trader: %t\n",
		account.Status,
		FormatMoney(account.Cash),
		FormatMoney(account.PortfolioValue),
		FormatMoney(account.BuyingPower),
		FormatMoney(account.Equity),
		account.DaytradeCount,
		account.PatternDayTrader,
	)
}

// FormatPosition renders a single position in detail
func FormatPosition(pos *models.Position) string {
	plPercent := pos.UnrealizedPLPC.Mul(decimal.NewFromInt(100))
	return fmt.Sprintf(
		"%s Position (%s):\n"+
			"Quantity: %s\n"+
			"Avg Entry: %s\n"+
			"Current Price: %s\n"+
			"Market Value: %s\n"+
			"Cost Basis: %s\n"+
			"Unrealized P/L: %s (%s)\n"+
			"Today's Change: %s\n",
		pos.Symbol,
		strings.ToUpper(string(pos.Side)),
		pos.Qty.String(),
		FormatMoney(pos.AvgEntryPrice),
		FormatMoney(pos.CurrentPrice),
		FormatMoney(pos.MarketValue),
		FormatMoney(pos.CostBasis),
		FormatSignedMoney(pos.UnrealizedPL),
		FormatSignedPercent(plPercent),
		FormatSignedPercent(pos.ChangeToday),
	)
}

// FormatPositions renders all open positions as a block list
func FormatPositions(positions []*models.Position) string {
	if len(positions) == 0 {
		return "No open positions found."
	}

	var b strings.Builder
	b.WriteString("Current Positions:\n\n")
	for _, pos := range positions {
		plPercent := pos.UnrealizedPLPC.Mul(decimal.NewFromInt(100))
		fmt.Fprintf(&b,
			"%s (%s):\n"+
				"  Quantity: %s\n"+
				"  Avg Entry: %s\n"+
				"  Current Price: %s\n"+
				"  Market Value: %s\n"+
				"  Unrealized P/L: %s (%s)\n\n",
			pos.Symbol,
			strings.ToUpper(string(pos.Side)),
			pos.Qty.String(),
			FormatMoney(pos.AvgEntryPrice),
			FormatMoney(pos.CurrentPrice),
			FormatMoney(pos.MarketValue),
			FormatSignedMoney(pos.UnrealizedPL),
			FormatSignedPercent(plPercent),
		)
	}
	return b.String()
}

// FormatOrder renders one order as a block, with the conditional price
// fields only when set.
func FormatOrder(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"Order ID: %s\n"+
			"Symbol: %s\n"+
			"Type: %s\n"+
			"Side: %s\n"+
			"Qty: %s\n"+
			"Status: %s\n"+
			"Created: %s\n",
		order.ID,
		order.Symbol,
		order.Type,
		order.Side,
		order.Qty.String(),
		order.Status,
		order.CreatedAt.Format(time.RFC3339),
	)
	if order.FilledAvgPrice != nil {
		fmt.Fprintf(&b, "Filled Price: %s\n", FormatMoney(*order.FilledAvgPrice))
	}
	if order.LimitPrice != nil {
		fmt.Fprintf(&b, "Limit Price: %s\n", FormatMoney(*order.LimitPrice))
	}
	if order.StopPrice != nil {
		fmt.Fprintf(&b, "Stop Price: %s\n", FormatMoney(*order.StopPrice))
	}
	return b.String()
}

// FormatOrders renders a recent-orders listing
func FormatOrders(orders []*models.Order, limit int) string {
	if len(orders) == 0 {
		return "No recent orders found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Recent Orders (last %d):\n\n", limit)
	for _, order := range orders {
		b.WriteString(FormatOrder(order))
		b.WriteString("\n")
	}
	return b.String()
}

// orderTypeLabel returns the human headline form of an order type.
func orderTypeLabel(t models.OrderType) string {
	switch t {
	case models.Market:
		return "Market"
	case models.Limit:
		return "Limit"
	case models.Stop:
		return "Stop"
	case models.StopLimit:
		return "Stop-limit"
	default:
		return string(t)
	}
}

// FormatOrderConfirmation renders the confirmation block for a freshly
// placed order.
func FormatOrderConfirmation(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s order placed successfully!\n\n", orderTypeLabel(order.Type))
	fmt.Fprintf(&b,
		"Order ID: %s\n"+
			"Symbol: %s\n"+
			"Side: %s\n"+
			"Type: %s\n"+
			"Quantity: %s\n",
		order.ID,
		order.Symbol,
		order.Side,
		order.Type,
		order.Qty.String(),
	)
	if order.StopPrice != nil {
		fmt.Fprintf(&b, "Stop Price: %s\n", FormatMoney(*order.StopPrice))
	}
	if order.LimitPrice != nil {
		fmt.Fprintf(&b, "Limit Price: %s\n", FormatMoney(*order.LimitPrice))
	}
	fmt.Fprintf(&b,
		"Time in Force: %s\n"+
			"Status: %s\n"+
			"Created At: %s\n",
		order.TimeInForce,
		order.Status,
		order.CreatedAt.Format(time.RFC3339),
	)
	return b.String()
}

// FormatQuote renders the latest quote with the bid/ask spread
func FormatQuote(quote *models.Quote) string {
	spread := quote.AskPrice.Sub(quote.BidPrice)
	return fmt.Sprintf(
		"Latest Quote for %s:\n"+
			"Ask: %s x %d\n"+
			"Bid: %s x %d\n"+
			"Spread: %s\n"+
			"Timestamp: %s\n",
		quote.Symbol,
		FormatMoney(quote.AskPrice),
		quote.AskSize,
		FormatMoney(quote.BidPrice),
		quote.BidSize,
		FormatMoney(spread),
		quote.Timestamp.Format(time.RFC3339),
	)
}

// maxDisplayBars bounds how many bars a listing renders.
const maxDisplayBars = 10

// FormatBars renders a historical bar series as a table, truncated to the
// most recent bars with a note when more exist.
func FormatBars(bars []*models.Bar, symbol string, timeframe models.TimeFrame) string {
	if len(bars) == 0 {
		return fmt.Sprintf("No historical bars found for %s with %s timeframe.", symbol, timeframe)
	}

	display := bars
	if len(bars) > maxDisplayBars {
		display = bars[len(bars)-maxDisplayBars:]
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Time", "Open", "High", "Low", "Close", "Volume"})
	for _, bar := range display {
		t.AppendRow(table.Row{
			bar.Timestamp.Format("2006-01-02 15:04"),
			FormatMoney(bar.Open),
			FormatMoney(bar.High),
			FormatMoney(bar.Low),
			FormatMoney(bar.Close),
			FormatVolume(bar.Volume),
		})
	}

	result := fmt.Sprintf("Historical %s Bars for %s (last %d):\n\n%s\n",
		timeframe, symbol, len(bars), t.Render())
	if len(bars) > maxDisplayBars {
		result += fmt.Sprintf("\nNote: Showing only the most recent %d of %d bars.", maxDisplayBars, len(bars))
	}
	return result
}

// FormatAssetsTable renders a listing of tradable assets. Callers pass the
// slice to display plus the total count it was cut from.
func FormatAssetsTable(assets []*models.Asset, total int) string {
	if len(assets) == 0 {
		return "No tradable assets found."
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Symbol", "Name", "Class", "Exchange", "Fractionable", "Shortable"})
	for _, asset := range assets {
		t.AppendRow(table.Row{
			asset.Symbol,
			asset.Name,
			asset.Class,
			asset.Exchange,
			asset.Fractionable,
			asset.Shortable,
		})
	}

	return fmt.Sprintf("Tradable Assets (showing first %d of %d):\n\n%s\n",
		len(assets), total, t.Render())
}

// FormatAsset renders detailed asset information
func FormatAsset(asset *models.Asset) string {
	attributes := "None"
	if len(asset.Attributes) > 0 {
		attributes = strings.Join(asset.Attributes, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		"Asset Information for %s (%s):\n"+
			"ID: %s\n"+
			"Class: %s\n"+
			"Exchange: %s\n"+
			"Status: %s\n"+
			"Tradable: %t\n"+
			"Fractionable: %t\n"+
			"Marginable: %t\n"+
			"Shortable: %t\n"+
			"Easy to Borrow: %t\n"+
			"Attributes: %s\n",
		asset.Symbol,
		asset.Name,
		asset.ID,
		asset.Class,
		asset.Exchange,
		asset.Status,
		asset.Tradable,
		asset.Fractionable,
		asset.Marginable,
		asset.Shortable,
		asset.EasyToBorrow,
		attributes,
	)
	if asset.MinOrderSize != nil {
		fmt.Fprintf(&b, "Min Order Size: %s\n", asset.MinOrderSize.String())
	}
	if asset.MinTradeIncrement != nil {
		fmt.Fprintf(&b, "Min Trade Increment: %s\n", asset.MinTradeIncrement.String())
	}
	if asset.PriceIncrement != nil {
		fmt.Fprintf(&b, "Price Increment: %s\n", asset.PriceIncrement.String())
	}
	return b.String()
}

// FormatPortfolioSummary renders the combined account and positions view
func FormatPortfolioSummary(account *models.Account, positions []*models.Position) string {
	var b strings.Builder
	b.WriteString("Portfolio Summary\n=================\n\n")
	b.WriteString("Account Information:\n-------------------\n")
	fmt.Fprintf(&b,
		"Status: %s\n"+
			"Cash: %s\n"+
			"Portfolio Value: %s\n"+
			"Buying Power: %s\n"+
			"Equity: %s\n"+
			"Daytrade Count: %d\n"+
			"Pattern Day Trader: %t\n\n",
		account.Status,
		FormatMoney(account.Cash),
		FormatMoney(account.PortfolioValue),
		FormatMoney(account.BuyingPower),
		FormatMoney(account.Equity),
		account.DaytradeCount,
		account.PatternDayTrader,
	)

	if len(positions) == 0 {
		b.WriteString("No open positions.")
		return b.String()
	}

	fmt.Fprintf(&b, "Open Positions (%d):\n-------------------\n", len(positions))

	totalPL := decimal.Zero
	for _, pos := range positions {
		totalPL = totalPL.Add(pos.UnrealizedPL)

		plPercent := pos.UnrealizedPLPC.Mul(decimal.NewFromInt(100))
		allocation := decimal.Zero
		if account.PortfolioValue.IsPositive() {
			allocation = pos.MarketValue.Div(account.PortfolioValue).Mul(decimal.NewFromInt(100))
		}

		fmt.Fprintf(&b,
			"%s (%s):\n"+
				"  Quantity: %s\n"+
				"  Avg Entry: %s\n"+
				"  Current: %s\n"+
				"  Value: %s (%.2f%% of portfolio)\n"+
				"  P/L: %s (%s)\n\n",
			pos.Symbol,
			strings.ToUpper(string(pos.Side)),
			pos.Qty.String(),
			FormatMoney(pos.AvgEntryPrice),
			FormatMoney(pos.CurrentPrice),
			FormatMoney(pos.MarketValue),
			allocation.InexactFloat64(),
			FormatSignedMoney(pos.UnrealizedPL),
			FormatSignedPercent(plPercent),
		)
	}

	totalValue := account.PortfolioValue.Sub(account.Cash)
	overallPLPercent := decimal.Zero
	if totalValue.IsPositive() {
		overallPLPercent = totalPL.Div(totalValue).Mul(decimal.NewFromInt(100))
	}
	cashAllocation := decimal.Zero
	if account.PortfolioValue.IsPositive() {
		cashAllocation = account.Cash.Div(account.PortfolioValue).Mul(decimal.NewFromInt(100))
	}

	fmt.Fprintf(&b,
		"Overall Position Summary:\n"+
			"------------------------\n"+
			"Total Position Value: %s\n"+
			"Total Unrealized P/L: %s (%s)\n"+
			"Cash Allocation: %s (%.2f%% of portfolio)\n",
		FormatMoney(totalValue),
		FormatSignedMoney(totalPL),
		FormatSignedPercent(overallPLPercent),
		FormatMoney(account.Cash),
		cashAllocation.InexactFloat64(),
	)
	return b.String()
}

// FormatPositionsTable creates a pretty positions table for the CLI
func FormatPositionsTable(positions []*models.Position) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{
		"Symbol", "Qty", "Avg Cost", "Current", "P&L", "P&L %", "Value"})

	totalPL := decimal.Zero
	totalValue := decimal.Zero

	for _, pos := range positions {
		plColor := ColorGreen
		if pos.UnrealizedPL.IsNegative() {
			plColor = ColorRed
		}

		t.AppendRow(table.Row{
			pos.Symbol,
			pos.Qty.String(),
			FormatMoney(pos.AvgEntryPrice),
			FormatMoney(pos.CurrentPrice),
			plColor.Sprint(FormatMoney(pos.UnrealizedPL)),
			FormatSignedPercent(pos.UnrealizedPLPC.Mul(decimal.NewFromInt(100))),
			FormatMoney(pos.MarketValue),
		})

		totalPL = totalPL.Add(pos.UnrealizedPL)
		totalValue = totalValue.Add(pos.MarketValue)
	}

	t.AppendSeparator()
	t.AppendRow(table.Row{
		"TOTAL", "", "", "",
		FormatSignedMoney(totalPL),
		"",
		FormatMoney(totalValue),
	})

	return t.Render()
}

// FormatOrdersTable creates a pretty orders table for the CLI
func FormatOrdersTable(orders []*models.Order) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{
		"Time", "Symbol", "Side", "Type", "Qty", "Price", "Status"})

	for _, order := range orders {
		sideColor := ColorGreen
		if order.Side == models.Sell {
			sideColor = ColorRed
		}

		price := "Market"
		if order.LimitPrice != nil {
			price = FormatMoney(*order.LimitPrice)
		} else if order.StopPrice != nil {
			price = FormatMoney(*order.StopPrice)
		}

		statusColor := ColorWhite
		switch order.Status {
		case models.OrderFilled:
			statusColor = ColorGreen
		case models.OrderCanceled, models.OrderExpired:
			statusColor = ColorRed
		case models.OrderNew, models.OrderAccepted:
			statusColor = ColorYellow
		}

		t.AppendRow(table.Row{
			order.CreatedAt.Format("15:04:05"),
			order.Symbol,
			sideColor.Sprint(strings.ToUpper(string(order.Side))),
			order.Type,
			order.Qty.String(),
			price,
			statusColor.Sprint(order.Status),
		})
	}

	if len(orders) == 0 {
		t.AppendRow(table.Row{"No orders", "", "", "", "", "", ""})
	}

	return t.Render()
}
