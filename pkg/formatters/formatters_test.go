package formatters

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/TruWeaveTrader/alpaca-mcp/internal/models"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{1234.5, "$1234.50"},
		{0.25, "$0.25"},
		{0, "$0.00"},
		{185.259, "$185.26"},
	}
	for _, tc := range cases {
		if got := FormatMoney(decimal.NewFromFloat(tc.value)); got != tc.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney(decimal.NewFromFloat(12.5)); got != "+$12.50" {
		t.Errorf("Expected +$12.50, got %s", got)
	}
	if got := FormatSignedMoney(decimal.NewFromFloat(-12.5)); got != "-$12.50" {
		t.Errorf("Expected -$12.50, got %s", got)
	}
}

func TestFormatVolume(t *testing.T) {
	cases := []struct {
		volume int64
		want   string
	}{
		{500, "500"},
		{1_500, "1.5K"},
		{2_500_000, "2.5M"},
		{3_200_000_000, "3.2B"},
	}
	for _, tc := range cases {
		if got := FormatVolume(tc.volume); got != tc.want {
			t.Errorf("FormatVolume(%d) = %q, want %q", tc.volume, got, tc.want)
		}
	}
}

func TestFormatQuoteSpread(t *testing.T) {
	quote := &models.Quote{
		Symbol:    "AAPL",
		AskPrice:  decimal.NewFromFloat(101.50),
		AskSize:   2,
		BidPrice:  decimal.NewFromFloat(101.25),
		BidSize:   3,
		Timestamp: time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC),
	}

	out := FormatQuote(quote)

	if !strings.Contains(out, "Latest Quote for AAPL:") {
		t.Errorf("Missing header in:\n%s", out)
	}
	if !strings.Contains(out, "Ask: $101.50 x 2") {
		t.Errorf("Missing ask line in:\n%s", out)
	}
	if !strings.Contains(out, "Bid: $101.25 x 3") {
		t.Errorf("Missing bid line in:\n%s", out)
	}
	if !strings.Contains(out, "Spread: $0.25") {
		t.Errorf("Spread must render as $0.25 in:\n%s", out)
	}
}

func TestFormatOrdersEmpty(t *testing.T) {
	if got := FormatOrders(nil, 10); got != "No recent orders found." {
		t.Errorf("Expected empty-list message, got %q", got)
	}
}

func TestFormatPositionsEmpty(t *testing.T) {
	if got := FormatPositions(nil); got != "No open positions found." {
		t.Errorf("Expected empty-list message, got %q", got)
	}
}

func TestFormatOrderConditionalPrices(t *testing.T) {
	limit := decimal.NewFromFloat(185.25)
	order := &models.Order{
		ID:         "order-1",
		Symbol:     "AAPL",
		Type:       models.Limit,
		Side:       models.Buy,
		Qty:        decimal.NewFromInt(10),
		Status:     models.OrderAccepted,
		CreatedAt:  time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC),
		LimitPrice: &limit,
	}

	out := FormatOrder(order)

	if !strings.Contains(out, "Limit Price: $185.25") {
		t.Errorf("Missing limit price in:\n%s", out)
	}
	if strings.Contains(out, "Stop Price:") {
		t.Errorf("Unset stop price must not render:\n%s", out)
	}
	if strings.Contains(out, "Filled Price:") {
		t.Errorf("Unset filled price must not render:\n%s", out)
	}
}

func TestFormatOrderConfirmationHeadline(t *testing.T) {
	stop := decimal.NewFromFloat(95.00)
	limit := decimal.NewFromFloat(94.50)
	order := &models.Order{
		ID:          "order-2",
		Symbol:      "AAPL",
		Type:        models.StopLimit,
		Side:        models.Sell,
		Qty:         decimal.NewFromInt(5),
		Status:      models.OrderNew,
		TimeInForce: models.GTC,
		CreatedAt:   time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC),
		StopPrice:   &stop,
		LimitPrice:  &limit,
	}

	out := FormatOrderConfirmation(order)

	if !strings.HasPrefix(out, "Stop-limit order placed successfully!") {
		t.Errorf("Expected stop-limit headline, got:\n%s", out)
	}
	if !strings.Contains(out, "Stop Price: $95.00") || !strings.Contains(out, "Limit Price: $94.50") {
		t.Errorf("Missing price lines in:\n%s", out)
	}
}

func TestFormatBarsTruncation(t *testing.T) {
	bars := make([]*models.Bar, 25)
	for i := range bars {
		bars[i] = &models.Bar{
			Open:      decimal.NewFromInt(100),
			High:      decimal.NewFromInt(101),
			Low:       decimal.NewFromInt(99),
			Close:     decimal.NewFromInt(int64(100 + i)),
			Volume:    1000,
			Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * 24 * time.Hour),
		}
	}

	out := FormatBars(bars, "AAPL", models.TimeFrameDay)

	if !strings.Contains(out, "Historical Day Bars for AAPL (last 25):") {
		t.Errorf("Missing header in:\n%s", out)
	}
	if !strings.Contains(out, "Note: Showing only the most recent 10 of 25 bars.") {
		t.Errorf("Missing truncation note in:\n%s", out)
	}
	// Oldest bars must be cut, newest kept.
	if strings.Contains(out, "$105.00") {
		t.Errorf("A truncated bar leaked into the output:\n%s", out)
	}
	if !strings.Contains(out, "$124.00") {
		t.Errorf("Most recent bar missing from:\n%s", out)
	}
}

func TestFormatBarsEmpty(t *testing.T) {
	out := FormatBars(nil, "AAPL", models.TimeFrameHour)
	want := "No historical bars found for AAPL with Hour timeframe."
	if out != want {
		t.Errorf("Expected %q, got %q", want, out)
	}
}

func TestFormatPortfolioSummaryNoPositions(t *testing.T) {
	account := &models.Account{
		Status:         "ACTIVE",
		Cash:           decimal.NewFromInt(1000),
		PortfolioValue: decimal.NewFromInt(1000),
		BuyingPower:    decimal.NewFromInt(2000),
		Equity:         decimal.NewFromInt(1000),
	}

	out := FormatPortfolioSummary(account, nil)

	if !strings.HasPrefix(out, "Portfolio Summary\n=================") {
		t.Errorf("Missing banner in:\n%s", out)
	}
	if !strings.HasSuffix(out, "No open positions.") {
		t.Errorf("Expected no-positions tail, got:\n%s", out)
	}
}

func TestFormatPortfolioSummaryAllocation(t *testing.T) {
	account := &models.Account{
		Status:         "ACTIVE",
		Cash:           decimal.NewFromInt(5000),
		PortfolioValue: decimal.NewFromInt(10000),
		BuyingPower:    decimal.NewFromInt(20000),
		Equity:         decimal.NewFromInt(10000),
	}
	positions := []*models.Position{
		{
			Symbol:         "AAPL",
			Side:           models.Long,
			Qty:            decimal.NewFromInt(10),
			AvgEntryPrice:  decimal.NewFromInt(450),
			CurrentPrice:   decimal.NewFromInt(500),
			MarketValue:    decimal.NewFromInt(5000),
			CostBasis:      decimal.NewFromInt(4500),
			UnrealizedPL:   decimal.NewFromInt(500),
			UnrealizedPLPC: decimal.NewFromFloat(0.1111),
		},
	}

	out := FormatPortfolioSummary(account, positions)

	if !strings.Contains(out, "Open Positions (1):") {
		t.Errorf("Missing positions header in:\n%s", out)
	}
	if !strings.Contains(out, "(50.00% of portfolio)") {
		t.Errorf("Missing allocation percentage in:\n%s", out)
	}
	if !strings.Contains(out, "Total Unrealized P/L: +$500.00") {
		t.Errorf("Missing total P/L in:\n%s", out)
	}
	if !strings.Contains(out, "Cash Allocation: $5000.00 (50.00% of portfolio)") {
		t.Errorf("Missing cash allocation in:\n%s", out)
	}
}

func TestFormatAssetsTableHeader(t *testing.T) {
	assets := []*models.Asset{
		{Symbol: "AAPL", Name: "Apple Inc.", Class: models.USEquity, Exchange: models.ExchangeNASDAQ, Fractionable: true, Shortable: true},
	}

	out := FormatAssetsTable(assets, 120)

	if !strings.Contains(out, "Tradable Assets (showing first 1 of 120):") {
		t.Errorf("Missing header in:\n%s", out)
	}
	if !strings.Contains(out, "AAPL") {
		t.Errorf("Missing symbol row in:\n%s", out)
	}
}

func TestFormatAssetAttributes(t *testing.T) {
	minOrder := decimal.NewFromFloat(0.001)
	asset := &models.Asset{
		ID:           "asset-1",
		Symbol:       "ETH/USD",
		Name:         "Ethereum",
		Class:        models.Crypto,
		Exchange:     models.ExchangeCrypto,
		Status:       models.AssetActive,
		Tradable:     true,
		Fractionable: true,
		MinOrderSize: &minOrder,
	}

	out := FormatAsset(asset)

	if !strings.Contains(out, "Asset Information for ETH/USD (Ethereum):") {
		t.Errorf("Missing header in:\n%s", out)
	}
	if !strings.Contains(out, "Attributes: None") {
		t.Errorf("Empty attributes must render as None:\n%s", out)
	}
	if !strings.Contains(out, "Min Order Size: 0.001") {
		t.Errorf("Missing min order size in:\n%s", out)
	}
	if strings.Contains(out, "Price Increment:") {
		t.Errorf("Unset price increment must not render:\n%s", out)
	}
}
