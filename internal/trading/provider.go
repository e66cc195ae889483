// Package trading maps order requests onto provider payload shapes and
// wraps the account, portfolio and market-data queries. Every function here
// takes a pre-built client handle, issues at most one provider call, and
// reshapes the result into the domain model. Nothing retries and nothing is
// cached.
package trading

import (
	"context"
	"strings"
	"time"

	"github.com/TruWeaveTrader/alpaca-mcp/internal/alpaca"
	"github.com/TruWeaveTrader/alpaca-mcp/internal/models"
)

// TradingAPI abstracts the provider's trading operations so queries and the
// order mapper can be exercised against a fake in tests.
type TradingAPI interface {
	GetAccount(ctx context.Context) (*models.Account, error)
	SubmitOrder(ctx context.Context, payload *models.OrderPayload) (*models.Order, error)
	ListOrders(ctx context.Context, params models.OrderListParams) ([]*models.Order, error)
	CancelOrder(ctx context.Context, orderID string) error
	ListPositions(ctx context.Context) ([]*models.Position, error)
	GetPosition(ctx context.Context, symbol string) (*models.Position, error)
	ClosePosition(ctx context.Context, symbol string) (*models.Order, error)
	ListAssets(ctx context.Context) ([]*models.Asset, error)
	GetAsset(ctx context.Context, symbol string) (*models.Asset, error)
}

// MarketDataAPI abstracts the provider's market-data operations. Both the
// stock and the crypto data clients satisfy it.
type MarketDataAPI interface {
	LatestQuote(ctx context.Context, symbol string) (*models.Quote, error)
	Bars(ctx context.Context, symbol string, timeframe models.TimeFrame, start, end time.Time) ([]*models.Bar, error)
}

// Compile-time interface checks.
var (
	_ TradingAPI    = (*alpaca.TradingClient)(nil)
	_ MarketDataAPI = (*alpaca.StockDataClient)(nil)
	_ MarketDataAPI = (*alpaca.CryptoDataClient)(nil)
)

// IsCryptoSymbol reports whether a symbol names a crypto pair ("ETH/USD")
// rather than an equity, which decides which data client serves it.
func IsCryptoSymbol(symbol string) bool {
	return strings.Contains(symbol, "/")
}
