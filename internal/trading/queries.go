package trading

import (
	"context"
	"time"

	"github.com/TruWeaveTrader/alpaca-mcp/internal/models"
)

// DefaultOrderLimit is applied when an order listing does not specify one.
const DefaultOrderLimit = 50

// defaultBarLookback is the history window when no start bound is given.
const defaultBarLookback = 30 * 24 * time.Hour

// GetAccount retrieves the account snapshot.
func GetAccount(ctx context.Context, api TradingAPI) (*models.Account, error) {
	return api.GetAccount(ctx)
}

// GetOrders lists orders, provider-side filtered. A non-positive limit falls
// back to DefaultOrderLimit. The provider's ordering is kept as-is.
func GetOrders(ctx context.Context, api TradingAPI, status models.OrderFilter, limit int, after, until *time.Time) ([]*models.Order, error) {
	if limit <= 0 {
		limit = DefaultOrderLimit
	}
	return api.ListOrders(ctx, models.OrderListParams{
		Status: status,
		Limit:  limit,
		After:  after,
		Until:  until,
	})
}

// GetPositions lists all open positions.
func GetPositions(ctx context.Context, api TradingAPI) ([]*models.Position, error) {
	return api.ListPositions(ctx)
}

// GetPosition returns the position for symbol, or nil when there is none.
// Any provider failure also reads as "no position": callers deliberately
// cannot tell an empty book from a transient provider error here.
func GetPosition(ctx context.Context, api TradingAPI, symbol string) (*models.Position, error) {
	position, err := api.GetPosition(ctx, symbol)
	if err != nil {
		return nil, nil
	}
	return position, nil
}

// GetAssets returns the full asset list. No class/exchange/status filtering
// happens at this layer; that is the caller's concern.
func GetAssets(ctx context.Context, api TradingAPI) ([]*models.Asset, error) {
	return api.ListAssets(ctx)
}

// GetAssetBySymbol returns a single asset, failing if it does not exist.
func GetAssetBySymbol(ctx context.Context, api TradingAPI, symbol string) (*models.Asset, error) {
	return api.GetAsset(ctx, symbol)
}

// GetLatestQuote returns the latest quote for exactly one symbol.
func GetLatestQuote(ctx context.Context, api MarketDataAPI, symbol string) (*models.Quote, error) {
	return api.LatestQuote(ctx, symbol)
}

// GetHistoricalBars returns bars for symbol, chronological as returned by
// the provider. Omitted bounds default to [now-30d, now]; either bound may
// be overridden independently.
func GetHistoricalBars(ctx context.Context, api MarketDataAPI, symbol string, timeframe models.TimeFrame, start, end time.Time) ([]*models.Bar, error) {
	if timeframe == "" {
		timeframe = models.TimeFrameDay
	}
	now := time.Now()
	if start.IsZero() {
		start = now.Add(-defaultBarLookback)
	}
	if end.IsZero() {
		end = now
	}
	return api.Bars(ctx, symbol, timeframe, start, end)
}
