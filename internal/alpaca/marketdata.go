package alpaca

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/TruWeaveTrader/alpaca-mcp/internal/models"
)

// StockDataClient talks to the Alpaca stock market-data API.
type StockDataClient struct {
	restClient
}

// CryptoDataClient talks to the Alpaca crypto market-data API.
type CryptoDataClient struct {
	restClient
}

// LatestQuote retrieves the latest stock quote for a single symbol.
func (c *StockDataClient) LatestQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	return latestQuote(ctx, &c.restClient, c.baseURL+"/v2/stocks/quotes/latest", symbol)
}

// Bars retrieves historical stock bars for a single symbol, chronological as
// returned by the provider.
func (c *StockDataClient) Bars(ctx context.Context, symbol string, timeframe models.TimeFrame, start, end time.Time) ([]*models.Bar, error) {
	return bars(ctx, &c.restClient, c.baseURL+"/v2/stocks/bars", symbol, timeframe, start, end)
}

// LatestQuote retrieves the latest crypto quote for a single pair symbol
// such as "ETH/USD".
func (c *CryptoDataClient) LatestQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	return latestQuote(ctx, &c.restClient, c.baseURL+"/v1beta3/crypto/us/latest/quotes", symbol)
}

// Bars retrieves historical crypto bars for a single pair symbol.
func (c *CryptoDataClient) Bars(ctx context.Context, symbol string, timeframe models.TimeFrame, start, end time.Time) ([]*models.Bar, error) {
	return bars(ctx, &c.restClient, c.baseURL+"/v1beta3/crypto/us/bars", symbol, timeframe, start, end)
}

// latestQuote fetches a multi-symbol latest-quote response and indexes it
// down to the one requested symbol.
func latestQuote(ctx context.Context, c *restClient, endpoint, symbol string) (*models.Quote, error) {
	values := url.Values{}
	values.Set("symbols", symbol)

	resp, err := c.doRequest(ctx, "GET", endpoint+"?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Quotes map[string]*models.Quote `json:"quotes"`
	}
	if err := parseResponse(resp, &result); err != nil {
		return nil, err
	}

	quote, ok := result.Quotes[symbol]
	if !ok || quote == nil {
		return nil, fmt.Errorf("no quote returned for %s", symbol)
	}
	quote.Symbol = symbol

	return quote, nil
}

// bars fetches a multi-symbol bars response and indexes it down to the one
// requested symbol.
func bars(ctx context.Context, c *restClient, endpoint, symbol string, timeframe models.TimeFrame, start, end time.Time) ([]*models.Bar, error) {
	values := url.Values{}
	values.Set("symbols", symbol)
	values.Set("timeframe", timeframe.APIValue())
	if !start.IsZero() {
		values.Set("start", start.Format(time.RFC3339))
	}
	if !end.IsZero() {
		values.Set("end", end.Format(time.RFC3339))
	}

	resp, err := c.doRequest(ctx, "GET", endpoint+"?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Bars map[string][]*models.Bar `json:"bars"`
	}
	if err := parseResponse(resp, &result); err != nil {
		return nil, err
	}

	barList := result.Bars[symbol]
	for _, bar := range barList {
		bar.Symbol = symbol
	}

	return barList, nil
}
