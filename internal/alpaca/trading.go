package alpaca

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/TruWeaveTrader/alpaca-mcp/internal/models"
)

// TradingClient talks to the Alpaca trading API (account, orders, positions,
// assets).
type TradingClient struct {
	restClient
}

// GetAccount retrieves account information
func (c *TradingClient) GetAccount(ctx context.Context) (*models.Account, error) {
	resp, err := c.doRequest(ctx, "GET", c.baseURL+"/v2/account", nil)
	if err != nil {
		return nil, err
	}

	var account models.Account
	if err := parseResponse(resp, &account); err != nil {
		return nil, err
	}

	return &account, nil
}

// SubmitOrder submits a new order payload
func (c *TradingClient) SubmitOrder(ctx context.Context, payload *models.OrderPayload) (*models.Order, error) {
	resp, err := c.doRequest(ctx, "POST", c.baseURL+"/v2/orders", payload)
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := parseResponse(resp, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// ListOrders retrieves orders matching the given params, in whatever order
// the provider returns them.
func (c *TradingClient) ListOrders(ctx context.Context, params models.OrderListParams) ([]*models.Order, error) {
	values := url.Values{}
	if params.Status != "" {
		values.Set("status", string(params.Status))
	}
	if params.Limit > 0 {
		values.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.After != nil {
		values.Set("after", params.After.Format(time.RFC3339))
	}
	if params.Until != nil {
		values.Set("until", params.Until.Format(time.RFC3339))
	}

	reqURL := c.baseURL + "/v2/orders"
	if len(values) > 0 {
		reqURL += "?" + values.Encode()
	}

	resp, err := c.doRequest(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}

	var orders []*models.Order
	if err := parseResponse(resp, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// CancelOrder cancels an existing order
func (c *TradingClient) CancelOrder(ctx context.Context, orderID string) error {
	reqURL := fmt.Sprintf("%s/v2/orders/%s", c.baseURL, url.PathEscape(orderID))
	resp, err := c.doRequest(ctx, "DELETE", reqURL, nil)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}

// ListPositions retrieves all positions
func (c *TradingClient) ListPositions(ctx context.Context) ([]*models.Position, error) {
	resp, err := c.doRequest(ctx, "GET", c.baseURL+"/v2/positions", nil)
	if err != nil {
		return nil, err
	}

	var positions []*models.Position
	if err := parseResponse(resp, &positions); err != nil {
		return nil, err
	}

	return positions, nil
}

// GetPosition retrieves a specific position. A symbol with no open position
// comes back as a 404 APIError; see IsNotFound.
func (c *TradingClient) GetPosition(ctx context.Context, symbol string) (*models.Position, error) {
	reqURL := fmt.Sprintf("%s/v2/positions/%s", c.baseURL, url.PathEscape(symbol))
	resp, err := c.doRequest(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}

	var position models.Position
	if err := parseResponse(resp, &position); err != nil {
		return nil, err
	}

	return &position, nil
}

// ClosePosition liquidates a position and returns the closing order
func (c *TradingClient) ClosePosition(ctx context.Context, symbol string) (*models.Order, error) {
	reqURL := fmt.Sprintf("%s/v2/positions/%s", c.baseURL, url.PathEscape(symbol))
	resp, err := c.doRequest(ctx, "DELETE", reqURL, nil)
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := parseResponse(resp, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// ListAssets retrieves the full asset list, unfiltered.
func (c *TradingClient) ListAssets(ctx context.Context) ([]*models.Asset, error) {
	resp, err := c.doRequest(ctx, "GET", c.baseURL+"/v2/assets", nil)
	if err != nil {
		return nil, err
	}

	var assets []*models.Asset
	if err := parseResponse(resp, &assets); err != nil {
		return nil, err
	}

	return assets, nil
}

// GetAsset retrieves asset details by symbol
func (c *TradingClient) GetAsset(ctx context.Context, symbol string) (*models.Asset, error) {
	reqURL := fmt.Sprintf("%s/v2/assets/%s", c.baseURL, url.PathEscape(symbol))
	resp, err := c.doRequest(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}

	var asset models.Asset
	if err := parseResponse(resp, &asset); err != nil {
		return nil, err
	}

	return &asset, nil
}
