package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/shopspring/decimal"

	"github.com/TruWeaveTrader/alpaca-mcp/internal/models"
	"github.com/TruWeaveTrader/alpaca-mcp/internal/trading"
	"github.com/TruWeaveTrader/alpaca-mcp/pkg/formatters"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("get_account_info_tool",
		mcp.WithDescription("Get current account information: balance, buying power and status."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(s.accountInfoText(ctx)), nil
	})

	s.mcp.AddTool(mcp.NewTool("place_market_order",
		mcp.WithDescription("Place a market order to buy or sell a stock."),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Stock symbol (e.g. 'AAPL')")),
		mcp.WithNumber("quantity", mcp.Required(), mcp.Description("Number of shares, fractional allowed")),
		mcp.WithString("side", mcp.Required(), mcp.Description("Either 'buy' or 'sell'")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		quantity, err := request.RequireFloat("quantity")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		side, err := request.RequireString("side")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(s.placeMarketOrderText(ctx, symbol, quantity, side)), nil
	})

	s.mcp.AddTool(mcp.NewTool("place_limit_order",
		mcp.WithDescription("Place a limit order to buy or sell a stock at a specified price."),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Stock symbol (e.g. 'AAPL')")),
		mcp.WithNumber("quantity", mcp.Required(), mcp.Description("Number of shares, fractional allowed")),
		mcp.WithString("side", mcp.Required(), mcp.Description("Either 'buy' or 'sell'")),
		mcp.WithNumber("limit_price", mcp.Required(), mcp.Description("Maximum price for buy, minimum for sell")),
		mcp.WithString("time_in_force", mcp.Description("Order duration: day, gtc, opg, cls, ioc, fok")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		quantity, err := request.RequireFloat("quantity")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		side, err := request.RequireString("side")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limitPrice, err := request.RequireFloat("limit_price")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		tif := request.GetString("time_in_force", "day")
		return mcp.NewToolResultText(s.placeLimitOrderText(ctx, symbol, quantity, side, limitPrice, tif)), nil
	})

	s.mcp.AddTool(mcp.NewTool("place_stop_order",
		mcp.WithDescription("Place a stop order that triggers when the stock reaches a specified price."),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Stock symbol (e.g. 'AAPL')")),
		mcp.WithNumber("quantity", mcp.Required(), mcp.Description("Number of shares, fractional allowed")),
		mcp.WithString("side", mcp.Required(), mcp.Description("Either 'buy' or 'sell'")),
		mcp.WithNumber("stop_price", mcp.Required(), mcp.Description("Price that triggers the order")),
		mcp.WithString("time_in_force", mcp.Description("Order duration: day, gtc, opg, cls, ioc, fok")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		quantity, err := request.RequireFloat("quantity")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		side, err := request.RequireString("side")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		stopPrice, err := request.RequireFloat("stop_price")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		tif := request.GetString("time_in_force", "day")
		return mcp.NewToolResultText(s.placeStopOrderText(ctx, symbol, quantity, side, stopPrice, tif)), nil
	})

	s.mcp.AddTool(mcp.NewTool("place_stop_limit_order",
		mcp.WithDescription("Place a stop-limit order combining stop and limit features."),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Stock symbol (e.g. 'AAPL')")),
		mcp.WithNumber("quantity", mcp.Required(), mcp.Description("Number of shares, fractional allowed")),
		mcp.WithString("side", mcp.Required(), mcp.Description("Either 'buy' or 'sell'")),
		mcp.WithNumber("stop_price", mcp.Required(), mcp.Description("Price that triggers the order")),
		mcp.WithNumber("limit_price", mcp.Required(), mcp.Description("Limit price for the triggered order")),
		mcp.WithString("time_in_force", mcp.Description("Order duration: day, gtc, opg, cls, ioc, fok")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		quantity, err := request.RequireFloat("quantity")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		side, err := request.RequireString("side")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		stopPrice, err := request.RequireFloat("stop_price")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limitPrice, err := request.RequireFloat("limit_price")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		tif := request.GetString("time_in_force", "day")
		return mcp.NewToolResultText(s.placeStopLimitOrderText(ctx, symbol, quantity, side, stopPrice, limitPrice, tif)), nil
	})

	s.mcp.AddTool(mcp.NewTool("cancel_order",
		mcp.WithDescription("Cancel an open order by its ID."),
		mcp.WithString("order_id", mcp.Required(), mcp.Description("ID of the order to cancel")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orderID, err := request.RequireString("order_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(s.cancelOrderText(ctx, orderID)), nil
	})

	s.mcp.AddTool(mcp.NewTool("close_position",
		mcp.WithDescription("Close the open position for a specific symbol."),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Stock symbol to close the position for")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(s.closePositionText(ctx, symbol)), nil
	})

	s.mcp.AddTool(mcp.NewTool("get_portfolio_summary",
		mcp.WithDescription("Get a combined summary of the account and all open positions."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(s.portfolioSummaryText(ctx)), nil
	})
}

func (s *Server) accountInfoText(ctx context.Context) string {
	account, err := trading.GetAccount(ctx, s.trading)
	if err != nil {
		return fmt.Sprintf("Error fetching account information: %v", err)
	}
	return formatters.FormatAccount(account)
}

func (s *Server) placeMarketOrderText(ctx context.Context, symbol string, quantity float64, side string) string {
	orderSide, err := models.ParseOrderSide(strings.ToLower(side))
	if err != nil {
		return fmt.Sprintf("Invalid side: %s. Must be 'buy' or 'sell'.", side)
	}

	return s.submitOrderText(ctx, &models.OrderRequest{
		Symbol:      symbol,
		Qty:         decimal.NewFromFloat(quantity),
		Side:        orderSide,
		Type:        models.Market,
		TimeInForce: models.Day,
	})
}

func (s *Server) placeLimitOrderText(ctx context.Context, symbol string, quantity float64, side string, limitPrice float64, tif string) string {
	orderSide, err := models.ParseOrderSide(strings.ToLower(side))
	if err != nil {
		return fmt.Sprintf("Invalid side: %s. Must be 'buy' or 'sell'.", side)
	}
	orderTIF, err := models.ParseTimeInForce(strings.ToLower(tif))
	if err != nil {
		return fmt.Sprintf("Invalid time in force: %s. Valid options are: day, gtc, opg, cls, ioc, fok", tif)
	}

	lp := decimal.NewFromFloat(limitPrice)
	return s.submitOrderText(ctx, &models.OrderRequest{
		Symbol:      symbol,
		Qty:         decimal.NewFromFloat(quantity),
		Side:        orderSide,
		Type:        models.Limit,
		TimeInForce: orderTIF,
		LimitPrice:  &lp,
	})
}

func (s *Server) placeStopOrderText(ctx context.Context, symbol string, quantity float64, side string, stopPrice float64, tif string) string {
	orderSide, err := models.ParseOrderSide(strings.ToLower(side))
	if err != nil {
		return fmt.Sprintf("Invalid side: %s. Must be 'buy' or 'sell'.", side)
	}
	orderTIF, err := models.ParseTimeInForce(strings.ToLower(tif))
	if err != nil {
		return fmt.Sprintf("Invalid time in force: %s. Valid options are: day, gtc, opg, cls, ioc, fok", tif)
	}

	sp := decimal.NewFromFloat(stopPrice)
	return s.submitOrderText(ctx, &models.OrderRequest{
		Symbol:      symbol,
		Qty:         decimal.NewFromFloat(quantity),
		Side:        orderSide,
		Type:        models.Stop,
		TimeInForce: orderTIF,
		StopPrice:   &sp,
	})
}

func (s *Server) placeStopLimitOrderText(ctx context.Context, symbol string, quantity float64, side string, stopPrice, limitPrice float64, tif string) string {
	orderSide, err := models.ParseOrderSide(strings.ToLower(side))
	if err != nil {
		return fmt.Sprintf("Invalid side: %s. Must be 'buy' or 'sell'.", side)
	}
	orderTIF, err := models.ParseTimeInForce(strings.ToLower(tif))
	if err != nil {
		return fmt.Sprintf("Invalid time in force: %s. Valid options are: day, gtc, opg, cls, ioc, fok", tif)
	}

	sp := decimal.NewFromFloat(stopPrice)
	lp := decimal.NewFromFloat(limitPrice)
	return s.submitOrderText(ctx, &models.OrderRequest{
		Symbol:      symbol,
		Qty:         decimal.NewFromFloat(quantity),
		Side:        orderSide,
		Type:        models.StopLimit,
		TimeInForce: orderTIF,
		StopPrice:   &sp,
		LimitPrice:  &lp,
	})
}

// submitOrderText runs the order mapper and renders either the confirmation
// or the failure as text.
func (s *Server) submitOrderText(ctx context.Context, req *models.OrderRequest) string {
	order, err := trading.PlaceOrder(ctx, s.trading, req)
	if err != nil {
		label := strings.ReplaceAll(string(req.Type), "_", "-")
		return fmt.Sprintf("Error placing %s order: %v", label, err)
	}
	return formatters.FormatOrderConfirmation(order)
}

func (s *Server) cancelOrderText(ctx context.Context, orderID string) string {
	if err := s.trading.CancelOrder(ctx, orderID); err != nil {
		return fmt.Sprintf("Error canceling order %s: %v", orderID, err)
	}
	return fmt.Sprintf("Order %s has been successfully canceled.", orderID)
}

func (s *Server) closePositionText(ctx context.Context, symbol string) string {
	position, err := trading.GetPosition(ctx, s.trading, symbol)
	if err != nil || position == nil {
		return fmt.Sprintf("No open position found for %s.", symbol)
	}

	if _, err := s.trading.ClosePosition(ctx, symbol); err != nil {
		return fmt.Sprintf("Error closing position for %s: %v", symbol, err)
	}
	return fmt.Sprintf("Position for %s has been successfully closed.", symbol)
}

func (s *Server) portfolioSummaryText(ctx context.Context) string {
	account, err := trading.GetAccount(ctx, s.trading)
	if err != nil {
		return fmt.Sprintf("Error generating portfolio summary: %v", err)
	}
	positions, err := trading.GetPositions(ctx, s.trading)
	if err != nil {
		return fmt.Sprintf("Error generating portfolio summary: %v", err)
	}
	return formatters.FormatPortfolioSummary(account, positions)
}
