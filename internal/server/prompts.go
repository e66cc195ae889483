package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPrompts() {
	s.mcp.AddPrompt(mcp.NewPrompt("market_order_prompt",
		mcp.WithPromptDescription("Creates a prompt for placing a market order."),
		mcp.WithArgument("symbol", mcp.RequiredArgument(), mcp.ArgumentDescription("Stock symbol")),
		mcp.WithArgument("quantity", mcp.RequiredArgument(), mcp.ArgumentDescription("Number of shares")),
		mcp.WithArgument("side", mcp.RequiredArgument(), mcp.ArgumentDescription("buy or sell")),
	), func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		symbol := request.Params.Arguments["symbol"]
		quantity := request.Params.Arguments["quantity"]
		side := request.Params.Arguments["side"]

		text := fmt.Sprintf(`I want to place a market order with the following details:

Symbol: %s
Quantity: %s
Side: %s

Please execute this order for me and confirm once it's placed.`, symbol, quantity, side)

		return mcp.NewGetPromptResult("Place a market order", []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		}), nil
	})

	s.mcp.AddPrompt(mcp.NewPrompt("portfolio_analysis_prompt",
		mcp.WithPromptDescription("Creates a prompt for analyzing the current portfolio."),
	), func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		text := `Please analyze my current portfolio and provide the following:

1. A summary of my account status and buying power
2. A list of my current positions with their performance
3. An assessment of my portfolio allocation and diversification
4. Any recommendations for rebalancing or risk management

Please use the portfolio summary tool to gather the necessary information.`

		return mcp.NewGetPromptResult("Analyze the portfolio", []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		}), nil
	})

	s.mcp.AddPrompt(mcp.NewPrompt("market_research_prompt",
		mcp.WithPromptDescription("Creates a prompt for researching a specific stock."),
		mcp.WithArgument("symbol", mcp.RequiredArgument(), mcp.ArgumentDescription("Stock symbol to research")),
	), func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		symbol := request.Params.Arguments["symbol"]

		text := fmt.Sprintf(`I'd like to research %s before making a trading decision. Could you:

1. Provide the current market quote for %s
2. Show me recent price history using the Daily timeframe
3. Give me information about the asset (exchange, class, etc.)
4. If I already have a position in %s, show me its details

Please use the appropriate resources to gather this information.`, symbol, symbol, symbol)

		return mcp.NewGetPromptResult("Research a stock", []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		}), nil
	})
}
