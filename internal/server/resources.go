package server

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/TruWeaveTrader/alpaca-mcp/internal/models"
	"github.com/TruWeaveTrader/alpaca-mcp/internal/trading"
	"github.com/TruWeaveTrader/alpaca-mcp/pkg/formatters"
)

// assetListLimit bounds the assets://list view for readability.
const assetListLimit = 50

func (s *Server) registerResources() {
	s.mcp.AddResource(mcp.NewResource("account://info", "Account Info",
		mcp.WithResourceDescription("Current account information."),
		mcp.WithMIMEType("text/plain"),
	), textResource(func(ctx context.Context, _ mcp.ReadResourceRequest) string {
		return s.accountInfoText(ctx)
	}))

	s.mcp.AddResource(mcp.NewResource("positions://all", "All Positions",
		mcp.WithResourceDescription("All current positions."),
		mcp.WithMIMEType("text/plain"),
	), textResource(func(ctx context.Context, _ mcp.ReadResourceRequest) string {
		return s.allPositionsText(ctx)
	}))

	s.mcp.AddResourceTemplate(mcp.NewResourceTemplate("positions://{symbol}", "Position by Symbol",
		mcp.WithTemplateDescription("Position details for a specific symbol."),
		mcp.WithTemplateMIMEType("text/plain"),
	), textResource(func(ctx context.Context, request mcp.ReadResourceRequest) string {
		symbol := uriSuffix(request.Params.URI, "positions://")
		return s.positionText(ctx, symbol)
	}))

	s.mcp.AddResourceTemplate(mcp.NewResourceTemplate("orders://recent/{limit}", "Recent Orders",
		mcp.WithTemplateDescription("Most recent orders, up to the given limit (1-100)."),
		mcp.WithTemplateMIMEType("text/plain"),
	), textResource(func(ctx context.Context, request mcp.ReadResourceRequest) string {
		rawLimit := uriSuffix(request.Params.URI, "orders://recent/")
		return s.recentOrdersText(ctx, rawLimit)
	}))

	s.mcp.AddResourceTemplate(mcp.NewResourceTemplate("market://{symbol}/quote", "Latest Quote",
		mcp.WithTemplateDescription("Current market quote for a symbol."),
		mcp.WithTemplateMIMEType("text/plain"),
	), textResource(func(ctx context.Context, request mcp.ReadResourceRequest) string {
		body := uriSuffix(request.Params.URI, "market://")
		symbol := uriUnescape(strings.TrimSuffix(body, "/quote"))
		return s.quoteText(ctx, symbol)
	}))

	s.mcp.AddResourceTemplate(mcp.NewResourceTemplate("market://{symbol}/bars/{timeframe}", "Historical Bars",
		mcp.WithTemplateDescription("Historical price bars for a symbol. Timeframe is one of Min, Hour, Day, Week, Month."),
		mcp.WithTemplateMIMEType("text/plain"),
	), textResource(func(ctx context.Context, request mcp.ReadResourceRequest) string {
		body := uriSuffix(request.Params.URI, "market://")
		idx := strings.LastIndex(body, "/bars/")
		if idx < 0 {
			return fmt.Sprintf("Invalid bars URI: %s", request.Params.URI)
		}
		symbol := uriUnescape(body[:idx])
		timeframe := body[idx+len("/bars/"):]
		return s.barsText(ctx, symbol, timeframe)
	}))

	s.mcp.AddResource(mcp.NewResource("assets://list", "Tradable Assets",
		mcp.WithResourceDescription("Tradable assets available at the broker, first 50."),
		mcp.WithMIMEType("text/plain"),
	), textResource(func(ctx context.Context, _ mcp.ReadResourceRequest) string {
		return s.assetListText(ctx)
	}))

	s.mcp.AddResourceTemplate(mcp.NewResourceTemplate("assets://{symbol}", "Asset by Symbol",
		mcp.WithTemplateDescription("Detailed asset information for a symbol."),
		mcp.WithTemplateMIMEType("text/plain"),
	), textResource(func(ctx context.Context, request mcp.ReadResourceRequest) string {
		symbol := uriUnescape(uriSuffix(request.Params.URI, "assets://"))
		return s.assetText(ctx, symbol)
	}))
}

// textResource adapts a text-producing handler to the MCP contents shape.
func textResource(f func(context.Context, mcp.ReadResourceRequest) string) func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/plain",
				Text:     f(ctx, request),
			},
		}, nil
	}
}

func uriSuffix(uri, prefix string) string {
	return strings.TrimPrefix(uri, prefix)
}

// uriUnescape decodes percent-encoded symbols such as crypto pairs
// ("ETH%2FUSD"). A bad escape keeps the raw form.
func uriUnescape(s string) string {
	if unescaped, err := url.PathUnescape(s); err == nil {
		return unescaped
	}
	return s
}

func (s *Server) allPositionsText(ctx context.Context) string {
	positions, err := trading.GetPositions(ctx, s.trading)
	if err != nil {
		return fmt.Sprintf("Error fetching positions: %v", err)
	}
	return formatters.FormatPositions(positions)
}

func (s *Server) positionText(ctx context.Context, symbol string) string {
	position, err := trading.GetPosition(ctx, s.trading, symbol)
	if err != nil || position == nil {
		return fmt.Sprintf("No position found for %s.", symbol)
	}
	return formatters.FormatPosition(position)
}

func (s *Server) recentOrdersText(ctx context.Context, rawLimit string) string {
	limit, err := strconv.Atoi(rawLimit)
	if err != nil {
		return "Invalid limit value. Must be an integer."
	}
	if limit <= 0 || limit > 100 {
		return "Limit must be between 1 and 100."
	}

	orders, err := trading.GetOrders(ctx, s.trading, models.FilterAll, limit, nil, nil)
	if err != nil {
		return fmt.Sprintf("Error fetching orders: %v", err)
	}
	return formatters.FormatOrders(orders, limit)
}

func (s *Server) quoteText(ctx context.Context, symbol string) string {
	quote, err := trading.GetLatestQuote(ctx, s.marketData(symbol), symbol)
	if err != nil {
		return fmt.Sprintf("Error fetching quote for %s: %v", symbol, err)
	}
	return formatters.FormatQuote(quote)
}

func (s *Server) barsText(ctx context.Context, symbol, rawTimeframe string) string {
	timeframe, err := models.ParseTimeFrame(rawTimeframe)
	if err != nil {
		return fmt.Sprintf("Invalid timeframe: %s. Use one of: Min, Hour, Day, Week, Month", rawTimeframe)
	}

	end := time.Now()
	start := end.Add(-timeframe.Lookback())

	bars, err := trading.GetHistoricalBars(ctx, s.marketData(symbol), symbol, timeframe, start, end)
	if err != nil {
		return fmt.Sprintf("Error fetching bars for %s: %v", symbol, err)
	}
	return formatters.FormatBars(bars, symbol, timeframe)
}

func (s *Server) assetListText(ctx context.Context) string {
	assets, err := trading.GetAssets(ctx, s.trading)
	if err != nil {
		return fmt.Sprintf("Error fetching assets: %v", err)
	}

	tradable := make([]*models.Asset, 0, len(assets))
	for _, asset := range assets {
		if asset.Tradable {
			tradable = append(tradable, asset)
		}
	}

	display := tradable
	if len(tradable) > assetListLimit {
		display = tradable[:assetListLimit]
	}
	return formatters.FormatAssetsTable(display, len(tradable))
}

func (s *Server) assetText(ctx context.Context, symbol string) string {
	asset, err := trading.GetAssetBySymbol(ctx, s.trading, symbol)
	if err != nil {
		return fmt.Sprintf("Error fetching asset information for %s: %v", symbol, err)
	}
	return formatters.FormatAsset(asset)
}
