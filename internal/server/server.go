// Package server exposes the trading facade to an MCP host: tools for
// actions, resources for read-only text views, prompts for canned templates.
// Every handler returns text; failures are rendered inline as "Error ..."
// strings so the host never sees a protocol fault for a provider problem.
package server

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/TruWeaveTrader/alpaca-mcp/internal/trading"
)

const (
	serverName    = "Alpaca Trading"
	serverVersion = "0.1.0"
)

// Server wires the MCP surface to the provider API handles.
type Server struct {
	mcp        *server.MCPServer
	trading    trading.TradingAPI
	stockData  trading.MarketDataAPI
	cryptoData trading.MarketDataAPI
	log        *zap.Logger
}

// New builds the MCP server and registers the full tool/resource/prompt
// surface against the given API handles.
func New(tradingAPI trading.TradingAPI, stockData, cryptoData trading.MarketDataAPI, log *zap.Logger) *Server {
	s := &Server{
		trading:    tradingAPI,
		stockData:  stockData,
		cryptoData: cryptoData,
		log:        log,
	}

	s.mcp = server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// marketData picks the data client that serves the symbol.
func (s *Server) marketData(symbol string) trading.MarketDataAPI {
	if trading.IsCryptoSymbol(symbol) {
		return s.cryptoData
	}
	return s.stockData
}

// ServeStdio runs the server over stdin/stdout until the host disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}
