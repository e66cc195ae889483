package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TruWeaveTrader/alpaca-mcp/internal/server"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Starts the MCP server on stdin/stdout and blocks until the host
disconnects. This is the command an MCP host configuration points at.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	srv := server.New(clients.Trading, clients.StockData, clients.CryptoData, logger)

	logger.Info("starting MCP server",
		zap.String("transport", "stdio"),
		zap.String("trading_url", cfg.AlpacaBaseURL),
	)

	return srv.ServeStdio()
}
