package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/TruWeaveTrader/alpaca-mcp/internal/alpaca"
	"github.com/TruWeaveTrader/alpaca-mcp/internal/config"
)

var (
	// Global instances
	cfg     *config.Config
	clients *alpaca.Clients
	logger  *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "alpaca-mcp",
	Short: "MCP server for Alpaca paper trading",
	Long: `alpaca-mcp exposes an Alpaca paper-trading account to an MCP host:
account info, positions, orders, quotes, historical bars and assets as
tools and text resources. The subcommands also give direct terminal
access to the same read operations.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogger)
}

// initLogger configures zap: default INFO, DEBUG if DEBUG env is truthy.
// Everything logs to stderr so stdout stays clean for the stdio transport.
func initLogger() {
	verbose := false
	if v := os.Getenv("DEBUG"); v == "true" || v == "1" || v == "yes" {
		verbose = true
	}

	zcfg := zap.NewProductionConfig()
	zcfg.EncoderConfig.TimeKey = "time"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		zcfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	var err error
	logger, err = zcfg.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
}

// initializeApp sets up all dependencies. A missing credential is fatal
// here; nothing retries client construction later.
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	clients = alpaca.NewClients(cfg)
	return nil
}
