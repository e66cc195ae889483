package alpaca

import (
	"net/http"

	"github.com/TruWeaveTrader/alpaca-mcp/internal/config"
)

// Clients bundles the three pre-authenticated API handles. Built once at
// process start and passed explicitly to every caller; read-only thereafter,
// so it is safe to share across concurrent calls.
type Clients struct {
	Trading    *TradingClient
	StockData  *StockDataClient
	CryptoData *CryptoDataClient
}

// NewClients builds the three clients from the loaded configuration. The
// trading client always targets the paper endpoint.
func NewClients(cfg *config.Config) *Clients {
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	return &Clients{
		Trading: &TradingClient{restClient{
			httpClient: httpClient,
			baseURL:    cfg.AlpacaBaseURL,
			keyID:      cfg.AlpacaKeyID,
			secretKey:  cfg.AlpacaSecretKey,
		}},
		StockData: &StockDataClient{restClient{
			httpClient: httpClient,
			baseURL:    cfg.AlpacaDataURL,
			keyID:      cfg.AlpacaKeyID,
			secretKey:  cfg.AlpacaSecretKey,
		}},
		CryptoData: &CryptoDataClient{restClient{
			httpClient: httpClient,
			baseURL:    cfg.AlpacaDataURL,
			keyID:      cfg.AlpacaKeyID,
			secretKey:  cfg.AlpacaSecretKey,
		}},
	}
}
