package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the provider's confirmation record for a submitted order. It is
// only ever created by decoding a provider response; it is never mutated
// locally, only re-fetched.
type Order struct {
	ID             string           `json:"id"`
	ClientOrderID  string           `json:"client_order_id"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	SubmittedAt    *time.Time       `json:"submitted_at"`
	FilledAt       *time.Time       `json:"filled_at"`
	ExpiredAt      *time.Time       `json:"expired_at"`
	CanceledAt     *time.Time       `json:"canceled_at"`
	Symbol         string           `json:"symbol"`
	Qty            decimal.Decimal  `json:"qty"`
	FilledQty      decimal.Decimal  `json:"filled_qty"`
	Type           OrderType        `json:"type"`
	Side           OrderSide        `json:"side"`
	Status         OrderStatus      `json:"status"`
	TimeInForce    TimeInForce      `json:"time_in_force"`
	LimitPrice     *decimal.Decimal `json:"limit_price"`
	StopPrice      *decimal.Decimal `json:"stop_price"`
	FilledAvgPrice *decimal.Decimal `json:"filled_avg_price"`
	ExtendedHours  bool             `json:"extended_hours"`
}

// OrderRequest is a request to create a new order. The price fields are
// conditionally required by the order type; BuildOrderPayload enforces that.
type OrderRequest struct {
	Symbol        string
	Qty           decimal.Decimal
	Side          OrderSide
	Type          OrderType
	TimeInForce   TimeInForce
	LimitPrice    *decimal.Decimal
	StopPrice     *decimal.Decimal
	ClientOrderID string
	ExtendedHours bool
}

// OrderPayload is the wire shape submitted to the provider. Only the price
// fields relevant to the order type are populated; the rest are omitted.
type OrderPayload struct {
	Symbol        string           `json:"symbol"`
	Qty           decimal.Decimal  `json:"qty"`
	Side          OrderSide        `json:"side"`
	Type          OrderType        `json:"type"`
	TimeInForce   TimeInForce      `json:"time_in_force"`
	LimitPrice    *decimal.Decimal `json:"limit_price,omitempty"`
	StopPrice     *decimal.Decimal `json:"stop_price,omitempty"`
	ClientOrderID string           `json:"client_order_id,omitempty"`
	ExtendedHours bool             `json:"extended_hours,omitempty"`
}

// OrderListParams filters an order listing query. Zero values mean
// "provider default".
type OrderListParams struct {
	Status OrderFilter
	Limit  int
	After  *time.Time
	Until  *time.Time
}

// Position represents a current position. Recomputed fresh on every query;
// never cached.
type Position struct {
	Symbol         string          `json:"symbol"`
	Qty            decimal.Decimal `json:"qty"`
	AvgEntryPrice  decimal.Decimal `json:"avg_entry_price"`
	MarketValue    decimal.Decimal `json:"market_value"`
	CostBasis      decimal.Decimal `json:"cost_basis"`
	UnrealizedPL   decimal.Decimal `json:"unrealized_pl"`
	UnrealizedPLPC decimal.Decimal `json:"unrealized_plpc"`
	CurrentPrice   decimal.Decimal `json:"current_price"`
	LastdayPrice   decimal.Decimal `json:"lastday_price"`
	ChangeToday    decimal.Decimal `json:"change_today"`
	Side           PositionSide    `json:"side"`
}

// Account represents account information. Fields the provider adds that are
// not listed here are dropped on decode; that is deliberate, not an
// oversight.
type Account struct {
	ID                       string          `json:"id"`
	AccountNumber            string          `json:"account_number"`
	Status                   string          `json:"status"`
	Currency                 string          `json:"currency"`
	BuyingPower              decimal.Decimal `json:"buying_power"`
	RegtBuyingPower          decimal.Decimal `json:"regt_buying_power"`
	DaytradingBuyingPower    decimal.Decimal `json:"daytrading_buying_power"`
	NonMarginableBuyingPower decimal.Decimal `json:"non_marginable_buying_power"`
	Cash                     decimal.Decimal `json:"cash"`
	PortfolioValue           decimal.Decimal `json:"portfolio_value"`
	PatternDayTrader         bool            `json:"pattern_day_trader"`
	TradingBlocked           bool            `json:"trading_blocked"`
	TransfersBlocked         bool            `json:"transfers_blocked"`
	TradeSuspendedByUser     bool            `json:"trade_suspended_by_user"`
	InitialMargin            decimal.Decimal `json:"initial_margin"`
	MaintenanceMargin        decimal.Decimal `json:"maintenance_margin"`
	LastMaintenanceMargin    decimal.Decimal `json:"last_maintenance_margin"`
	Equity                   decimal.Decimal `json:"equity"`
	LastEquity               decimal.Decimal `json:"last_equity"`
	DaytradeCount            int64           `json:"daytrade_count"`
	Multiplier               decimal.Decimal `json:"multiplier"`
	SMA                      decimal.Decimal `json:"sma"`
}

// Asset represents a tradable (or delisted) instrument.
type Asset struct {
	ID                           string           `json:"id"`
	Symbol                       string           `json:"symbol"`
	Name                         string           `json:"name"`
	Exchange                     Exchange         `json:"exchange"`
	Class                        AssetClass       `json:"class"`
	EasyToBorrow                 bool             `json:"easy_to_borrow"`
	Fractionable                 bool             `json:"fractionable"`
	Marginable                   bool             `json:"marginable"`
	Shortable                    bool             `json:"shortable"`
	Tradable                     bool             `json:"tradable"`
	Status                       AssetStatus      `json:"status"`
	Attributes                   []string         `json:"attributes"`
	MaintenanceMarginRequirement *decimal.Decimal `json:"maintenance_margin_requirement"`
	MinOrderSize                 *decimal.Decimal `json:"min_order_size"`
	MinTradeIncrement            *decimal.Decimal `json:"min_trade_increment"`
	PriceIncrement               *decimal.Decimal `json:"price_increment"`
}

// Quote is a point-in-time bid/ask snapshot. Its only identity is
// (symbol, timestamp).
type Quote struct {
	Symbol      string          `json:"symbol"`
	BidExchange string          `json:"bx"`
	BidPrice    decimal.Decimal `json:"bp"`
	BidSize     int32           `json:"bs"`
	AskPrice    decimal.Decimal `json:"ap"`
	AskSize     int32           `json:"as"`
	Conditions  []string        `json:"c"`
	Tape        string          `json:"z"`
	Timestamp   time.Time       `json:"t"`
}

// Bar represents an OHLCV bar
type Bar struct {
	Symbol    string          `json:"symbol"`
	Open      decimal.Decimal `json:"o"`
	High      decimal.Decimal `json:"h"`
	Low       decimal.Decimal `json:"l"`
	Close     decimal.Decimal `json:"c"`
	Volume    int64           `json:"v"`
	Timestamp time.Time       `json:"t"`
}
