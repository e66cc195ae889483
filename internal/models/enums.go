package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// OrderSide represents buy or sell
type OrderSide string

const (
	Buy  OrderSide = "buy"
	Sell OrderSide = "sell"
)

// OrderType represents the order type
type OrderType string

const (
	Market       OrderType = "market"
	Limit        OrderType = "limit"
	Stop         OrderType = "stop"
	StopLimit    OrderType = "stop_limit"
	TrailingStop OrderType = "trailing_stop"
)

// TimeInForce represents order duration
type TimeInForce string

const (
	Day TimeInForce = "day"
	GTC TimeInForce = "gtc"
	OPG TimeInForce = "opg"
	CLS TimeInForce = "cls"
	IOC TimeInForce = "ioc"
	FOK TimeInForce = "fok"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderNew      OrderStatus = "new"
	OrderAccepted OrderStatus = "accepted"
	OrderFilled   OrderStatus = "filled"
	OrderExpired  OrderStatus = "expired"
	OrderCanceled OrderStatus = "canceled"
	OrderReplaced OrderStatus = "replaced"
)

// OrderFilter selects which orders a listing query returns. It is not an
// order state: "open" here means any still-working order, regardless of its
// OrderStatus.
type OrderFilter string

const (
	FilterOpen   OrderFilter = "open"
	FilterClosed OrderFilter = "closed"
	FilterAll    OrderFilter = "all"
)

// PositionSide represents long or short
type PositionSide string

const (
	Long  PositionSide = "long"
	Short PositionSide = "short"
)

// AssetClass represents the class of a tradable asset
type AssetClass string

const (
	USEquity AssetClass = "us_equity"
	Crypto   AssetClass = "crypto"
	USOption AssetClass = "us_option"
)

// AssetStatus represents whether an asset is active
type AssetStatus string

const (
	AssetActive   AssetStatus = "active"
	AssetInactive AssetStatus = "inactive"
)

// Exchange identifies the listing exchange of an asset. Unlike every other
// enum in this package, an unrecognized value decodes to ExchangeUnknown
// instead of failing: the provider adds venues over time and an asset listing
// should not break when it does.
type Exchange string

const (
	ExchangeOTC     Exchange = "OTC"
	ExchangeNYSE    Exchange = "NYSE"
	ExchangeNASDAQ  Exchange = "NASDAQ"
	ExchangeEmpty   Exchange = ""
	ExchangeCrypto  Exchange = "CRYPTO"
	ExchangeAMEX    Exchange = "AMEX"
	ExchangeARCA    Exchange = "ARCA"
	ExchangeBATS    Exchange = "BATS"
	ExchangeUnknown Exchange = "UNKNOWN"
)

// unmarshalClosed decodes a JSON string into an enum value, rejecting
// anything outside the closed set.
func unmarshalClosed[T ~string](data []byte, name string, valid ...T) (T, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	for _, v := range valid {
		if T(s) == v {
			return T(s), nil
		}
	}
	return "", fmt.Errorf("invalid %s %q", name, s)
}

func (s *OrderSide) UnmarshalJSON(data []byte) error {
	v, err := unmarshalClosed(data, "order side", Buy, Sell)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (t *OrderType) UnmarshalJSON(data []byte) error {
	v, err := unmarshalClosed(data, "order type", Market, Limit, Stop, StopLimit, TrailingStop)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t *TimeInForce) UnmarshalJSON(data []byte) error {
	v, err := unmarshalClosed(data, "time in force", Day, GTC, OPG, CLS, IOC, FOK)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	v, err := unmarshalClosed(data, "order status",
		OrderNew, OrderAccepted, OrderFilled, OrderExpired, OrderCanceled, OrderReplaced)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s *PositionSide) UnmarshalJSON(data []byte) error {
	v, err := unmarshalClosed(data, "position side", Long, Short)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (c *AssetClass) UnmarshalJSON(data []byte) error {
	v, err := unmarshalClosed(data, "asset class", USEquity, Crypto, USOption)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (s *AssetStatus) UnmarshalJSON(data []byte) error {
	v, err := unmarshalClosed(data, "asset status", AssetActive, AssetInactive)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (e *Exchange) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode exchange: %w", err)
	}
	switch Exchange(s) {
	case ExchangeOTC, ExchangeNYSE, ExchangeNASDAQ, ExchangeEmpty,
		ExchangeCrypto, ExchangeAMEX, ExchangeARCA, ExchangeBATS:
		*e = Exchange(s)
	default:
		*e = ExchangeUnknown
	}
	return nil
}

// ParseOrderSide parses a user-supplied side string.
func ParseOrderSide(s string) (OrderSide, error) {
	switch OrderSide(s) {
	case Buy, Sell:
		return OrderSide(s), nil
	}
	return "", fmt.Errorf("invalid order side %q", s)
}

// ParseTimeInForce parses a user-supplied time-in-force string.
func ParseTimeInForce(s string) (TimeInForce, error) {
	switch TimeInForce(s) {
	case Day, GTC, OPG, CLS, IOC, FOK:
		return TimeInForce(s), nil
	}
	return "", fmt.Errorf("invalid time in force %q", s)
}

// TimeFrame is the granularity of a historical bar series
type TimeFrame string

const (
	TimeFrameMin   TimeFrame = "Min"
	TimeFrameHour  TimeFrame = "Hour"
	TimeFrameDay   TimeFrame = "Day"
	TimeFrameWeek  TimeFrame = "Week"
	TimeFrameMonth TimeFrame = "Month"
)

// ParseTimeFrame parses a user-supplied timeframe string.
func ParseTimeFrame(s string) (TimeFrame, error) {
	switch TimeFrame(s) {
	case TimeFrameMin, TimeFrameHour, TimeFrameDay, TimeFrameWeek, TimeFrameMonth:
		return TimeFrame(s), nil
	}
	return "", fmt.Errorf("invalid timeframe %q", s)
}

// APIValue returns the provider's wire representation of the timeframe.
func (t TimeFrame) APIValue() string {
	return "1" + string(t)
}

// Lookback returns the default history window for the timeframe: finer
// granularities get a shorter window so the bar count stays readable.
func (t TimeFrame) Lookback() time.Duration {
	switch t {
	case TimeFrameMin:
		return 6 * time.Hour
	case TimeFrameHour:
		return 7 * 24 * time.Hour
	default:
		return 30 * 24 * time.Hour
	}
}
