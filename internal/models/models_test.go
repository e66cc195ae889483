package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestExchangeUnmarshalKnown(t *testing.T) {
	cases := map[string]Exchange{
		`"NYSE"`:   ExchangeNYSE,
		`"NASDAQ"`: ExchangeNASDAQ,
		`"CRYPTO"`: ExchangeCrypto,
		`""`:       ExchangeEmpty,
	}

	for raw, want := range cases {
		var got Exchange
		if err := json.Unmarshal([]byte(raw), &got); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", raw, err)
		}
		if got != want {
			t.Errorf("Unmarshal(%s) = %q, want %q", raw, got, want)
		}
	}
}

func TestExchangeUnmarshalUnknownFallsBack(t *testing.T) {
	var got Exchange
	if err := json.Unmarshal([]byte(`"IEX"`), &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got != ExchangeUnknown {
		t.Errorf("Expected ExchangeUnknown for unrecognized venue, got %q", got)
	}
}

func TestClosedEnumsRejectUnknown(t *testing.T) {
	// Unlike Exchange, the other enums are strict.
	var side OrderSide
	if err := json.Unmarshal([]byte(`"short"`), &side); err == nil {
		t.Error("Expected error for invalid order side, got nil")
	}

	var status OrderStatus
	if err := json.Unmarshal([]byte(`"open"`), &status); err == nil {
		t.Error("Expected error for filter value decoded as order status, got nil")
	}

	var class AssetClass
	if err := json.Unmarshal([]byte(`"bond"`), &class); err == nil {
		t.Error("Expected error for invalid asset class, got nil")
	}
}

func TestOrderDecodesProviderResponse(t *testing.T) {
	raw := `{
		"id": "61e69015-8549-4bfd-b9c3-01e75843f47d",
		"client_order_id": "my-order",
		"created_at": "2024-03-01T09:30:00Z",
		"updated_at": "2024-03-01T09:30:05Z",
		"submitted_at": "2024-03-01T09:30:01Z",
		"filled_at": null,
		"symbol": "AAPL",
		"qty": "1.5",
		"filled_qty": "0",
		"type": "limit",
		"side": "buy",
		"status": "new",
		"time_in_force": "gtc",
		"limit_price": "185.25",
		"stop_price": null,
		"filled_avg_price": null,
		"extended_hours": false,
		"some_future_field": "ignored"
	}`

	var order Order
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if order.Symbol != "AAPL" {
		t.Errorf("Expected Symbol='AAPL', got '%s'", order.Symbol)
	}
	if order.Type != Limit {
		t.Errorf("Expected Type=limit, got %q", order.Type)
	}
	if order.Status != OrderNew {
		t.Errorf("Expected Status=new, got %q", order.Status)
	}
	if !order.Qty.Equal(decimalFromString(t, "1.5")) {
		t.Errorf("Expected Qty=1.5, got %s", order.Qty)
	}
	if order.LimitPrice == nil || !order.LimitPrice.Equal(decimalFromString(t, "185.25")) {
		t.Errorf("Expected LimitPrice=185.25, got %v", order.LimitPrice)
	}
	if order.StopPrice != nil {
		t.Errorf("Expected nil StopPrice, got %v", order.StopPrice)
	}
	if order.FilledAt != nil {
		t.Errorf("Expected nil FilledAt, got %v", order.FilledAt)
	}
}

func TestOrderRejectsInvalidStatus(t *testing.T) {
	raw := `{"id": "x", "status": "halted"}`

	var order Order
	if err := json.Unmarshal([]byte(raw), &order); err == nil {
		t.Error("Expected decode failure for unrecognized order status, got nil")
	}
}

func TestAccountIgnoresUnknownFields(t *testing.T) {
	raw := `{
		"id": "904837e3-3b76-47ec-b432-046db621571b",
		"account_number": "PA12345",
		"status": "ACTIVE",
		"currency": "USD",
		"cash": "1000.50",
		"portfolio_value": "2500.75",
		"buying_power": "4000",
		"equity": "2500.75",
		"daytrade_count": 2,
		"pattern_day_trader": false,
		"crypto_status": "ACTIVE",
		"effective_buying_power": "4000"
	}`

	var account Account
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if account.AccountNumber != "PA12345" {
		t.Errorf("Expected AccountNumber='PA12345', got '%s'", account.AccountNumber)
	}
	if !account.Cash.Equal(decimalFromString(t, "1000.50")) {
		t.Errorf("Expected Cash=1000.50, got %s", account.Cash)
	}
	if account.DaytradeCount != 2 {
		t.Errorf("Expected DaytradeCount=2, got %d", account.DaytradeCount)
	}
}

func TestParseTimeFrame(t *testing.T) {
	for _, valid := range []string{"Min", "Hour", "Day", "Week", "Month"} {
		if _, err := ParseTimeFrame(valid); err != nil {
			t.Errorf("ParseTimeFrame(%q) failed: %v", valid, err)
		}
	}

	if _, err := ParseTimeFrame("Year"); err == nil {
		t.Error("Expected error for invalid timeframe, got nil")
	}
}

func TestTimeFrameAPIValue(t *testing.T) {
	if got := TimeFrameDay.APIValue(); got != "1Day" {
		t.Errorf("Expected '1Day', got '%s'", got)
	}
	if got := TimeFrameMin.APIValue(); got != "1Min" {
		t.Errorf("Expected '1Min', got '%s'", got)
	}
}

func TestTimeFrameLookback(t *testing.T) {
	cases := map[TimeFrame]time.Duration{
		TimeFrameMin:   6 * time.Hour,
		TimeFrameHour:  7 * 24 * time.Hour,
		TimeFrameDay:   30 * 24 * time.Hour,
		TimeFrameWeek:  30 * 24 * time.Hour,
		TimeFrameMonth: 30 * 24 * time.Hour,
	}

	for tf, want := range cases {
		if got := tf.Lookback(); got != want {
			t.Errorf("Lookback(%s) = %v, want %v", tf, got, want)
		}
	}
}

func TestParseOrderSide(t *testing.T) {
	if _, err := ParseOrderSide("buy"); err != nil {
		t.Errorf("ParseOrderSide(buy) failed: %v", err)
	}
	if _, err := ParseOrderSide("hold"); err == nil {
		t.Error("Expected error for invalid side, got nil")
	}
}
