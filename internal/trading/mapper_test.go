package trading

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/TruWeaveTrader/alpaca-mcp/internal/models"
)

// fakeTradingAPI records calls and returns canned values.
type fakeTradingAPI struct {
	account   *models.Account
	order     *models.Order
	orders    []*models.Order
	position  *models.Position
	positions []*models.Position
	asset     *models.Asset
	assets    []*models.Asset
	err       error

	submitCalls  int
	lastPayload  *models.OrderPayload
	lastParams   models.OrderListParams
	listedOrders int
}

func (f *fakeTradingAPI) GetAccount(ctx context.Context) (*models.Account, error) {
	return f.account, f.err
}

func (f *fakeTradingAPI) SubmitOrder(ctx context.Context, payload *models.OrderPayload) (*models.Order, error) {
	f.submitCalls++
	f.lastPayload = payload
	return f.order, f.err
}

func (f *fakeTradingAPI) ListOrders(ctx context.Context, params models.OrderListParams) ([]*models.Order, error) {
	f.listedOrders++
	f.lastParams = params
	return f.orders, f.err
}

func (f *fakeTradingAPI) CancelOrder(ctx context.Context, orderID string) error {
	return f.err
}

func (f *fakeTradingAPI) ListPositions(ctx context.Context) ([]*models.Position, error) {
	return f.positions, f.err
}

func (f *fakeTradingAPI) GetPosition(ctx context.Context, symbol string) (*models.Position, error) {
	return f.position, f.err
}

func (f *fakeTradingAPI) ClosePosition(ctx context.Context, symbol string) (*models.Order, error) {
	return f.order, f.err
}

func (f *fakeTradingAPI) ListAssets(ctx context.Context) ([]*models.Asset, error) {
	return f.assets, f.err
}

func (f *fakeTradingAPI) GetAsset(ctx context.Context, symbol string) (*models.Asset, error) {
	return f.asset, f.err
}

func marketRequest() *models.OrderRequest {
	return &models.OrderRequest{
		Symbol:      "AAPL",
		Qty:         decimal.NewFromFloat(1.5),
		Side:        models.Buy,
		Type:        models.Market,
		TimeInForce: models.Day,
	}
}

func TestBuildOrderPayloadMarket(t *testing.T) {
	// Stray price fields on a market request must not leak into the payload.
	lp := decimal.NewFromInt(100)
	sp := decimal.NewFromInt(95)
	req := marketRequest()
	req.LimitPrice = &lp
	req.StopPrice = &sp

	payload, err := BuildOrderPayload(req)
	if err != nil {
		t.Fatalf("BuildOrderPayload failed: %v", err)
	}

	if payload.Symbol != "AAPL" || payload.Side != models.Buy || payload.Type != models.Market || payload.TimeInForce != models.Day {
		t.Errorf("Unexpected base fields: %+v", payload)
	}
	if payload.LimitPrice != nil {
		t.Error("Market payload must not carry a limit price")
	}
	if payload.StopPrice != nil {
		t.Error("Market payload must not carry a stop price")
	}
}

func TestBuildOrderPayloadLimitRequiresPrice(t *testing.T) {
	req := marketRequest()
	req.Type = models.Limit

	_, err := BuildOrderPayload(req)

	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingFieldError, got %v", err)
	}
	if len(missing.Fields) != 1 || missing.Fields[0] != "limit_price" {
		t.Errorf("Expected fields [limit_price], got %v", missing.Fields)
	}
}

func TestBuildOrderPayloadStopRequiresPrice(t *testing.T) {
	req := marketRequest()
	req.Type = models.Stop

	_, err := BuildOrderPayload(req)

	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingFieldError, got %v", err)
	}
	if len(missing.Fields) != 1 || missing.Fields[0] != "stop_price" {
		t.Errorf("Expected fields [stop_price], got %v", missing.Fields)
	}
}

func TestBuildOrderPayloadStopLimitRequiresBoth(t *testing.T) {
	lp := decimal.NewFromInt(100)
	sp := decimal.NewFromInt(95)

	cases := []struct {
		name  string
		limit *decimal.Decimal
		stop  *decimal.Decimal
	}{
		{"neither", nil, nil},
		{"limit only", &lp, nil},
		{"stop only", nil, &sp},
	}

	for _, tc := range cases {
		req := marketRequest()
		req.Type = models.StopLimit
		req.LimitPrice = tc.limit
		req.StopPrice = tc.stop

		_, err := BuildOrderPayload(req)

		var missing *MissingFieldError
		if !errors.As(err, &missing) {
			t.Fatalf("%s: expected MissingFieldError, got %v", tc.name, err)
		}
		if len(missing.Fields) != 2 {
			t.Errorf("%s: expected both price fields named, got %v", tc.name, missing.Fields)
		}
	}
}

func TestBuildOrderPayloadStopLimitOK(t *testing.T) {
	lp := decimal.NewFromInt(100)
	sp := decimal.NewFromInt(95)
	req := marketRequest()
	req.Type = models.StopLimit
	req.LimitPrice = &lp
	req.StopPrice = &sp

	payload, err := BuildOrderPayload(req)
	if err != nil {
		t.Fatalf("BuildOrderPayload failed: %v", err)
	}
	if payload.LimitPrice == nil || payload.StopPrice == nil {
		t.Error("Stop-limit payload must carry both prices")
	}
}

func TestBuildOrderPayloadTrailingStopUnsupported(t *testing.T) {
	req := marketRequest()
	req.Type = models.TrailingStop

	_, err := BuildOrderPayload(req)

	var unsupported *UnsupportedOrderTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Expected UnsupportedOrderTypeError, got %v", err)
	}
	if unsupported.OrderType != models.TrailingStop {
		t.Errorf("Expected trailing_stop in error, got %q", unsupported.OrderType)
	}
}

func TestPlaceOrderSubmitsOnSuccess(t *testing.T) {
	api := &fakeTradingAPI{order: &models.Order{ID: "abc", Symbol: "AAPL"}}

	order, err := PlaceOrder(context.Background(), api, marketRequest())
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if order.ID != "abc" {
		t.Errorf("Expected order ID 'abc', got '%s'", order.ID)
	}
	if api.submitCalls != 1 {
		t.Errorf("Expected exactly one submission, got %d", api.submitCalls)
	}
}

func TestPlaceOrderNoSubmissionOnValidationFailure(t *testing.T) {
	api := &fakeTradingAPI{}
	req := marketRequest()
	req.Type = models.Limit // no limit price set

	if _, err := PlaceOrder(context.Background(), api, req); err == nil {
		t.Fatal("Expected validation error, got nil")
	}
	if api.submitCalls != 0 {
		t.Errorf("Expected zero submissions on validation failure, got %d", api.submitCalls)
	}
}
