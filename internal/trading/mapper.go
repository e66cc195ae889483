package trading

import (
	"context"

	"github.com/TruWeaveTrader/alpaca-mcp/internal/models"
)

// BuildOrderPayload validates an order request against its declared type and
// produces the one provider payload shape for that type. A single pass: it
// branches on the type, checks the conditionally required prices, and either
// returns the payload or a typed validation error. It never touches the
// network.
func BuildOrderPayload(req *models.OrderRequest) (*models.OrderPayload, error) {
	payload := &models.OrderPayload{
		Symbol:        req.Symbol,
		Qty:           req.Qty,
		Side:          req.Side,
		Type:          req.Type,
		TimeInForce:   req.TimeInForce,
		ClientOrderID: req.ClientOrderID,
		ExtendedHours: req.ExtendedHours,
	}

	switch req.Type {
	case models.Market:
		// Market orders carry no price fields, even if the request set them.

	case models.Limit:
		if req.LimitPrice == nil {
			return nil, &MissingFieldError{OrderType: req.Type, Fields: []string{"limit_price"}}
		}
		payload.LimitPrice = req.LimitPrice

	case models.Stop:
		if req.StopPrice == nil {
			return nil, &MissingFieldError{OrderType: req.Type, Fields: []string{"stop_price"}}
		}
		payload.StopPrice = req.StopPrice

	case models.StopLimit:
		if req.StopPrice == nil || req.LimitPrice == nil {
			return nil, &MissingFieldError{OrderType: req.Type, Fields: []string{"stop_price", "limit_price"}}
		}
		payload.StopPrice = req.StopPrice
		payload.LimitPrice = req.LimitPrice

	default:
		// trailing_stop is a declared type the mapper does not submit.
		return nil, &UnsupportedOrderTypeError{OrderType: req.Type}
	}

	return payload, nil
}

// PlaceOrder maps the request to its payload shape and submits it. On a
// validation failure the provider is never called.
func PlaceOrder(ctx context.Context, api TradingAPI, req *models.OrderRequest) (*models.Order, error) {
	payload, err := BuildOrderPayload(req)
	if err != nil {
		return nil, err
	}
	return api.SubmitOrder(ctx, payload)
}
