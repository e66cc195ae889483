package trading

import (
	"fmt"
	"strings"

	"github.com/TruWeaveTrader/alpaca-mcp/internal/models"
)

// MissingFieldError reports price fields the order type requires but the
// request did not carry.
type MissingFieldError struct {
	OrderType models.OrderType
	Fields    []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s orders require %s", e.OrderType, strings.Join(e.Fields, " and "))
}

// UnsupportedOrderTypeError reports an order type the mapper does not submit,
// even if the type is a valid enum member.
type UnsupportedOrderTypeError struct {
	OrderType models.OrderType
}

func (e *UnsupportedOrderTypeError) Error() string {
	return fmt.Sprintf("unsupported order type: %s", e.OrderType)
}
