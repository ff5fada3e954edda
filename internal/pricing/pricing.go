// Package pricing computes line and cart totals with exact decimal arithmetic.
package pricing

import (
	"github.com/franciscosanchezn/bytebistro-api/internal/errs"
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest value a money column can hold.
var MaxAmount = decimal.RequireFromString("99999999.99")

// Line is a (quantity, unit price) pair as seen by the calculator.
type Line struct {
	Quantity  int
	UnitPrice decimal.Decimal
}

// LineTotal returns quantity * unitPrice.
// Negative quantities and negative prices are rejected, never clamped.
// So is a total above MaxAmount.
func LineTotal(quantity int, unitPrice decimal.Decimal) (decimal.Decimal, error) {
	if quantity < 0 {
		return decimal.Zero, errs.NewValidationError("quantity", "must not be negative")
	}
	if unitPrice.IsNegative() {
		return decimal.Zero, errs.NewValidationError("unit_price", "must not be negative")
	}
	total := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	if total.GreaterThan(MaxAmount) {
		return decimal.Zero, errs.NewValidationError("quantity", "line total must not exceed "+MaxAmount.StringFixed(2))
	}
	return total, nil
}

// CartTotal sums the line totals of lines.
func CartTotal(lines ...Line) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range lines {
		lt, err := LineTotal(l.Quantity, l.UnitPrice)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(lt)
	}
	if total.GreaterThan(MaxAmount) {
		return decimal.Zero, errs.NewValidationError("cart", "total must not exceed "+MaxAmount.StringFixed(2))
	}
	return total, nil
}
