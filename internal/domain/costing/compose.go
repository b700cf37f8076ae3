package costing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Compose layers profit and contingency on top of the base subtotal.
// Contingency is taken on base + profit, not on the base alone.
func Compose(base decimal.Decimal, rates AdjustmentRates) (Composition, error) {
	if err := ValidateRates(rates); err != nil {
		return Composition{}, err
	}
	profit := percentOf(base, rates.ProfitPercentage)
	contingency := percentOf(base.Add(profit), rates.ContingencyPercentage)
	return Composition{
		ProfitAmount:      profit,
		ContingencyAmount: contingency,
		GrandTotal:        base.Add(profit).Add(contingency),
	}, nil
}

// ValidateRates rejects negative percentages. There is no upper bound here.
func ValidateRates(rates AdjustmentRates) error {
	if rates.ProfitPercentage.IsNegative() {
		return fmt.Errorf("%w: profit_percentage=%s", ErrInvalidRate, rates.ProfitPercentage)
	}
	if rates.ContingencyPercentage.IsNegative() {
		return fmt.Errorf("%w: contingency_percentage=%s", ErrInvalidRate, rates.ContingencyPercentage)
	}
	return nil
}
