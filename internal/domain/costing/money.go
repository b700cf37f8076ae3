package costing

import "github.com/shopspring/decimal"

// CurrencyPlaces is the number of decimal places kept on any produced amount.
const CurrencyPlaces = 2

var hundred = decimal.NewFromInt(100)

// RoundCurrency rounds an amount to cents, half away from zero.
//
// Every amount produced by the engine goes through this function exactly once:
// area lines, item lines, profit and contingency. Sums of rounded amounts are
// never rounded again.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyPlaces)
}

// percentOf returns base * pct / 100 rounded to cents.
func percentOf(base, pct decimal.Decimal) decimal.Decimal {
	return RoundCurrency(base.Mul(pct).Div(hundred))
}

func sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
