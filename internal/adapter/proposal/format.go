package proposal

import (
	"strings"

	"quickbuild_estimate/internal/domain/costing"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount as US dollars, e.g. "$1,234.56".
func FormatCurrency(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	raw := costing.RoundCurrency(amount.Abs()).StringFixed(costing.CurrencyPlaces)

	parts := strings.SplitN(raw, ".", 2)
	result := "$" + groupThousands(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// FormatQuantity drops trailing zeros: 2.50 -> "2.5", 3.00 -> "3".
func FormatQuantity(q decimal.Decimal) string {
	return q.String()
}

// FormatPercent renders a percentage like "15%" or "7.5%".
func FormatPercent(p decimal.Decimal) string {
	return p.String() + "%"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
