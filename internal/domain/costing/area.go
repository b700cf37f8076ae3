package costing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ResolveAreas prices every area record against the rate table.
//
// The table must carry a rate for each category present in records; there is
// no fallback rate. Lines come back in input order.
func ResolveAreas(records []AreaRecord, table RateTable) ([]AreaCostLine, error) {
	lines := make([]AreaCostLine, 0, len(records))
	for i, rec := range records {
		if rec.SquareFootage.IsNegative() {
			return nil, fmt.Errorf("%w: area %d (%s)", ErrNegativeArea, i, rec.SquareFootage)
		}
		rate, ok := table[rec.Category]
		if !ok {
			return nil, fmt.Errorf("%w: no rate configured for %q", ErrUnknownCategory, rec.Category)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("%w: rate for %q must be positive", ErrInvalidRateTable, rec.Category)
		}
		lines = append(lines, AreaCostLine{
			Room:          rec.Room,
			Category:      rec.Category,
			SquareFootage: rec.SquareFootage,
			Rate:          rate,
			Cost:          RoundCurrency(rec.SquareFootage.Mul(rate)),
		})
	}
	return lines, nil
}

// AreaSubtotal is the exact sum of the already rounded line costs.
func AreaSubtotal(lines []AreaCostLine) decimal.Decimal {
	costs := make([]decimal.Decimal, len(lines))
	for i, l := range lines {
		costs[i] = l.Cost
	}
	return sum(costs)
}

// ValidateRateTable checks that every known category has a positive rate.
func ValidateRateTable(table RateTable) error {
	for _, c := range Categories() {
		rate, ok := table[c]
		if !ok {
			return fmt.Errorf("%w: no rate configured for %q", ErrUnknownCategory, c)
		}
		if !rate.IsPositive() {
			return fmt.Errorf("%w: rate for %q must be positive", ErrInvalidRateTable, c)
		}
	}
	return nil
}

// ValidateAreas checks categories and footage at ingestion time.
func ValidateAreas(records []AreaRecord) error {
	for i, rec := range records {
		if _, err := ParseCategory(string(rec.Category)); err != nil {
			return fmt.Errorf("area %d: %w", i, err)
		}
		if rec.SquareFootage.IsNegative() {
			return fmt.Errorf("%w: area %d (%s)", ErrNegativeArea, i, rec.SquareFootage)
		}
	}
	return nil
}
