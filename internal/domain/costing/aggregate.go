package costing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Aggregation is the result of grouping line items into bundles.
type Aggregation struct {
	Bundles      []BundleTotal
	BaseSubtotal decimal.Decimal
}

// Subtotals returns bundle name -> subtotal for every bundle, included or not.
func (a Aggregation) Subtotals() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(a.Bundles))
	for _, b := range a.Bundles {
		out[b.Name] = b.Subtotal
	}
	return out
}

// Aggregate groups items by bundle and adds the included bundles to the area
// subtotal. Excluded bundles keep their subtotal for display but add nothing
// to the base. Bundles are listed in order of first appearance.
func Aggregate(areaSubtotal decimal.Decimal, items []LineItem, inclusion BundleInclusion) (Aggregation, error) {
	if err := ValidateLineItems(items); err != nil {
		return Aggregation{}, err
	}

	index := make(map[string]int)
	var bundles []BundleTotal
	for _, it := range items {
		name := it.Bundle()
		i, ok := index[name]
		if !ok {
			i = len(bundles)
			index[name] = i
			bundles = append(bundles, BundleTotal{
				Name:     name,
				Subtotal: decimal.Zero,
				Included: inclusion.Included(name),
			})
		}
		bundles[i].Subtotal = bundles[i].Subtotal.Add(it.Cost())
		bundles[i].ItemCount++
	}

	base := areaSubtotal
	for _, b := range bundles {
		if b.Included {
			base = base.Add(b.Subtotal)
		}
	}
	return Aggregation{Bundles: bundles, BaseSubtotal: base}, nil
}

// ValidateLineItems rejects items with a negative quantity or unit cost.
func ValidateLineItems(items []LineItem) error {
	for i, it := range items {
		if it.Quantity.IsNegative() || it.UnitCost.IsNegative() {
			ref := it.ID
			if ref == "" {
				ref = fmt.Sprintf("#%d", i)
			}
			return fmt.Errorf("%w: item %s (quantity=%s, unit_cost=%s)",
				ErrNegativeQuantityOrCost, ref, it.Quantity, it.UnitCost)
		}
	}
	return nil
}
