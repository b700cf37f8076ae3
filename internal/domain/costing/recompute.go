package costing

import "github.com/shopspring/decimal"

// EstimateTotals is the full priced result of a snapshot.
type EstimateTotals struct {
	AreaLines         []AreaCostLine             `json:"area_lines"`
	AreaSubtotal      decimal.Decimal            `json:"area_subtotal"`
	Bundles           []BundleTotal              `json:"bundles"`
	BundleSubtotals   map[string]decimal.Decimal `json:"bundle_subtotals"`
	BaseSubtotal      decimal.Decimal            `json:"base_subtotal"`
	ProfitAmount      decimal.Decimal            `json:"profit_amount"`
	ContingencyAmount decimal.Decimal            `json:"contingency_amount"`
	GrandTotal        decimal.Decimal            `json:"grand_total"`
}

// Recompute prices a snapshot from scratch: areas, then bundles, then
// adjustment rates. Any failure discards the whole computation.
func Recompute(s Snapshot) (EstimateTotals, error) {
	lines, err := ResolveAreas(s.Areas, s.RateTable)
	if err != nil {
		return EstimateTotals{}, err
	}
	areaSubtotal := AreaSubtotal(lines)

	agg, err := Aggregate(areaSubtotal, s.LineItems, s.BundleInclusion)
	if err != nil {
		return EstimateTotals{}, err
	}

	comp, err := Compose(agg.BaseSubtotal, s.Rates)
	if err != nil {
		return EstimateTotals{}, err
	}

	return EstimateTotals{
		AreaLines:         lines,
		AreaSubtotal:      areaSubtotal,
		Bundles:           agg.Bundles,
		BundleSubtotals:   agg.Subtotals(),
		BaseSubtotal:      agg.BaseSubtotal,
		ProfitAmount:      comp.ProfitAmount,
		ContingencyAmount: comp.ContingencyAmount,
		GrandTotal:        comp.GrandTotal,
	}, nil
}

// IncludedSubtotal sums the subtotals of included bundles.
func (t EstimateTotals) IncludedSubtotal() decimal.Decimal {
	total := decimal.Zero
	for _, b := range t.Bundles {
		if b.Included {
			total = total.Add(b.Subtotal)
		}
	}
	return total
}

// ExcludedSubtotal sums the subtotals of bundles left out of the base.
func (t EstimateTotals) ExcludedSubtotal() decimal.Decimal {
	total := decimal.Zero
	for _, b := range t.Bundles {
		if !b.Included {
			total = total.Add(b.Subtotal)
		}
	}
	return total
}

// Reconciles reports whether the stored amounts agree with each other:
// area + included bundles = base, and base + profit + contingency = grand.
func (t EstimateTotals) Reconciles() bool {
	if !t.AreaSubtotal.Add(t.IncludedSubtotal()).Equal(t.BaseSubtotal) {
		return false
	}
	return t.BaseSubtotal.Add(t.ProfitAmount).Add(t.ContingencyAmount).Equal(t.GrandTotal)
}
