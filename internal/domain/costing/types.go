// Package costing prices an estimate from area measurements, unit-priced line
// items, bundle toggles and adjustment rates.
//
// Every function in this package is pure: no I/O, no logging, no shared
// state. Callers pass a Snapshot and get back EstimateTotals or an error; a
// failed computation never yields partial totals.
package costing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryInterior Category = "interior"
	CategoryExterior Category = "exterior"
	CategoryUtility  Category = "utility"
	CategoryOther    Category = "other"
)

// Categories lists the known area categories in display order.
func Categories() []Category {
	return []Category{CategoryInterior, CategoryExterior, CategoryUtility, CategoryOther}
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CategoryInterior, CategoryExterior, CategoryUtility, CategoryOther:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// AreaRecord is one measured area taken from a blueprint.
type AreaRecord struct {
	Room          string          `json:"room,omitempty"`
	Category      Category        `json:"category"`
	SquareFootage decimal.Decimal `json:"square_footage"`
}

// RateTable maps each category to its price per square foot.
type RateTable map[Category]decimal.Decimal

// Clone returns an independent copy of the table.
func (t RateTable) Clone() RateTable {
	out := make(RateTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Merge returns a copy of t with overrides applied on top.
func (t RateTable) Merge(overrides RateTable) RateTable {
	out := t.Clone()
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

type AreaCostLine struct {
	Room          string          `json:"room,omitempty"`
	Category      Category        `json:"category"`
	SquareFootage decimal.Decimal `json:"square_footage"`
	Rate          decimal.Decimal `json:"rate"`
	Cost          decimal.Decimal `json:"cost"`
}

type ItemKind string

const (
	ItemKindMaterial ItemKind = "material"
	ItemKindLabor    ItemKind = "labor"
)

// DefaultBundleName is assigned to items imported without a bundle.
const DefaultBundleName = "Miscellaneous"

type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Unit        string          `json:"unit,omitempty"`
	Kind        ItemKind        `json:"kind,omitempty"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Quantity    decimal.Decimal `json:"quantity"`
	BundleName  string          `json:"bundle_name"`
}

// Bundle returns the normalized bundle name of the item.
func (li LineItem) Bundle() string {
	if name := strings.TrimSpace(li.BundleName); name != "" {
		return name
	}
	return DefaultBundleName
}

// Cost is quantity x unit cost rounded to cents.
func (li LineItem) Cost() decimal.Decimal {
	return RoundCurrency(li.Quantity.Mul(li.UnitCost))
}

// BundleInclusion records which bundles count toward the base subtotal.
// A bundle with no entry is included.
type BundleInclusion map[string]bool

func (b BundleInclusion) Included(bundle string) bool {
	included, ok := b[bundle]
	return !ok || included
}

func (b BundleInclusion) Clone() BundleInclusion {
	out := make(BundleInclusion, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

type BundleTotal struct {
	Name      string          `json:"name"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Included  bool            `json:"included"`
	ItemCount int             `json:"item_count"`
}

type AdjustmentRates struct {
	ProfitPercentage      decimal.Decimal `json:"profit_percentage"`
	ContingencyPercentage decimal.Decimal `json:"contingency_percentage"`
}

type Composition struct {
	ProfitAmount      decimal.Decimal `json:"profit_amount"`
	ContingencyAmount decimal.Decimal `json:"contingency_amount"`
	GrandTotal        decimal.Decimal `json:"grand_total"`
}

// Snapshot is the subset of an estimate the engine prices.
type Snapshot struct {
	Areas           []AreaRecord
	RateTable       RateTable
	LineItems       []LineItem
	BundleInclusion BundleInclusion
	Rates           AdjustmentRates
}
