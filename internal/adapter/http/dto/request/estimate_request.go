package request

import (
	"strings"

	"quickbuild_estimate/internal/domain/costing"
	"quickbuild_estimate/internal/usecase"

	"github.com/shopspring/decimal"
)

// Amounts accept JSON numbers or strings ("1250.50"); both decode exactly.

type AreaRequest struct {
	Room          string          `json:"room"`
	Category      string          `json:"category" binding:"required"`
	SquareFootage decimal.Decimal `json:"square_footage"`
}

type LineItemRequest struct {
	ID          string          `json:"id"`
	Description string          `json:"description" binding:"required"`
	Unit        string          `json:"unit"`
	Kind        string          `json:"kind"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Quantity    decimal.Decimal `json:"quantity"`
	BundleName  string          `json:"bundle_name"`
}

type RatesRequest struct {
	ProfitPercentage      *decimal.Decimal `json:"profit_percentage" binding:"required"`
	ContingencyPercentage *decimal.Decimal `json:"contingency_percentage" binding:"required"`
}

// CreateEstimateRequest carries the structured takeoff: areas from the
// blueprint step and items from the materials and labor sheets. Rates and
// rate_table are optional overrides of the configured defaults.
type CreateEstimateRequest struct {
	Name      string                     `json:"name" binding:"required"`
	Areas     []AreaRequest              `json:"areas"`
	LineItems []LineItemRequest          `json:"line_items"`
	Rates     *RatesRequest              `json:"rates"`
	RateTable map[string]decimal.Decimal `json:"rate_table"`
}

type BundleInclusionRequest struct {
	Included *bool `json:"included" binding:"required"`
}

type LineItemsRequest struct {
	Items []LineItemRequest `json:"items"`
}

type AreasRequest struct {
	Areas []AreaRequest `json:"areas"`
}

type RateTableRequest struct {
	Rates map[string]decimal.Decimal `json:"rates" binding:"required"`
}

func (r CreateEstimateRequest) ToCommand() (usecase.CreateEstimateCommand, error) {
	areas, err := ToAreas(r.Areas)
	if err != nil {
		return usecase.CreateEstimateCommand{}, err
	}
	overrides, err := toRateTable(r.RateTable)
	if err != nil {
		return usecase.CreateEstimateCommand{}, err
	}
	cmd := usecase.CreateEstimateCommand{
		Name:          r.Name,
		Areas:         areas,
		LineItems:     ToLineItems(r.LineItems),
		RateOverrides: overrides,
	}
	if r.Rates != nil {
		rates := r.Rates.ToRates()
		cmd.Rates = &rates
	}
	return cmd, nil
}

func (r RatesRequest) ToRates() costing.AdjustmentRates {
	var rates costing.AdjustmentRates
	if r.ProfitPercentage != nil {
		rates.ProfitPercentage = *r.ProfitPercentage
	}
	if r.ContingencyPercentage != nil {
		rates.ContingencyPercentage = *r.ContingencyPercentage
	}
	return rates
}

func (r RateTableRequest) ToRateTable() (costing.RateTable, error) {
	return toRateTable(r.Rates)
}

func (r AreasRequest) ToAreas() ([]costing.AreaRecord, error) {
	return ToAreas(r.Areas)
}

func ToAreas(in []AreaRequest) ([]costing.AreaRecord, error) {
	areas := make([]costing.AreaRecord, 0, len(in))
	for _, a := range in {
		c, err := costing.ParseCategory(a.Category)
		if err != nil {
			return nil, err
		}
		areas = append(areas, costing.AreaRecord{Room: strings.TrimSpace(a.Room), Category: c, SquareFootage: a.SquareFootage})
	}
	return areas, nil
}

func ToLineItems(items []LineItemRequest) []costing.LineItem {
	out := make([]costing.LineItem, 0, len(items))
	for _, it := range items {
		kind := costing.ItemKind(strings.ToLower(strings.TrimSpace(it.Kind)))
		if kind != costing.ItemKindLabor {
			kind = costing.ItemKindMaterial
		}
		out = append(out, costing.LineItem{
			ID:          strings.TrimSpace(it.ID),
			Description: strings.TrimSpace(it.Description),
			Unit:        strings.TrimSpace(it.Unit),
			Kind:        kind,
			UnitCost:    it.UnitCost,
			Quantity:    it.Quantity,
			BundleName:  strings.TrimSpace(it.BundleName),
		})
	}
	return out
}

func toRateTable(in map[string]decimal.Decimal) (costing.RateTable, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(costing.RateTable, len(in))
	for k, v := range in {
		c, err := costing.ParseCategory(k)
		if err != nil {
			return nil, err
		}
		out[c] = v
	}
	return out, nil
}
