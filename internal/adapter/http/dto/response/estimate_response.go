package response

import (
	"time"

	"quickbuild_estimate/internal/domain/costing"
	"quickbuild_estimate/internal/domain/entities"
	"quickbuild_estimate/internal/usecase"

	"github.com/shopspring/decimal"
)

// Money is rendered as fixed two-decimal strings so clients never see float
// artifacts.
func money(d decimal.Decimal) string {
	return d.StringFixed(costing.CurrencyPlaces)
}

type AreaLineResponse struct {
	Room          string `json:"room,omitempty"`
	Category      string `json:"category"`
	SquareFootage string `json:"square_footage"`
	Rate          string `json:"rate"`
	Cost          string `json:"cost"`
}

type BundleResponse struct {
	Name      string `json:"name"`
	Subtotal  string `json:"subtotal"`
	Included  bool   `json:"included"`
	ItemCount int    `json:"item_count"`
}

type TotalsResponse struct {
	AreaLines         []AreaLineResponse `json:"area_lines"`
	AreaSubtotal      string             `json:"area_subtotal"`
	Bundles           []BundleResponse   `json:"bundles"`
	IncludedSubtotal  string             `json:"included_subtotal"`
	ExcludedSubtotal  string             `json:"excluded_subtotal"`
	BaseSubtotal      string             `json:"base_subtotal"`
	ProfitAmount      string             `json:"profit_amount"`
	ContingencyAmount string             `json:"contingency_amount"`
	GrandTotal        string             `json:"grand_total"`
	// Advisory is true while the estimate is a draft: the figures are a
	// preview until the next recompute commits them.
	Advisory          bool               `json:"advisory"`
}

type LineItemResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Unit        string `json:"unit,omitempty"`
	Kind        string `json:"kind"`
	UnitCost    string `json:"unit_cost"`
	Quantity    string `json:"quantity"`
	BundleName  string `json:"bundle_name"`
	Cost        string `json:"cost"`
}

type AreaResponse struct {
	Room          string `json:"room,omitempty"`
	Category      string `json:"category"`
	SquareFootage string `json:"square_footage"`
}

type RatesResponse struct {
	ProfitPercentage      string `json:"profit_percentage"`
	ContingencyPercentage string `json:"contingency_percentage"`
}

type EstimateResponse struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Status          string             `json:"status"`
	Version         int64              `json:"version"`
	Areas           []AreaResponse     `json:"areas"`
	RateTable       map[string]string  `json:"rate_table"`
	LineItems       []LineItemResponse `json:"line_items"`
	BundleInclusion map[string]bool    `json:"bundle_inclusion"`
	Rates           RatesResponse      `json:"rates"`
	Totals          TotalsResponse     `json:"totals"`
	PricedAt        *time.Time         `json:"priced_at,omitempty"`
	FinalizedAt     *time.Time         `json:"finalized_at,omitempty"`
	SupersededAt    *time.Time         `json:"superseded_at,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// EstimateSummaryResponse is one row of the estimate list. GrandTotal is the
// committed figure and is empty for estimates never priced.
type EstimateSummaryResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	GrandTotal string    `json:"grand_total,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BundleBreakdownResponse struct {
	BundleResponse
	Items []LineItemResponse `json:"items"`
}

type BreakdownResponse struct {
	EstimateID string                    `json:"estimate_id"`
	Name       string                    `json:"name"`
	Status     string                    `json:"status"`
	AreaLines  []AreaLineResponse        `json:"area_lines"`
	Bundles    []BundleBreakdownResponse `json:"bundles"`
	Totals     TotalsResponse            `json:"totals"`
}

func FromTotals(t costing.EstimateTotals, advisory bool) TotalsResponse {
	out := TotalsResponse{
		AreaLines:         fromAreaLines(t.AreaLines),
		AreaSubtotal:      money(t.AreaSubtotal),
		Bundles:           make([]BundleResponse, 0, len(t.Bundles)),
		IncludedSubtotal:  money(t.IncludedSubtotal()),
		ExcludedSubtotal:  money(t.ExcludedSubtotal()),
		BaseSubtotal:      money(t.BaseSubtotal),
		ProfitAmount:      money(t.ProfitAmount),
		ContingencyAmount: money(t.ContingencyAmount),
		GrandTotal:        money(t.GrandTotal),
		Advisory:          advisory,
	}
	for _, b := range t.Bundles {
		out.Bundles = append(out.Bundles, fromBundle(b))
	}
	return out
}

func FromEstimateResult(res usecase.EstimateResult) EstimateResponse {
	e := res.Estimate
	out := EstimateResponse{
		ID:              e.ID,
		Name:            e.Name,
		Status:          string(e.Status),
		Version:         e.Version,
		Areas:           make([]AreaResponse, 0, len(e.Areas)),
		RateTable:       make(map[string]string, len(e.RateTable)),
		LineItems:       make([]LineItemResponse, 0, len(e.LineItems)),
		BundleInclusion: make(map[string]bool, len(e.BundleInclusion)),
		Rates: RatesResponse{
			ProfitPercentage:      e.Rates.ProfitPercentage.String(),
			ContingencyPercentage: e.Rates.ContingencyPercentage.String(),
		},
		Totals:       FromTotals(res.Totals, res.Advisory),
		PricedAt:     e.PricedAt,
		FinalizedAt:  e.FinalizedAt,
		SupersededAt: e.SupersededAt,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	for _, a := range e.Areas {
		out.Areas = append(out.Areas, AreaResponse{Room: a.Room, Category: string(a.Category), SquareFootage: a.SquareFootage.String()})
	}
	for c, r := range e.RateTable {
		out.RateTable[string(c)] = money(r)
	}
	for _, it := range e.LineItems {
		out.LineItems = append(out.LineItems, fromLineItem(it))
	}
	for _, b := range e.BundleNames() {
		out.BundleInclusion[b] = e.BundleInclusion.Included(b)
	}
	return out
}

func FromEstimateSummary(e entities.Estimate) EstimateSummaryResponse {
	out := EstimateSummaryResponse{
		ID:        e.ID,
		Name:      e.Name,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.Totals != nil {
		out.GrandTotal = money(e.Totals.GrandTotal)
	}
	return out
}

func FromBreakdown(b usecase.Breakdown) BreakdownResponse {
	out := BreakdownResponse{
		EstimateID: b.Estimate.ID,
		Name:       b.Estimate.Name,
		Status:     string(b.Estimate.Status),
		AreaLines:  fromAreaLines(b.Totals.AreaLines),
		Bundles:    make([]BundleBreakdownResponse, 0, len(b.Bundles)),
		Totals:     FromTotals(b.Totals, b.Advisory),
	}
	for _, bb := range b.Bundles {
		items := make([]LineItemResponse, 0, len(bb.Items))
		for _, it := range bb.Items {
			items = append(items, fromLineItem(it.LineItem))
		}
		out.Bundles = append(out.Bundles, BundleBreakdownResponse{BundleResponse: fromBundle(bb.BundleTotal), Items: items})
	}
	return out
}

func fromAreaLines(lines []costing.AreaCostLine) []AreaLineResponse {
	out := make([]AreaLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, AreaLineResponse{
			Room:          l.Room,
			Category:      string(l.Category),
			SquareFootage: l.SquareFootage.String(),
			Rate:          money(l.Rate),
			Cost:          money(l.Cost),
		})
	}
	return out
}

func fromBundle(b costing.BundleTotal) BundleResponse {
	return BundleResponse{Name: b.Name, Subtotal: money(b.Subtotal), Included: b.Included, ItemCount: b.ItemCount}
}

func fromLineItem(it costing.LineItem) LineItemResponse {
	kind := string(it.Kind)
	if kind == "" {
		kind = string(costing.ItemKindMaterial)
	}
	return LineItemResponse{
		ID:          it.ID,
		Description: it.Description,
		Unit:        it.Unit,
		Kind:        kind,
		UnitCost:    money(it.UnitCost),
		Quantity:    it.Quantity.String(),
		BundleName:  it.Bundle(),
		Cost:        money(it.Cost()),
	}
}
