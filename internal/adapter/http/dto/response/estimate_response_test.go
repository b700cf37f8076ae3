package response

import (
	"testing"
	"time"

	"quickbuild_estimate/internal/domain/costing"
	"quickbuild_estimate/internal/domain/entities"
	"quickbuild_estimate/internal/usecase"

	"github.com/shopspring/decimal"
)

func sampleEstimate(t *testing.T) (entities.Estimate, costing.EstimateTotals) {
	t.Helper()
	e := entities.Estimate{
		ID:      "est-1",
		Name:    "Lakeside House",
		Status:  entities.EstimateStatusDraft,
		Version: 4,
		Areas: []costing.AreaRecord{
			{Room: "Deck", Category: costing.CategoryExterior, SquareFootage: decimal.RequireFromString("120.5")},
		},
		RateTable: costing.RateTable{
			costing.CategoryInterior: decimal.NewFromInt(150),
			costing.CategoryExterior: decimal.NewFromInt(80),
			costing.CategoryUtility:  decimal.NewFromInt(25),
			costing.CategoryOther:    decimal.NewFromInt(20),
		},
		LineItems: []costing.LineItem{
			{ID: "i1", Description: "Boards", Quantity: decimal.NewFromInt(3), UnitCost: decimal.RequireFromString("19.999")},
			{ID: "i2", Description: "Stain", Kind: costing.ItemKindMaterial, BundleName: "Finish", Quantity: decimal.NewFromInt(1), UnitCost: decimal.NewFromInt(40)},
		},
		BundleInclusion: costing.BundleInclusion{"Finish": false},
		Rates:           costing.AdjustmentRates{ProfitPercentage: decimal.NewFromInt(15), ContingencyPercentage: decimal.NewFromInt(10)},
		CreatedAt:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	totals, err := costing.Recompute(e.Snapshot())
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	return e, totals
}

func TestFromEstimateResult(t *testing.T) {
	e, totals := sampleEstimate(t)
	out := FromEstimateResult(usecase.EstimateResult{Estimate: e, Totals: totals, Advisory: true})

	if out.ID != "est-1" || out.Status != "draft" || out.Version != 4 {
		t.Fatalf("unexpected header fields: %+v", out)
	}
	if out.RateTable["exterior"] != "80.00" {
		t.Fatalf("unexpected rate table: %+v", out.RateTable)
	}
	if out.Rates.ProfitPercentage != "15" {
		t.Fatalf("unexpected rates: %+v", out.Rates)
	}
	if out.LineItems[0].BundleName != costing.DefaultBundleName || out.LineItems[0].Kind != "material" || out.LineItems[0].Cost != "60.00" {
		t.Fatalf("unexpected first item: %+v", out.LineItems[0])
	}
	if out.BundleInclusion[costing.DefaultBundleName] != true || out.BundleInclusion["Finish"] != false {
		t.Fatalf("unexpected inclusion: %+v", out.BundleInclusion)
	}
	// 120.5 * 80 = 9640; + 60 = 9700; profit 1455; contingency 1115.50.
	if out.Totals.BaseSubtotal != "9700.00" || out.Totals.GrandTotal != "12270.50" || !out.Totals.Advisory {
		t.Fatalf("unexpected totals: %+v", out.Totals)
	}
	if out.Totals.ExcludedSubtotal != "40.00" || out.Totals.AreaLines[0].Cost != "9640.00" {
		t.Fatalf("unexpected subtotals: %+v", out.Totals)
	}
}

func TestFromEstimateSummary(t *testing.T) {
	e, totals := sampleEstimate(t)
	if got := FromEstimateSummary(e); got.GrandTotal != "" {
		t.Fatalf("draft without committed totals should have no grand total, got %q", got.GrandTotal)
	}
	e.Totals = &totals
	if got := FromEstimateSummary(e); got.GrandTotal != "12270.50" {
		t.Fatalf("unexpected grand total %q", got.GrandTotal)
	}
}

func TestFromPayment(t *testing.T) {
	out := FromPayment(entities.Payment{ID: "p1", EstimateID: "est-1", Amount: decimal.RequireFromString("1227.05"), Status: entities.PaymentStatusPending})
	if out.Amount != "1227.05" || out.Status != "pending" {
		t.Fatalf("unexpected payment: %+v", out)
	}
}
