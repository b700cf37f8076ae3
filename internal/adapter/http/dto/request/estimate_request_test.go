package request

import (
	"encoding/json"
	"errors"
	"testing"

	"quickbuild_estimate/internal/domain/costing"

	"github.com/shopspring/decimal"
)

func TestCreateEstimateRequest_ToCommand(t *testing.T) {
	body := `{
		"name": "Lakeside House",
		"areas": [{"room": " Kitchen ", "category": "Interior", "square_footage": "412.5"}],
		"line_items": [
			{"description": "Panel", "unit_cost": 5000, "quantity": 1, "bundle_name": " Electrical "},
			{"description": "Framing", "kind": "LABOR", "unit_cost": "45.50", "quantity": "8"}
		],
		"rates": {"profit_percentage": 10, "contingency_percentage": "5"},
		"rate_table": {"exterior": "18.5"}
	}`
	var r CreateEstimateRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	cmd, err := r.ToCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cmd.Areas) != 1 || cmd.Areas[0].Category != costing.CategoryInterior || cmd.Areas[0].Room != "Kitchen" {
		t.Fatalf("unexpected areas: %+v", cmd.Areas)
	}
	if !cmd.Areas[0].SquareFootage.Equal(decimal.RequireFromString("412.5")) {
		t.Fatalf("unexpected footage %s", cmd.Areas[0].SquareFootage)
	}
	if cmd.LineItems[0].BundleName != "Electrical" || cmd.LineItems[0].Kind != costing.ItemKindMaterial {
		t.Fatalf("unexpected first item: %+v", cmd.LineItems[0])
	}
	if cmd.LineItems[1].Kind != costing.ItemKindLabor || !cmd.LineItems[1].UnitCost.Equal(decimal.RequireFromString("45.5")) {
		t.Fatalf("unexpected second item: %+v", cmd.LineItems[1])
	}
	if cmd.Rates == nil || !cmd.Rates.ProfitPercentage.Equal(decimal.NewFromInt(10)) || !cmd.Rates.ContingencyPercentage.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("unexpected rates: %+v", cmd.Rates)
	}
	if !cmd.RateOverrides[costing.CategoryExterior].Equal(decimal.RequireFromString("18.5")) {
		t.Fatalf("unexpected overrides: %+v", cmd.RateOverrides)
	}
}

func TestCreateEstimateRequest_UnknownCategory(t *testing.T) {
	r := CreateEstimateRequest{Name: "x", Areas: []AreaRequest{{Category: "garage"}}}
	if _, err := r.ToCommand(); !errors.Is(err, costing.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}

	r = CreateEstimateRequest{Name: "x", RateTable: map[string]decimal.Decimal{"attic": decimal.NewFromInt(1)}}
	if _, err := r.ToCommand(); !errors.Is(err, costing.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory for rate table, got %v", err)
	}
}

func TestCreateEstimateRequest_DefaultsWhenOmitted(t *testing.T) {
	cmd, err := CreateEstimateRequest{Name: "x"}.ToCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Rates != nil || cmd.RateOverrides != nil {
		t.Fatalf("expected no overrides, got %+v", cmd)
	}
}
