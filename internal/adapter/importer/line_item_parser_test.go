package importer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"quickbuild_estimate/internal/domain/costing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestParser_MaterialsCSV(t *testing.T) {
	csvData := "Item,Unit,Price,Qty,Package\n" +
		"Copper wire,ft,\"$1,250.50\",2,Electrical\n" +
		",,,,\n" +
		"Primer,gal,35,,\n"

	items, err := NewParser().Parse(costing.ItemKindMaterial, "materials.CSV", strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items (blank row skipped), got %d", len(items))
	}
	wire := items[0]
	if wire.Description != "Copper wire" || wire.Unit != "ft" || wire.BundleName != "Electrical" || wire.Kind != costing.ItemKindMaterial {
		t.Fatalf("unexpected item: %+v", wire)
	}
	if !wire.UnitCost.Equal(decimal.RequireFromString("1250.50")) || !wire.Quantity.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("unexpected amounts: %s x %s", wire.Quantity, wire.UnitCost)
	}
	primer := items[1]
	if !primer.Quantity.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("blank quantity should default to 1, got %s", primer.Quantity)
	}
	if primer.Bundle() != costing.DefaultBundleName {
		t.Fatalf("expected default bundle, got %q", primer.Bundle())
	}
}

func TestParser_LaborCSV(t *testing.T) {
	csvData := "Task,Hours,Hourly Rate,Trade\n" +
		"Rough-in,16,85,Plumbing\n" +
		"Cleanup,4,30,\n"

	items, err := NewParser().Parse(costing.ItemKindLabor, "labor.csv", strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Kind != costing.ItemKindLabor || items[0].Unit != "hour" || !items[0].Cost().Equal(decimal.NewFromInt(1360)) {
		t.Fatalf("unexpected labor item: %+v", items[0])
	}
	if items[1].BundleName != DefaultLaborBundle {
		t.Fatalf("expected %q, got %q", DefaultLaborBundle, items[1].BundleName)
	}
}

func TestParser_Errors(t *testing.T) {
	p := NewParser()

	t.Run("negative quantity reports row", func(t *testing.T) {
		_, err := p.Parse(costing.ItemKindMaterial, "m.csv", strings.NewReader("name,cost,qty\nA,1,1\nB,2,-3\n"))
		if !errors.Is(err, costing.ErrNegativeQuantityOrCost) || !strings.Contains(err.Error(), "row 3") {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("bad number", func(t *testing.T) {
		_, err := p.Parse(costing.ItemKindMaterial, "m.csv", strings.NewReader("name,cost\nA,twelve\n"))
		if !errors.Is(err, ErrInvalidNumber) {
			t.Fatalf("expected ErrInvalidNumber, got %v", err)
		}
	})

	t.Run("missing cost column", func(t *testing.T) {
		_, err := p.Parse(costing.ItemKindMaterial, "m.csv", strings.NewReader("name,qty\nA,1\n"))
		if !errors.Is(err, ErrMissingColumn) {
			t.Fatalf("expected ErrMissingColumn, got %v", err)
		}
	})

	t.Run("header only", func(t *testing.T) {
		_, err := p.Parse(costing.ItemKindMaterial, "m.csv", strings.NewReader("name,cost\n"))
		if !errors.Is(err, ErrEmptySheet) {
			t.Fatalf("expected ErrEmptySheet, got %v", err)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := p.Parse(costing.ItemKindMaterial, "m.pdf", strings.NewReader(""))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
		}
	})
}

func TestParser_MaterialsXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Description", "Unit Cost", "Quantity", "Bundle"},
		{"Drywall sheet", "12.75", "40", "Interior Finish"},
		{"Screws", "0.05", "1000", "Interior Finish"},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	items, err := NewParser().Parse(costing.ItemKindMaterial, "materials.xlsx", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if !items[0].Cost().Equal(decimal.NewFromInt(510)) || !items[1].Cost().Equal(decimal.NewFromInt(50)) {
		t.Fatalf("unexpected costs: %s %s", items[0].Cost(), items[1].Cost())
	}
	if items[1].BundleName != "Interior Finish" {
		t.Fatalf("unexpected bundle %q", items[1].BundleName)
	}
}
