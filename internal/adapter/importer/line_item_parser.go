// Package importer reads materials and labor sheets (CSV or XLSX) into
// costing line items.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"quickbuild_estimate/internal/domain/costing"
	"quickbuild_estimate/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// DefaultLaborBundle groups labor rows that carry no category.
const DefaultLaborBundle = "General Labor"

var (
	ErrUnsupportedFormat = errors.New("unsupported file format: must be .csv or .xlsx")
	ErrEmptySheet        = errors.New("file must contain a header row and at least one data row")
	ErrMissingColumn     = errors.New("missing required column")
	ErrInvalidNumber     = errors.New("invalid number")
	ErrUnreadableFile    = errors.New("unreadable file")
)

type field string

const (
	fieldName     field = "name"
	fieldUnit     field = "unit"
	fieldUnitCost field = "unit_cost"
	fieldQuantity field = "quantity"
	fieldBundle   field = "bundle"
)

// Header aliases per sheet kind. Labor hours land in quantity and the hourly
// rate in unit cost.
var materialHeaders = map[string]field{
	"name": fieldName, "item": fieldName, "description": fieldName,
	"unit": fieldUnit,
	"unit_cost": fieldUnitCost, "unit cost": fieldUnitCost, "price": fieldUnitCost, "cost": fieldUnitCost,
	"quantity": fieldQuantity, "qty": fieldQuantity,
	"bundle": fieldBundle, "package": fieldBundle, "group": fieldBundle,
}

var laborHeaders = map[string]field{
	"task": fieldName, "name": fieldName, "description": fieldName,
	"hours": fieldQuantity, "qty": fieldQuantity, "quantity": fieldQuantity,
	"hourly_rate": fieldUnitCost, "rate": fieldUnitCost, "hourly rate": fieldUnitCost,
	"category": fieldBundle, "bundle": fieldBundle, "trade": fieldBundle,
}

// Parser implements interfaces.ILineItemParser.
type Parser struct{}

var _ interfaces.ILineItemParser = (*Parser)(nil)

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(kind costing.ItemKind, fileName string, r io.Reader) ([]costing.LineItem, error) {
	if kind == "" {
		kind = costing.ItemKindMaterial
	}

	var headers []string
	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		headers, rows, err = readCSV(r)
	case ".xlsx":
		headers, rows, err = readExcel(r)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}

	aliases := materialHeaders
	if kind == costing.ItemKindLabor {
		aliases = laborHeaders
	}
	columns := mapHeaders(headers, aliases)
	for _, required := range []field{fieldName, fieldUnitCost} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	items := make([]costing.LineItem, 0, len(rows))
	for i, row := range rows {
		rowNum := i + 2 // 1-indexed, plus header
		if blankRow(row) {
			continue
		}
		item, err := parseRow(kind, columns, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		items = append(items, item)
	}
	log.Printf("[import][parser] parsed file=%s kind=%s rows=%d items=%d", fileName, kind, len(rows), len(items))
	return items, nil
}

func readCSV(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to parse CSV: %v", ErrUnreadableFile, err)
	}
	if len(all) < 2 {
		return nil, nil, ErrEmptySheet
	}
	return all[0], all[1:], nil
}

// readExcel reads the first sheet of the workbook.
func readExcel(r io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to open Excel file: %v", ErrUnreadableFile, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to read sheet: %v", ErrUnreadableFile, err)
	}
	if len(rows) < 2 {
		return nil, nil, ErrEmptySheet
	}
	return rows[0], rows[1:], nil
}

// mapHeaders returns the column index of each recognized field. The first
// matching column wins; unrecognized columns are ignored.
func mapHeaders(headers []string, aliases map[string]field) map[field]int {
	columns := make(map[field]int)
	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		f, ok := aliases[norm]
		if !ok {
			continue
		}
		if _, seen := columns[f]; !seen {
			columns[f] = i
		}
	}
	return columns
}

func parseRow(kind costing.ItemKind, columns map[field]int, row []string) (costing.LineItem, error) {
	cell := func(f field) string {
		i, ok := columns[f]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	unitCost, err := parseAmount(cell(fieldUnitCost), false)
	if err != nil {
		return costing.LineItem{}, fmt.Errorf("%s: %w", fieldUnitCost, err)
	}
	quantity, err := parseAmount(cell(fieldQuantity), true)
	if err != nil {
		return costing.LineItem{}, fmt.Errorf("%s: %w", fieldQuantity, err)
	}
	if unitCost.IsNegative() || quantity.IsNegative() {
		return costing.LineItem{}, costing.ErrNegativeQuantityOrCost
	}

	item := costing.LineItem{
		Description: cell(fieldName),
		Unit:        cell(fieldUnit),
		Kind:        kind,
		UnitCost:    unitCost,
		Quantity:    quantity,
		BundleName:  cell(fieldBundle),
	}
	if kind == costing.ItemKindLabor {
		item.Unit = "hour"
		if item.BundleName == "" {
			item.BundleName = DefaultLaborBundle
		}
	}
	return item, nil
}

// parseAmount accepts plain numbers as well as "$1,250.00". A blank quantity
// counts as one unit.
func parseAmount(s string, blankIsOne bool) (decimal.Decimal, error) {
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if s == "" {
		if blankIsOne {
			return decimal.NewFromInt(1), nil
		}
		return decimal.Decimal{}, fmt.Errorf("%w: empty value", ErrInvalidNumber)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return d, nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
