// Package proposal renders priced estimates as PDF proposals and archives
// them in object storage.
package proposal

import (
	"fmt"
	"log"
	"time"

	"quickbuild_estimate/internal/domain/costing"
	"quickbuild_estimate/internal/domain/entities"
	"quickbuild_estimate/internal/usecase/interfaces"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
)

var (
	grey      = &props.Color{Red: 100, Green: 100, Blue: 100}
	dark      = &props.Color{Red: 33, Green: 37, Blue: 41}
	white     = &props.Color{Red: 255, Green: 255, Blue: 255}
	altBg     = &props.Color{Red: 248, Green: 249, Blue: 250}
	summaryBg = &props.Color{Red: 245, Green: 245, Blue: 245}
)

// PDFRenderer implements interfaces.IProposalRenderer with maroto.
type PDFRenderer struct {
	companyName string
	now         func() time.Time
}

var _ interfaces.IProposalRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer(companyName string) *PDFRenderer {
	if companyName == "" {
		companyName = "QuickBuild Estimating"
	}
	return &PDFRenderer{companyName: companyName, now: time.Now}
}

// Render lays out the header, area pricing, bundles and the cost summary.
// Excluded bundles are listed as options and do not count toward the total.
func (r *PDFRenderer) Render(e entities.Estimate, totals costing.EstimateTotals) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.Letter).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	r.addHeader(m, e)
	addAreaTable(m, totals)
	addBundles(m, e, totals)
	addSummary(m, e, totals)

	doc, err := m.Generate()
	if err != nil {
		log.Printf("[proposal][pdf] generate failed estimate_id=%s err=%v", e.ID, err)
		return nil, fmt.Errorf("failed to generate proposal PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func (r *PDFRenderer) addHeader(m core.Maroto, e entities.Estimate) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(text.New(r.companyName, props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Left})),
			col.New(6).Add(text.New("CONSTRUCTION PROPOSAL", props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Right, Color: dark})),
		),
		row.New(7).Add(
			col.New(6).Add(text.New(e.Name, props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left})),
			col.New(6).Add(text.New(fmt.Sprintf("Date: %s", r.now().UTC().Format("January 2, 2006")), props.Text{Size: 8, Align: align.Right, Color: grey})),
		),
		row.New(6).Add(
			col.New(6).Add(text.New(fmt.Sprintf("Estimate %s (rev. %d)", e.ID, e.Version), props.Text{Size: 7, Align: align.Left, Color: grey})),
			col.New(6).Add(text.New(fmt.Sprintf("Status: %s", e.Status), props.Text{Size: 8, Align: align.Right, Color: grey})),
		),
	)
	m.AddRows(row.New(4))
}

func sectionTitle(m core.Maroto, title string) {
	m.AddRows(row.New(8).Add(
		col.New(12).Add(text.New(title, props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left, Color: grey})),
	))
}

func tableHeader(m core.Maroto, labels []string, sizes []int) {
	headerText := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Center, Color: white}
	headerCell := &props.Cell{BackgroundColor: dark}
	cols := make([]core.Col, len(labels))
	for i, l := range labels {
		cols[i] = col.New(sizes[i]).Add(text.New(l, headerText)).WithStyle(headerCell)
	}
	m.AddRows(row.New(7).Add(cols...))
}

func addAreaTable(m core.Maroto, totals costing.EstimateTotals) {
	if len(totals.AreaLines) == 0 {
		return
	}
	sectionTitle(m, "AREA PRICING")
	sizes := []int{4, 2, 2, 2, 2}
	tableHeader(m, []string{"Room", "Category", "Sq Ft", "Rate / Sq Ft", "Cost"}, sizes)

	left := props.Text{Size: 7, Align: align.Left}
	right := props.Text{Size: 7, Align: align.Right}
	for i, l := range totals.AreaLines {
		room := l.Room
		if room == "" {
			room = "-"
		}
		cols := []core.Col{
			col.New(sizes[0]).Add(text.New(room, left)),
			col.New(sizes[1]).Add(text.New(string(l.Category), left)),
			col.New(sizes[2]).Add(text.New(FormatQuantity(l.SquareFootage), right)),
			col.New(sizes[3]).Add(text.New(FormatCurrency(l.Rate), right)),
			col.New(sizes[4]).Add(text.New(FormatCurrency(l.Cost), right)),
		}
		striped(cols, i)
		m.AddRows(row.New(6).Add(cols...))
	}
	subtotalRow(m, "Area subtotal", totals.AreaSubtotal)
}

func addBundles(m core.Maroto, e entities.Estimate, totals costing.EstimateTotals) {
	if len(totals.Bundles) == 0 {
		return
	}
	byBundle := make(map[string][]costing.LineItem)
	for _, it := range e.LineItems {
		byBundle[it.Bundle()] = append(byBundle[it.Bundle()], it)
	}

	sizes := []int{5, 1, 2, 2, 2}
	left := props.Text{Size: 7, Align: align.Left}
	right := props.Text{Size: 7, Align: align.Right}

	sectionTitle(m, "INCLUDED SCOPE")
	for _, b := range totals.Bundles {
		if !b.Included {
			continue
		}
		m.AddRows(row.New(7).Add(
			col.New(12).Add(text.New(b.Name, props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left})),
		))
		tableHeader(m, []string{"Item", "Unit", "Qty", "Unit Cost", "Cost"}, sizes)
		for i, it := range byBundle[b.Name] {
			cols := []core.Col{
				col.New(sizes[0]).Add(text.New(it.Description, left)),
				col.New(sizes[1]).Add(text.New(it.Unit, left)),
				col.New(sizes[2]).Add(text.New(FormatQuantity(it.Quantity), right)),
				col.New(sizes[3]).Add(text.New(FormatCurrency(it.UnitCost), right)),
				col.New(sizes[4]).Add(text.New(FormatCurrency(it.Cost()), right)),
			}
			striped(cols, i)
			m.AddRows(row.New(6).Add(cols...))
		}
		subtotalRow(m, b.Name+" subtotal", b.Subtotal)
	}

	if hasExcluded(totals.Bundles) {
		sectionTitle(m, "OPTIONAL SCOPE (NOT INCLUDED)")
		for _, b := range totals.Bundles {
			if b.Included {
				continue
			}
			m.AddRows(row.New(6).Add(
				col.New(9).Add(text.New(fmt.Sprintf("%s (%d items)", b.Name, b.ItemCount), left)),
				col.New(3).Add(text.New(FormatCurrency(b.Subtotal), right)),
			))
		}
	}
}

func addSummary(m core.Maroto, e entities.Estimate, totals costing.EstimateTotals) {
	m.AddRows(row.New(4))
	sectionTitle(m, "SUMMARY")
	subtotalRow(m, "Area subtotal", totals.AreaSubtotal)
	subtotalRow(m, "Included scope", totals.IncludedSubtotal())
	subtotalRow(m, "Base subtotal", totals.BaseSubtotal)
	subtotalRow(m, fmt.Sprintf("Profit (%s)", FormatPercent(e.Rates.ProfitPercentage)), totals.ProfitAmount)
	subtotalRow(m, fmt.Sprintf("Contingency (%s)", FormatPercent(e.Rates.ContingencyPercentage)), totals.ContingencyAmount)

	grand := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}
	m.AddRows(row.New(9).Add(
		col.New(9).Add(text.New("GRAND TOTAL", grand)).WithStyle(&props.Cell{BackgroundColor: summaryBg}),
		col.New(3).Add(text.New(FormatCurrency(totals.GrandTotal), grand)).WithStyle(&props.Cell{BackgroundColor: summaryBg}),
	))
}

func subtotalRow(m core.Maroto, label string, amount decimal.Decimal) {
	labelStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 8, Align: align.Right}
	cell := &props.Cell{BackgroundColor: summaryBg}
	m.AddRows(row.New(7).Add(
		col.New(9).Add(text.New(label, labelStyle)).WithStyle(cell),
		col.New(3).Add(text.New(FormatCurrency(amount), valueStyle)).WithStyle(cell),
	))
}

func striped(cols []core.Col, i int) {
	if i%2 == 0 {
		return
	}
	for j := range cols {
		cols[j] = cols[j].WithStyle(&props.Cell{BackgroundColor: altBg})
	}
}

func hasExcluded(bundles []costing.BundleTotal) bool {
	for _, b := range bundles {
		if !b.Included {
			return true
		}
	}
	return false
}
