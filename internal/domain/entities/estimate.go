package entities

import (
	"errors"
	"time"

	"quickbuild_estimate/internal/domain/costing"
)

var ErrEstimateNotPriced = errors.New("estimate not priced")

// EstimateStatus represents the pricing lifecycle of an estimate.
//
// Transitions:
//   - draft -> priced: totals committed after an explicit recompute
//   - priced -> draft: any edit (bundle toggle, rates, rate table, items)
//   - priced -> finalized: the estimate is locked for the bank/proposal
type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "draft"
	EstimateStatusPriced    EstimateStatus = "priced"
	EstimateStatusFinalized EstimateStatus = "finalized"
)

// Estimate is the aggregate root of a home construction estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version guards concurrent writes (optimistic locking)
//
// Totals holds the last committed snapshot. While the estimate is in draft the
// snapshot is stale and totals shown to users are recomputed on read.
type Estimate struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	Status          EstimateStatus          `json:"status"`
	Version         int64                   `json:"version"`
	Areas           []costing.AreaRecord    `json:"areas"`
	RateTable       costing.RateTable       `json:"rate_table"`
	LineItems       []costing.LineItem      `json:"line_items"`
	BundleInclusion costing.BundleInclusion `json:"bundle_inclusion"`
	Rates           costing.AdjustmentRates `json:"rates"`
	Totals          *costing.EstimateTotals `json:"totals,omitempty"`
	PricedAt        *time.Time              `json:"priced_at,omitempty"`
	FinalizedAt     *time.Time              `json:"finalized_at,omitempty"`
	SupersededAt    *time.Time              `json:"superseded_at,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

func (e *Estimate) IsFinalized() bool {
	return e.Status == EstimateStatusFinalized
}

func (e *Estimate) IsSuperseded() bool {
	return e.SupersededAt != nil
}

// Snapshot copies the fields the engine prices. The copy shares no maps with
// the estimate.
func (e *Estimate) Snapshot() costing.Snapshot {
	return costing.Snapshot{
		Areas:           append([]costing.AreaRecord(nil), e.Areas...),
		RateTable:       e.RateTable.Clone(),
		LineItems:       append([]costing.LineItem(nil), e.LineItems...),
		BundleInclusion: e.BundleInclusion.Clone(),
		Rates:           e.Rates,
	}
}

// BundleNames lists the distinct bundles in first-appearance order.
func (e *Estimate) BundleNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, it := range e.LineItems {
		name := it.Bundle()
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

func (e *Estimate) HasBundle(name string) bool {
	for _, b := range e.BundleNames() {
		if b == name {
			return true
		}
	}
	return false
}

// invalidate is called before every edit. A finalized estimate is immutable;
// a priced one falls back to draft.
func (e *Estimate) invalidate() error {
	if e.IsFinalized() {
		return costing.ErrEstimateLocked
	}
	e.Status = EstimateStatusDraft
	return nil
}

func (e *Estimate) SetBundleIncluded(bundle string, included bool) error {
	if err := e.invalidate(); err != nil {
		return err
	}
	if e.BundleInclusion == nil {
		e.BundleInclusion = costing.BundleInclusion{}
	}
	e.BundleInclusion[bundle] = included
	return nil
}

func (e *Estimate) SetRates(rates costing.AdjustmentRates) error {
	if err := e.invalidate(); err != nil {
		return err
	}
	e.Rates = rates
	return nil
}

func (e *Estimate) SetRateTable(table costing.RateTable) error {
	if err := e.invalidate(); err != nil {
		return err
	}
	e.RateTable = table
	return nil
}

// ReplaceLineItems swaps the item list. Inclusion entries of bundles that no
// longer exist are dropped; new bundles start included.
func (e *Estimate) ReplaceLineItems(items []costing.LineItem) error {
	if err := e.invalidate(); err != nil {
		return err
	}
	e.LineItems = items
	kept := costing.BundleInclusion{}
	for _, name := range e.BundleNames() {
		if included, ok := e.BundleInclusion[name]; ok {
			kept[name] = included
		}
	}
	e.BundleInclusion = kept
	return nil
}

// ReplaceAreas swaps the takeoff areas. Callers validate the records first.
func (e *Estimate) ReplaceAreas(areas []costing.AreaRecord) error {
	if err := e.invalidate(); err != nil {
		return err
	}
	e.Areas = areas
	return nil
}

// CommitTotals stores a freshly computed snapshot and marks the estimate
// priced.
func (e *Estimate) CommitTotals(totals costing.EstimateTotals, now time.Time) error {
	if e.IsFinalized() {
		return costing.ErrEstimateLocked
	}
	e.Totals = &totals
	e.Status = EstimateStatusPriced
	e.PricedAt = &now
	return nil
}

func (e *Estimate) Finalize(now time.Time) error {
	switch e.Status {
	case EstimateStatusFinalized:
		return costing.ErrEstimateLocked
	case EstimateStatusPriced:
		e.Status = EstimateStatusFinalized
		e.FinalizedAt = &now
		return nil
	default:
		return ErrEstimateNotPriced
	}
}

// Supersede retires the estimate after the retention window. The record is
// kept.
func (e *Estimate) Supersede(now time.Time) {
	if e.SupersededAt == nil {
		e.SupersededAt = &now
	}
}
