package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"quickbuild_estimate/internal/domain/costing"
	"quickbuild_estimate/internal/domain/entities"
	"quickbuild_estimate/internal/infrastructure/config"
	"quickbuild_estimate/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound    = errors.New("estimate not found")
	ErrInvalidEstimateID   = errors.New("invalid estimate id")
	ErrInvalidEstimateName = errors.New("invalid estimate name")
	ErrBundleNotFound      = errors.New("bundle not found")
	ErrEstimateSuperseded  = errors.New("estimate superseded")
)

// CreateEstimateCommand carries the structured data produced by the blueprint
// and CSV collaborators. Rates and RateOverrides fall back to configuration.
type CreateEstimateCommand struct {
	Name          string
	Areas         []costing.AreaRecord
	LineItems     []costing.LineItem
	Rates         *costing.AdjustmentRates
	RateOverrides costing.RateTable
}

// EstimateResult pairs an estimate with the totals to show for it.
//
// For priced and finalized estimates Totals is the committed snapshot. For
// drafts it is recomputed from the current fields and Advisory is true.
type EstimateResult struct {
	Estimate entities.Estimate
	Totals   costing.EstimateTotals
	Advisory bool
}

type ItemLine struct {
	costing.LineItem
	Cost string `json:"cost"`
}

type BundleBreakdown struct {
	costing.BundleTotal
	Items []ItemLine
}

// Breakdown is the detailed cost listing shown on the estimate page and in
// the proposal.
type Breakdown struct {
	EstimateResult
	Bundles []BundleBreakdown
}

// IEstimateUseCase exposes estimate pricing operations.
//
// Every edit sends a priced estimate back to draft. Recompute commits the
// totals; Finalize locks the estimate for good.
type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, cmd CreateEstimateCommand) (EstimateResult, error)
	GetByID(ctx context.Context, id string) (EstimateResult, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	Breakdown(ctx context.Context, id string) (Breakdown, error)
	ToggleBundle(ctx context.Context, id, bundle string) (EstimateResult, error)
	SetBundleInclusion(ctx context.Context, id, bundle string, included bool) (EstimateResult, error)
	UpdateRates(ctx context.Context, id string, rates costing.AdjustmentRates) (EstimateResult, error)
	UpdateRateTable(ctx context.Context, id string, overrides costing.RateTable) (EstimateResult, error)
	ReplaceLineItems(ctx context.Context, id string, items []costing.LineItem) (EstimateResult, error)
	ReplaceLineItemsOfKinds(ctx context.Context, id string, kinds []costing.ItemKind, items []costing.LineItem) (EstimateResult, error)
	ReplaceAreas(ctx context.Context, id string, areas []costing.AreaRecord) (EstimateResult, error)
	Recompute(ctx context.Context, id string) (EstimateResult, error)
	Finalize(ctx context.Context, id string) (EstimateResult, error)
	Duplicate(ctx context.Context, id string) (EstimateResult, error)
	Delete(ctx context.Context, id string) error
}

type EstimateUseCase struct {
	repo    interfaces.IEstimateRepository
	pricing config.Pricing
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, pricing config.Pricing) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, pricing: pricing}
}

func (u *EstimateUseCase) CreateEstimate(ctx context.Context, cmd CreateEstimateCommand) (EstimateResult, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return EstimateResult{}, ErrInvalidEstimateName
	}
	if err := costing.ValidateAreas(cmd.Areas); err != nil {
		return EstimateResult{}, err
	}
	if err := costing.ValidateLineItems(cmd.LineItems); err != nil {
		return EstimateResult{}, err
	}

	rates := u.pricing.Rates
	if cmd.Rates != nil {
		rates = *cmd.Rates
	}
	if err := costing.ValidateRates(rates); err != nil {
		return EstimateResult{}, err
	}
	table := u.pricing.RateTable.Merge(cmd.RateOverrides)
	if err := costing.ValidateRateTable(table); err != nil {
		return EstimateResult{}, err
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:        uuid.NewString(),
		Name:      name,
		Status:    entities.EstimateStatusDraft,
		Version:   1,
		Areas:     cmd.Areas,
		RateTable: table,
		LineItems: assignItemIDs(cmd.LineItems),
		Rates:     rates,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// Every detected bundle starts enabled.
	e.BundleInclusion = costing.BundleInclusion{}
	for _, b := range e.BundleNames() {
		e.BundleInclusion[b] = true
	}

	totals, err := costing.Recompute(e.Snapshot())
	if err != nil {
		return EstimateResult{}, err
	}
	if err := e.CommitTotals(totals, now); err != nil {
		return EstimateResult{}, err
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return EstimateResult{}, err
	}
	log.Printf("[estimate][usecase] created estimate_id=%s bundles=%d grand_total=%s", created.ID, len(totals.Bundles), totals.GrandTotal.StringFixed(costing.CurrencyPlaces))
	return EstimateResult{Estimate: created, Totals: totals}, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (EstimateResult, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return EstimateResult{}, err
	}
	return resultFor(e)
}

func (u *EstimateUseCase) List(ctx context.Context) ([]entities.Estimate, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Estimate, 0, len(all))
	for _, e := range all {
		if !e.IsSuperseded() {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (u *EstimateUseCase) Breakdown(ctx context.Context, id string) (Breakdown, error) {
	res, err := u.GetByID(ctx, id)
	if err != nil {
		return Breakdown{}, err
	}
	return BuildBreakdown(res), nil
}

// BuildBreakdown groups the estimate's items under the bundle totals.
func BuildBreakdown(res EstimateResult) Breakdown {
	byBundle := make(map[string][]ItemLine)
	for _, it := range res.Estimate.LineItems {
		byBundle[it.Bundle()] = append(byBundle[it.Bundle()], ItemLine{
			LineItem: it,
			Cost:     it.Cost().StringFixed(costing.CurrencyPlaces),
		})
	}
	bundles := make([]BundleBreakdown, 0, len(res.Totals.Bundles))
	for _, b := range res.Totals.Bundles {
		bundles = append(bundles, BundleBreakdown{BundleTotal: b, Items: byBundle[b.Name]})
	}
	return Breakdown{EstimateResult: res, Bundles: bundles}
}

func (u *EstimateUseCase) ToggleBundle(ctx context.Context, id, bundle string) (EstimateResult, error) {
	return u.mutate(ctx, id, func(e *entities.Estimate) error {
		name, err := findBundle(e, bundle)
		if err != nil {
			return err
		}
		return e.SetBundleIncluded(name, !e.BundleInclusion.Included(name))
	})
}

func (u *EstimateUseCase) SetBundleInclusion(ctx context.Context, id, bundle string, included bool) (EstimateResult, error) {
	return u.mutate(ctx, id, func(e *entities.Estimate) error {
		name, err := findBundle(e, bundle)
		if err != nil {
			return err
		}
		return e.SetBundleIncluded(name, included)
	})
}

func (u *EstimateUseCase) UpdateRates(ctx context.Context, id string, rates costing.AdjustmentRates) (EstimateResult, error) {
	if err := costing.ValidateRates(rates); err != nil {
		return EstimateResult{}, err
	}
	return u.mutate(ctx, id, func(e *entities.Estimate) error {
		return e.SetRates(rates)
	})
}

func (u *EstimateUseCase) UpdateRateTable(ctx context.Context, id string, overrides costing.RateTable) (EstimateResult, error) {
	return u.mutate(ctx, id, func(e *entities.Estimate) error {
		table := e.RateTable.Merge(overrides)
		if err := costing.ValidateRateTable(table); err != nil {
			return err
		}
		return e.SetRateTable(table)
	})
}

func (u *EstimateUseCase) ReplaceLineItems(ctx context.Context, id string, items []costing.LineItem) (EstimateResult, error) {
	if err := costing.ValidateLineItems(items); err != nil {
		return EstimateResult{}, err
	}
	return u.mutate(ctx, id, func(e *entities.Estimate) error {
		return e.ReplaceLineItems(assignItemIDs(items))
	})
}

// ReplaceLineItemsOfKinds swaps only the items of the given kinds and keeps
// the rest. The merge happens on the same read that is written back, so a
// concurrent edit surfaces as a version conflict.
func (u *EstimateUseCase) ReplaceLineItemsOfKinds(ctx context.Context, id string, kinds []costing.ItemKind, items []costing.LineItem) (EstimateResult, error) {
	if err := costing.ValidateLineItems(items); err != nil {
		return EstimateResult{}, err
	}
	replaced := make(map[costing.ItemKind]bool, len(kinds))
	for _, k := range kinds {
		replaced[k] = true
	}
	return u.mutate(ctx, id, func(e *entities.Estimate) error {
		var merged []costing.LineItem
		for _, it := range e.LineItems {
			if !replaced[itemKind(it)] {
				merged = append(merged, it)
			}
		}
		merged = append(merged, items...)
		return e.ReplaceLineItems(assignItemIDs(merged))
	})
}

func (u *EstimateUseCase) ReplaceAreas(ctx context.Context, id string, areas []costing.AreaRecord) (EstimateResult, error) {
	if err := costing.ValidateAreas(areas); err != nil {
		return EstimateResult{}, err
	}
	return u.mutate(ctx, id, func(e *entities.Estimate) error {
		return e.ReplaceAreas(append([]costing.AreaRecord(nil), areas...))
	})
}

// Recompute prices the estimate from scratch and commits the result. A
// finalized estimate is rejected and its stored snapshot left untouched.
func (u *EstimateUseCase) Recompute(ctx context.Context, id string) (EstimateResult, error) {
	e, err := u.loadWritable(ctx, id)
	if err != nil {
		return EstimateResult{}, err
	}
	if e.IsFinalized() {
		return EstimateResult{}, costing.ErrEstimateLocked
	}

	totals, err := costing.Recompute(e.Snapshot())
	if err != nil {
		return EstimateResult{}, err
	}
	now := time.Now().UTC()
	if err := e.CommitTotals(totals, now); err != nil {
		return EstimateResult{}, err
	}
	e.UpdatedAt = now

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return EstimateResult{}, err
	}
	log.Printf("[estimate][usecase] priced estimate_id=%s version=%d grand_total=%s", updated.ID, updated.Version, totals.GrandTotal.StringFixed(costing.CurrencyPlaces))
	return EstimateResult{Estimate: updated, Totals: totals}, nil
}

func (u *EstimateUseCase) Finalize(ctx context.Context, id string) (EstimateResult, error) {
	e, err := u.loadWritable(ctx, id)
	if err != nil {
		return EstimateResult{}, err
	}
	now := time.Now().UTC()
	if err := e.Finalize(now); err != nil {
		return EstimateResult{}, err
	}
	e.UpdatedAt = now

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return EstimateResult{}, err
	}
	log.Printf("[estimate][usecase] finalized estimate_id=%s", updated.ID)
	return resultFor(updated)
}

// Duplicate copies an estimate's inputs into a new, freshly priced estimate.
func (u *EstimateUseCase) Duplicate(ctx context.Context, id string) (EstimateResult, error) {
	orig, err := u.load(ctx, id)
	if err != nil {
		return EstimateResult{}, err
	}

	now := time.Now().UTC()
	dup := entities.Estimate{
		ID:              uuid.NewString(),
		Name:            fmt.Sprintf("%s (Copy)", orig.Name),
		Status:          entities.EstimateStatusDraft,
		Version:         1,
		Areas:           append([]costing.AreaRecord(nil), orig.Areas...),
		RateTable:       orig.RateTable.Clone(),
		LineItems:       append([]costing.LineItem(nil), orig.LineItems...),
		BundleInclusion: orig.BundleInclusion.Clone(),
		Rates:           orig.Rates,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	totals, err := costing.Recompute(dup.Snapshot())
	if err != nil {
		return EstimateResult{}, err
	}
	if err := dup.CommitTotals(totals, now); err != nil {
		return EstimateResult{}, err
	}

	created, err := u.repo.Create(ctx, dup)
	if err != nil {
		return EstimateResult{}, err
	}
	log.Printf("[estimate][usecase] duplicated estimate_id=%s into estimate_id=%s", orig.ID, created.ID)
	return EstimateResult{Estimate: created, Totals: totals}, nil
}

// Delete removes a draft or priced estimate. Finalized estimates are the
// record sent to the bank and may carry deposits, so they are kept and the
// call fails with ErrEstimateLocked.
func (u *EstimateUseCase) Delete(ctx context.Context, id string) error {
	e, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if e.IsFinalized() {
		return costing.ErrEstimateLocked
	}
	if err := u.repo.Delete(ctx, e.ID, e.Version); err != nil {
		return err
	}
	log.Printf("[estimate][usecase] deleted estimate_id=%s version=%d", e.ID, e.Version)
	return nil
}

// mutate applies an edit and stores it only if the edited estimate still
// prices cleanly. The totals returned are advisory until Recompute.
func (u *EstimateUseCase) mutate(ctx context.Context, id string, edit func(e *entities.Estimate) error) (EstimateResult, error) {
	e, err := u.loadWritable(ctx, id)
	if err != nil {
		return EstimateResult{}, err
	}
	if err := edit(&e); err != nil {
		return EstimateResult{}, err
	}
	totals, err := costing.Recompute(e.Snapshot())
	if err != nil {
		return EstimateResult{}, err
	}
	e.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return EstimateResult{}, err
	}
	return EstimateResult{Estimate: updated, Totals: totals, Advisory: true}, nil
}

func (u *EstimateUseCase) load(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) loadWritable(ctx context.Context, id string) (entities.Estimate, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.IsSuperseded() {
		return entities.Estimate{}, ErrEstimateSuperseded
	}
	return e, nil
}

func resultFor(e entities.Estimate) (EstimateResult, error) {
	if e.Status != entities.EstimateStatusDraft && e.Totals != nil {
		return EstimateResult{Estimate: e, Totals: *e.Totals}, nil
	}
	totals, err := costing.Recompute(e.Snapshot())
	if err != nil {
		return EstimateResult{}, err
	}
	return EstimateResult{Estimate: e, Totals: totals, Advisory: true}, nil
}

func findBundle(e *entities.Estimate, bundle string) (string, error) {
	name := strings.TrimSpace(bundle)
	if !e.HasBundle(name) {
		return "", fmt.Errorf("%w: %q", ErrBundleNotFound, bundle)
	}
	return name, nil
}

// itemKind treats items without a kind as material.
func itemKind(it costing.LineItem) costing.ItemKind {
	if it.Kind == "" {
		return costing.ItemKindMaterial
	}
	return it.Kind
}

func assignItemIDs(items []costing.LineItem) []costing.LineItem {
	out := make([]costing.LineItem, len(items))
	for i, it := range items {
		if strings.TrimSpace(it.ID) == "" {
			it.ID = uuid.NewString()
		}
		out[i] = it
	}
	return out
}
