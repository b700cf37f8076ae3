package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"quickbuild_estimate/internal/domain/costing"
	"quickbuild_estimate/internal/usecase/interfaces"
)

var ErrNoImportFiles = errors.New("no files to import")

// ImportFile is one uploaded sheet.
type ImportFile struct {
	Kind     costing.ItemKind
	FileName string
	Reader   io.Reader
}

type IImportUseCase interface {
	ImportLineItems(ctx context.Context, estimateID string, files []ImportFile) (EstimateResult, error)
}

// ImportUseCase attaches parsed sheets to an estimate. Items of a kind that
// was uploaded replace the existing items of that kind; the other kind is
// kept.
type ImportUseCase struct {
	estimates IEstimateUseCase
	parser    interfaces.ILineItemParser
}

var _ IImportUseCase = (*ImportUseCase)(nil)

func NewImportUseCase(estimates IEstimateUseCase, parser interfaces.ILineItemParser) *ImportUseCase {
	return &ImportUseCase{estimates: estimates, parser: parser}
}

func (u *ImportUseCase) ImportLineItems(ctx context.Context, estimateID string, files []ImportFile) (EstimateResult, error) {
	if len(files) == 0 {
		return EstimateResult{}, ErrNoImportFiles
	}

	var kinds []costing.ItemKind
	var imported []costing.LineItem
	for _, f := range files {
		items, err := u.parser.Parse(f.Kind, f.FileName, f.Reader)
		if err != nil {
			return EstimateResult{}, fmt.Errorf("%s: %w", f.FileName, err)
		}
		kinds = append(kinds, f.Kind)
		imported = append(imported, items...)
	}

	res, err := u.estimates.ReplaceLineItemsOfKinds(ctx, estimateID, kinds, imported)
	if err != nil {
		return EstimateResult{}, err
	}
	log.Printf("[import][usecase] estimate_id=%s files=%d imported_items=%d total_items=%d", estimateID, len(files), len(imported), len(res.Estimate.LineItems))
	return res, nil
}
