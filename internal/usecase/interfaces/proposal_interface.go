package interfaces

import (
	"context"

	"quickbuild_estimate/internal/domain/costing"
	"quickbuild_estimate/internal/domain/entities"
)

// IProposalRenderer turns a priced estimate into a printable document.
type IProposalRenderer interface {
	Render(e entities.Estimate, totals costing.EstimateTotals) ([]byte, error)
}

// IProposalArchive stores rendered proposals and returns where they live.
type IProposalArchive interface {
	Put(ctx context.Context, key string, pdf []byte) (string, error)
}
