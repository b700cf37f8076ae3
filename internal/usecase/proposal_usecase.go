package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"quickbuild_estimate/internal/domain/entities"
	"quickbuild_estimate/internal/usecase/interfaces"
)

// ProposalDocument is a rendered proposal, plus its archive URL when an
// archive is configured.
type ProposalDocument struct {
	FileName string
	PDF      []byte
	URL      string
}

type IProposalUseCase interface {
	Render(ctx context.Context, estimateID string) (ProposalDocument, error)
}

type ProposalUseCase struct {
	estimates IEstimateUseCase
	renderer  interfaces.IProposalRenderer
	archive   interfaces.IProposalArchive
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

// NewProposalUseCase builds the use case; archive may be nil.
func NewProposalUseCase(estimates IEstimateUseCase, renderer interfaces.IProposalRenderer, archive interfaces.IProposalArchive) *ProposalUseCase {
	return &ProposalUseCase{estimates: estimates, renderer: renderer, archive: archive}
}

// Render produces the bank-facing proposal. Only committed totals are
// printed, so drafts are rejected.
func (u *ProposalUseCase) Render(ctx context.Context, estimateID string) (ProposalDocument, error) {
	res, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return ProposalDocument{}, err
	}
	if res.Advisory {
		return ProposalDocument{}, entities.ErrEstimateNotPriced
	}

	pdf, err := u.renderer.Render(res.Estimate, res.Totals)
	if err != nil {
		return ProposalDocument{}, err
	}
	doc := ProposalDocument{
		FileName: proposalFileName(res.Estimate),
		PDF:      pdf,
	}

	if u.archive != nil {
		key := fmt.Sprintf("proposals/%s/v%d-%s", res.Estimate.ID, res.Estimate.Version, doc.FileName)
		url, err := u.archive.Put(ctx, key, pdf)
		if err != nil {
			log.Printf("[proposal][usecase] archive failed estimate_id=%s err=%v", res.Estimate.ID, err)
			return ProposalDocument{}, err
		}
		doc.URL = url
	}
	log.Printf("[proposal][usecase] rendered estimate_id=%s bytes=%d archived=%t", res.Estimate.ID, len(pdf), doc.URL != "")
	return doc, nil
}

func proposalFileName(e entities.Estimate) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(e.Name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	name := b.String()
	if name == "" {
		name = "estimate"
	}
	return fmt.Sprintf("proposal_%s_%s.pdf", name, time.Now().UTC().Format("20060102"))
}
