package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"quickbuild_estimate/internal/domain/entities"
	mock_interfaces "quickbuild_estimate/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProposalUseCase_Render(t *testing.T) {
	t.Run("draft rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		renderer := mock_interfaces.NewMockIProposalRenderer(ctrl)
		uc := NewProposalUseCase(NewEstimateUseCase(repo, testPricing()), renderer, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(storedEstimate(t, entities.EstimateStatusDraft), nil)

		_, err := uc.Render(context.Background(), "est-1")
		if !errors.Is(err, entities.ErrEstimateNotPriced) {
			t.Fatalf("expected ErrEstimateNotPriced, got %v", err)
		}
	})

	t.Run("renders without archive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		renderer := mock_interfaces.NewMockIProposalRenderer(ctrl)
		uc := NewProposalUseCase(NewEstimateUseCase(repo, testPricing()), renderer, nil)

		stored := storedEstimate(t, entities.EstimateStatusFinalized)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(stored, nil)
		renderer.EXPECT().Render(gomock.Any(), *stored.Totals).Return([]byte("%PDF-1.4"), nil)

		doc, err := uc.Render(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(doc.PDF) != "%PDF-1.4" || doc.URL != "" {
			t.Fatalf("unexpected document: %+v", doc)
		}
		if !strings.HasPrefix(doc.FileName, "proposal_lakeside_house_") || !strings.HasSuffix(doc.FileName, ".pdf") {
			t.Fatalf("unexpected file name %q", doc.FileName)
		}
	})

	t.Run("archives by version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		renderer := mock_interfaces.NewMockIProposalRenderer(ctrl)
		archive := mock_interfaces.NewMockIProposalArchive(ctrl)
		uc := NewProposalUseCase(NewEstimateUseCase(repo, testPricing()), renderer, archive)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(storedEstimate(t, entities.EstimateStatusPriced), nil)
		renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil)
		archive.EXPECT().Put(gomock.Any(), gomock.Any(), []byte("pdf")).DoAndReturn(
			func(_ context.Context, key string, _ []byte) (string, error) {
				if !strings.HasPrefix(key, "proposals/est-1/v3-proposal_") {
					t.Fatalf("unexpected key %q", key)
				}
				return "https://files.example.com/" + key, nil
			},
		)

		doc, err := uc.Render(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(doc.URL, "https://files.example.com/proposals/est-1/") {
			t.Fatalf("unexpected url %q", doc.URL)
		}
	})

	t.Run("archive failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		renderer := mock_interfaces.NewMockIProposalRenderer(ctrl)
		archive := mock_interfaces.NewMockIProposalArchive(ctrl)
		uc := NewProposalUseCase(NewEstimateUseCase(repo, testPricing()), renderer, archive)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(storedEstimate(t, entities.EstimateStatusPriced), nil)
		renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil)
		archive.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bucket missing"))

		if _, err := uc.Render(context.Background(), "est-1"); err == nil {
			t.Fatalf("expected archive error")
		}
	})
}
