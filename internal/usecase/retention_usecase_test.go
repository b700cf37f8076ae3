package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"quickbuild_estimate/internal/domain/entities"
	"quickbuild_estimate/internal/usecase/interfaces"
	mock_interfaces "quickbuild_estimate/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRetentionUseCase_SupersedeExpired(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	window := 90 * 24 * time.Hour

	t.Run("marks expired and skips conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewRetentionUseCase(repo, window)

		already := now.Add(-time.Hour)
		repo.EXPECT().ListCreatedBefore(gomock.Any(), now.Add(-window)).Return([]entities.Estimate{
			{ID: "a"},
			{ID: "b", SupersededAt: &already},
			{ID: "c"},
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.SupersededAt == nil || !e.SupersededAt.Equal(now) {
					t.Fatalf("expected superseded_at set, got %v", e.SupersededAt)
				}
				if e.ID == "c" {
					return entities.Estimate{}, interfaces.ErrVersionConflict
				}
				return e, nil
			},
		).Times(2)

		n, err := uc.SupersedeExpired(context.Background(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 1 {
			t.Fatalf("expected 1 superseded, got %d", n)
		}
	})

	t.Run("repo error stops the run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewRetentionUseCase(repo, window)

		repo.EXPECT().ListCreatedBefore(gomock.Any(), gomock.Any()).Return([]entities.Estimate{{ID: "a"}, {ID: "b"}}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, errors.New("throttled"))

		n, err := uc.SupersedeExpired(context.Background(), now)
		if err == nil || n != 0 {
			t.Fatalf("expected error and zero count, got %d %v", n, err)
		}
	})
}
