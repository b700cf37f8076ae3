package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"quickbuild_estimate/internal/usecase/interfaces"
)

// RetentionUseCase retires estimates older than the retention window. Records
// are marked superseded and kept; nothing is deleted here.
type RetentionUseCase struct {
	repo   interfaces.IEstimateRepository
	window time.Duration
}

func NewRetentionUseCase(repo interfaces.IEstimateRepository, window time.Duration) *RetentionUseCase {
	return &RetentionUseCase{repo: repo, window: window}
}

// SupersedeExpired returns how many estimates were superseded. Estimates
// edited concurrently are skipped and picked up by the next run.
func (u *RetentionUseCase) SupersedeExpired(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-u.window)
	expired, err := u.repo.ListCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, e := range expired {
		if e.IsSuperseded() {
			continue
		}
		e.Supersede(now)
		e.UpdatedAt = now
		if _, err := u.repo.Update(ctx, e); err != nil {
			if errors.Is(err, interfaces.ErrVersionConflict) {
				log.Printf("[retention][usecase] skipped estimate_id=%s err=%v", e.ID, err)
				continue
			}
			return count, err
		}
		count++
	}
	log.Printf("[retention][usecase] superseded=%d cutoff=%s", count, cutoff.Format(time.RFC3339))
	return count, nil
}
