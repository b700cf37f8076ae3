package interfaces

import (
	"context"
	"errors"
	"time"

	"quickbuild_estimate/internal/domain/entities"
)

// ErrVersionConflict is returned by Update and Delete when the stored version differs
// from the one the caller read.
var ErrVersionConflict = errors.New("estimate version conflict")

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// Lookups return a zero Estimate (empty ID) when nothing is found.
// Update writes only if the stored version equals e.Version and returns the
// estimate with the incremented version. Delete follows the same version
// check.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	ListCreatedBefore(ctx context.Context, cutoff time.Time) ([]entities.Estimate, error)
	Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	Delete(ctx context.Context, id string, version int64) error
}
