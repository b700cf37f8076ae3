package interfaces

import (
	"context"

	"quickbuild_estimate/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for deposit payments.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Payment, error)
}
