package response

import (
	"time"

	"quickbuild_estimate/internal/domain/entities"
)

type PaymentResponse struct {
	ID         string    `json:"id"`
	EstimateID string    `json:"estimate_id"`
	Amount     string    `json:"amount"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		EstimateID:         p.EstimateID,
		Amount:             money(p.Amount),
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
