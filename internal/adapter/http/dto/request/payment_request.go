package request

import "encoding/json"

// DepositRequest is the payload for charging an estimate deposit.
//
// `provider_payload` is forwarded to Mercado Pago after the amount and
// external reference are filled in server-side.
type DepositRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
