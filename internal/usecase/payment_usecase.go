package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"quickbuild_estimate/internal/domain/costing"
	"quickbuild_estimate/internal/domain/entities"
	"quickbuild_estimate/internal/infrastructure/config"
	"quickbuild_estimate/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrInvalidPaymentEstimateID   = errors.New("invalid estimate_id")
	ErrInvalidProviderPayload     = errors.New("invalid payment provider payload")
	ErrEstimateNotFinalized       = errors.New("estimate not finalized")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase takes customer deposits against finalized estimates.
//
// The amount charged always comes from the committed grand total, never from
// the client payload.
type IPaymentUseCase interface {
	CreateDeposit(ctx context.Context, estimateID string, providerPayload json.RawMessage) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo              interfaces.IPaymentRepository
	estimateRepo      interfaces.IEstimateRepository
	gateway           interfaces.IPaymentGateway
	depositPercentage decimal.Decimal
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, estimateRepo interfaces.IEstimateRepository, gateway interfaces.IPaymentGateway, depositPercentage decimal.Decimal) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, estimateRepo: estimateRepo, gateway: gateway, depositPercentage: depositPercentage}
}

// DepositAmount is the share of the grand total charged up front.
func DepositAmount(grandTotal, percentage decimal.Decimal) decimal.Decimal {
	return costing.RoundCurrency(grandTotal.Mul(percentage).Div(decimal.NewFromInt(100)))
}

func (u *PaymentUseCase) CreateDeposit(ctx context.Context, estimateID string, providerPayload json.RawMessage) (entities.Payment, error) {
	log.Printf("[payment][usecase] create-deposit start raw_estimate_id=%q payload_len=%d", estimateID, len(providerPayload))
	mockMode := config.PaymentGatewayMockEnabled()
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Payment{}, ErrInvalidPaymentEstimateID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload estimate_id=%s", estimateID)
			return entities.Payment{}, ErrInvalidProviderPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.Payment{}, errors.New("payment gateway not configured")
	}
	if u.estimateRepo == nil {
		return entities.Payment{}, errors.New("estimate repository not configured")
	}

	est, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading estimate estimate_id=%s err=%v", estimateID, err)
		return entities.Payment{}, err
	}
	if est.ID == "" {
		return entities.Payment{}, ErrEstimateNotFound
	}
	if !est.IsFinalized() || est.Totals == nil {
		log.Printf("[payment][usecase] estimate not finalized estimate_id=%s status=%s", estimateID, est.Status)
		return entities.Payment{}, ErrEstimateNotFinalized
	}
	amount := DepositAmount(est.Totals.GrandTotal, u.depositPercentage)

	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil {
		return entities.Payment{}, ErrInvalidProviderPayload
	}
	if !mockMode && (!hasNonEmptyString(reqMap, "payment_method_id") || !hasPayerEmail(reqMap)) {
		log.Printf("[payment][usecase] missing payment_method_id or payer estimate_id=%s", estimateID)
		return entities.Payment{}, ErrInvalidProviderPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = estimateID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Deposit for estimate %s", est.Name)
	}
	reqMap["transaction_amount"] = amount.InexactFloat64()
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Payment{}, err
	}

	var providerPaymentID, providerStatus string
	var providerResp json.RawMessage
	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping payment gateway estimate_id=%s", estimateID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		reqMap["id"] = providerPaymentID
		reqMap["status"] = providerStatus
		reqMap["status_detail"] = "accredited"
		if providerResp, err = json.Marshal(reqMap); err != nil {
			return entities.Payment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, enriched)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed estimate_id=%s err=%v", estimateID, err)
			switch {
			case isGatewayUnauthorized(err):
				return entities.Payment{}, ErrPaymentGatewayUnauthorized
			case isGatewayBadRequest(err):
				return entities.Payment{}, ErrPaymentGatewayBadRequest
			}
			return entities.Payment{}, err
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed estimate_id=%s err=%v", estimateID, err)
	}

	p := entities.Payment{
		ID:                 providerPaymentID,
		EstimateID:         estimateID,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed estimate_id=%s payment_id=%s err=%v", estimateID, p.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] create-deposit success estimate_id=%s payment_id=%s status=%s amount=%s", estimateID, created.ID, created.Status, created.Amount.StringFixed(costing.CurrencyPlaces))
	return created, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, errors.New("invalid payment id")
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Payment, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidPaymentEstimateID
	}
	return u.repo.ListByEstimateID(ctx, estimateID)
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(status) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayerEmail(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	return ok && hasNonEmptyString(payer, "email")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
