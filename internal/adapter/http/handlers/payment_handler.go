package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "quickbuild_estimate/internal/adapter/http/dto/response"
	"quickbuild_estimate/internal/infrastructure/config"
	"quickbuild_estimate/internal/usecase"
	"quickbuild_estimate/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles deposit payments taken against finalized estimates.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateDeposit godoc
// @Summary      Charge the estimate deposit
// @Description  Charges the configured deposit percentage of the committed grand total through Mercado Pago.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                  true  "Estimate ID"
// @Param        payload      body      request.DepositRequest  false  "Provider payload"
// @Success      200          {object}  response.PaymentResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /payments/{estimate_id} [post]
func (h *PaymentHandler) CreateDeposit(c *gin.Context) {
	estimateID := c.Param("estimate_id")
	log.Printf("[payment][handler] create start estimate_id=%s", estimateID)
	payload, err := readProviderPayload(c)
	if err != nil {
		if config.PaymentGatewayMockEnabled() {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload estimate_id=%s err=%v", estimateID, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload estimate_id=%s err=%v", estimateID, err)
			appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateDeposit(c.Request.Context(), estimateID, payload)
	if err != nil {
		log.Printf("[payment][handler] create failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success estimate_id=%s payment_id=%s status=%s", estimateID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromPayment(created))
}

// GetLatestPayment godoc
// @Summary  Latest payment for an estimate
// @Tags     payments
// @Produce  json
// @Param    estimate_id  path      string  true  "Estimate ID"
// @Success  200          {object}  response.PaymentResponse
// @Failure  404          {object}  pkg.HTTPError
// @Router   /payments/{estimate_id} [get]
func (h *PaymentHandler) GetLatestPayment(c *gin.Context) {
	estimateID := c.Param("estimate_id")

	payments, err := h.usecase.ListByEstimateID(c.Request.Context(), estimateID)
	if err != nil {
		log.Printf("[payment][handler] get-by-estimate failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromPayment(latest))
}

// readProviderPayload accepts either a bare Mercado Pago payload or one
// wrapped as {"provider_payload": {...}}. An empty body means "{}".
func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentEstimateID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFinalized):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FINALIZED", "Estimate not finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
