package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"quickbuild_estimate/internal/adapter/http/handlers/mocks"
	"quickbuild_estimate/internal/domain/entities"
	"quickbuild_estimate/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func disableGatewayMock(t *testing.T) {
	t.Helper()
	t.Setenv("PAYMENT_GATEWAY_MOCK", "false")
	t.Setenv("MERCADOPAGO_MOCK", "")
}

func TestPaymentHandler_CreateDeposit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		disableGatewayMock(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:estimate_id", h.CreateDeposit)

		w := performRequest(r, http.MethodPost, "/v1/payments/est-1", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json falls back in mock mode", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:estimate_id", h.CreateDeposit)

		uc.EXPECT().CreateDeposit(gomock.Any(), "est-1", json.RawMessage("{}")).Return(entities.Payment{ID: "mock-1", EstimateID: "est-1", Status: entities.PaymentStatusApproved}, nil)

		w := performRequest(r, http.MethodPost, "/v1/payments/est-1", "{")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unwraps provider_payload", func(t *testing.T) {
		disableGatewayMock(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:estimate_id", h.CreateDeposit)

		uc.EXPECT().CreateDeposit(gomock.Any(), "est-1", json.RawMessage(`{"token":"tok"}`)).Return(entities.Payment{
			ID:         "991",
			EstimateID: "est-1",
			Amount:     decimal.RequireFromString("21969.9"),
			Status:     entities.PaymentStatusApproved,
		}, nil)

		w := performRequest(r, http.MethodPost, "/v1/payments/est-1", `{"provider_payload":{"token":"tok"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["amount"] != "21969.90" || body["status"] != "approved" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("empty wrapped payload", func(t *testing.T) {
		disableGatewayMock(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:estimate_id", h.CreateDeposit)

		w := performRequest(r, http.MethodPost, "/v1/payments/est-1", `{"provider_payload":null}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("estimate not finalized", func(t *testing.T) {
		disableGatewayMock(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:estimate_id", h.CreateDeposit)

		uc.EXPECT().CreateDeposit(gomock.Any(), "est-1", gomock.Any()).Return(entities.Payment{}, usecase.ErrEstimateNotFinalized)

		w := performRequest(r, http.MethodPost, "/v1/payments/est-1", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		disableGatewayMock(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:estimate_id", h.CreateDeposit)

		uc.EXPECT().CreateDeposit(gomock.Any(), "est-1", gomock.Any()).Return(entities.Payment{}, usecase.ErrPaymentGatewayUnauthorized)

		w := performRequest(r, http.MethodPost, "/v1/payments/est-1", `{"token":"tok"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_GetLatestPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("latest by date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:estimate_id", h.GetLatestPayment)

		base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return([]entities.Payment{
			{ID: "p1", EstimateID: "est-1", Date: base, Status: entities.PaymentStatusDenied},
			{ID: "p2", EstimateID: "est-1", Date: base.Add(time.Hour), Status: entities.PaymentStatusApproved},
		}, nil)

		w := performRequest(r, http.MethodGet, "/v1/payments/est-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "p2" {
			t.Fatalf("expected latest payment, got %+v", body)
		}
	})

	t.Run("none", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:estimate_id", h.GetLatestPayment)

		uc.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(nil, nil)

		w := performRequest(r, http.MethodGet, "/v1/payments/est-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
