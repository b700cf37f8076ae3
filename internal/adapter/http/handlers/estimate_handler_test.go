package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quickbuild_estimate/internal/adapter/http/handlers/mocks"
	"quickbuild_estimate/internal/domain/costing"
	"quickbuild_estimate/internal/domain/entities"
	"quickbuild_estimate/internal/usecase"
	"quickbuild_estimate/internal/usecase/interfaces"
	"quickbuild_estimate/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func sampleResult(status entities.EstimateStatus) usecase.EstimateResult {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	e := entities.Estimate{
		ID:      "est-1",
		Name:    "Lakeside House",
		Status:  status,
		Version: 2,
		Areas: []costing.AreaRecord{
			{Room: "Living", Category: costing.CategoryInterior, SquareFootage: decimal.NewFromInt(1000)},
		},
		RateTable: costing.RateTable{
			costing.CategoryInterior: decimal.NewFromInt(150),
			costing.CategoryExterior: decimal.NewFromInt(80),
			costing.CategoryUtility:  decimal.NewFromInt(25),
			costing.CategoryOther:    decimal.NewFromInt(20),
		},
		LineItems: []costing.LineItem{
			{ID: "i1", Description: "Panel", Kind: costing.ItemKindMaterial, BundleName: "Electrical", Quantity: decimal.NewFromInt(1), UnitCost: decimal.NewFromInt(5000)},
			{ID: "i2", Description: "Pavers", Kind: costing.ItemKindMaterial, BundleName: "Patio", Quantity: decimal.NewFromInt(100), UnitCost: decimal.NewFromInt(12)},
		},
		BundleInclusion: costing.BundleInclusion{"Patio": false},
		Rates: costing.AdjustmentRates{
			ProfitPercentage:      decimal.NewFromInt(8),
			ContingencyPercentage: decimal.NewFromInt(3),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	totals, err := costing.Recompute(e.Snapshot())
	if err != nil {
		panic(err)
	}
	return usecase.EstimateResult{Estimate: e, Totals: totals, Advisory: status == entities.EstimateStatusDraft}
}

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		w := performRequest(r, http.MethodPost, "/v1/estimates", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		w := performRequest(r, http.MethodPost, "/v1/estimates", `{"name":"A","areas":[{"category":"Garage","square_footage":100}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "UNKNOWN_CATEGORY" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})

	t.Run("negative cost from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		uc.EXPECT().CreateEstimate(gomock.Any(), gomock.Any()).Return(usecase.EstimateResult{}, costing.ErrNegativeQuantityOrCost)

		w := performRequest(r, http.MethodPost, "/v1/estimates", `{"name":"A","line_items":[{"description":"x","unit_cost":-1,"quantity":1}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "NEGATIVE_QUANTITY_OR_COST" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		uc.EXPECT().CreateEstimate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.CreateEstimateCommand) (usecase.EstimateResult, error) {
				if cmd.Name != "Lakeside House" || len(cmd.Areas) != 1 || cmd.Areas[0].Category != costing.CategoryInterior {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return sampleResult(entities.EstimateStatusDraft), nil
			})

		w := performRequest(r, http.MethodPost, "/v1/estimates", `{"name":"Lakeside House","areas":[{"room":"Living","category":"interior","square_footage":"1000"}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		totals := body["totals"].(map[string]interface{})
		// 150000 + 5000 = 155000; profit 12400; contingency 5022 on 167400.
		if totals["grand_total"] != "172422.00" || totals["advisory"] != true {
			t.Fatalf("unexpected totals: %+v", totals)
		}
		if totals["excluded_subtotal"] != "1200.00" {
			t.Fatalf("unexpected excluded subtotal: %+v", totals)
		}
	})
}

func TestEstimateHandler_GetAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/:id", h.GetEstimate)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(usecase.EstimateResult{}, usecase.ErrEstimateNotFound)

		w := performRequest(r, http.MethodGet, "/v1/estimates/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates", h.ListEstimates)

		priced := sampleResult(entities.EstimateStatusPriced)
		priced.Estimate.Totals = &priced.Totals
		uc.EXPECT().List(gomock.Any()).Return([]entities.Estimate{priced.Estimate, {ID: "est-2", Name: "Empty", Status: entities.EstimateStatusDraft}}, nil)

		w := performRequest(r, http.MethodGet, "/v1/estimates", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["grand_total"] != "172422.00" {
			t.Fatalf("unexpected list: %+v", body)
		}
		if _, ok := body[1]["grand_total"]; ok {
			t.Fatalf("unpriced estimate should omit grand_total: %+v", body[1])
		}
	})

	t.Run("internal error hides cause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates", h.ListEstimates)

		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("dynamodb down"))

		w := performRequest(r, http.MethodGet, "/v1/estimates", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Detail != "" {
			t.Fatalf("cause leaked: %+v", body)
		}
	})
}

func TestEstimateHandler_Breakdown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	h := NewEstimateHandler(uc)

	r := gin.New()
	r.GET("/v1/estimates/:id/breakdown", h.GetBreakdown)

	res := sampleResult(entities.EstimateStatusPriced)
	uc.EXPECT().Breakdown(gomock.Any(), "est-1").Return(usecase.Breakdown{
		EstimateResult: res,
		Bundles: []usecase.BundleBreakdown{
			{BundleTotal: res.Totals.Bundles[0], Items: []usecase.ItemLine{{LineItem: res.Estimate.LineItems[0], Cost: "5000.00"}}},
		},
	}, nil)

	w := performRequest(r, http.MethodGet, "/v1/estimates/est-1/breakdown", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	bundles := body["bundles"].([]interface{})
	first := bundles[0].(map[string]interface{})
	if first["name"] != "Electrical" || first["subtotal"] != "5000.00" || len(first["items"].([]interface{})) != 1 {
		t.Fatalf("unexpected breakdown: %+v", first)
	}
}

func TestEstimateHandler_Bundles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("toggle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/bundles/:bundle/toggle", h.ToggleBundle)

		uc.EXPECT().ToggleBundle(gomock.Any(), "est-1", "Patio").Return(sampleResult(entities.EstimateStatusDraft), nil)

		w := performRequest(r, http.MethodPost, "/v1/estimates/est-1/bundles/Patio/toggle", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("toggle finalized is locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/bundles/:bundle/toggle", h.ToggleBundle)

		uc.EXPECT().ToggleBundle(gomock.Any(), "est-1", "Patio").Return(usecase.EstimateResult{}, costing.ErrEstimateLocked)

		w := performRequest(r, http.MethodPost, "/v1/estimates/est-1/bundles/Patio/toggle", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "ESTIMATE_LOCKED" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})

	t.Run("set inclusion requires flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/:id/bundles/:bundle", h.SetBundleInclusion)

		w := performRequest(r, http.MethodPut, "/v1/estimates/est-1/bundles/Patio", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("set inclusion false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/:id/bundles/:bundle", h.SetBundleInclusion)

		uc.EXPECT().SetBundleInclusion(gomock.Any(), "est-1", "Patio", false).Return(sampleResult(entities.EstimateStatusDraft), nil)

		w := performRequest(r, http.MethodPut, "/v1/estimates/est-1/bundles/Patio", `{"included":false}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown bundle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/:id/bundles/:bundle", h.SetBundleInclusion)

		uc.EXPECT().SetBundleInclusion(gomock.Any(), "est-1", "Pool", true).Return(usecase.EstimateResult{}, usecase.ErrBundleNotFound)

		w := performRequest(r, http.MethodPut, "/v1/estimates/est-1/bundles/Pool", `{"included":true}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_Rates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("update rates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/:id/rates", h.UpdateRates)

		want := costing.AdjustmentRates{ProfitPercentage: decimal.NewFromInt(10), ContingencyPercentage: decimal.RequireFromString("5.5")}
		uc.EXPECT().UpdateRates(gomock.Any(), "est-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, got costing.AdjustmentRates) (usecase.EstimateResult, error) {
				if !got.ProfitPercentage.Equal(want.ProfitPercentage) || !got.ContingencyPercentage.Equal(want.ContingencyPercentage) {
					t.Fatalf("unexpected rates: %+v", got)
				}
				return sampleResult(entities.EstimateStatusDraft), nil
			})

		w := performRequest(r, http.MethodPut, "/v1/estimates/est-1/rates", `{"profit_percentage":10,"contingency_percentage":"5.5"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/:id/rates", h.UpdateRates)

		uc.EXPECT().UpdateRates(gomock.Any(), "est-1", gomock.Any()).Return(usecase.EstimateResult{}, costing.ErrInvalidRate)

		w := performRequest(r, http.MethodPut, "/v1/estimates/est-1/rates", `{"profit_percentage":-1,"contingency_percentage":5}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "INVALID_RATE" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})

	t.Run("rate table unknown category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/:id/rate-table", h.UpdateRateTable)

		w := performRequest(r, http.MethodPut, "/v1/estimates/est-1/rate-table", `{"rates":{"basement":30}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rate table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/:id/rate-table", h.UpdateRateTable)

		uc.EXPECT().UpdateRateTable(gomock.Any(), "est-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, table costing.RateTable) (usecase.EstimateResult, error) {
				if len(table) != 1 || !table[costing.CategoryExterior].Equal(decimal.NewFromInt(30)) {
					t.Fatalf("unexpected table: %+v", table)
				}
				return sampleResult(entities.EstimateStatusDraft), nil
			})

		w := performRequest(r, http.MethodPut, "/v1/estimates/est-1/rate-table", `{"rates":{"Exterior":30}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_ReplaceLineItems(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	h := NewEstimateHandler(uc)

	r := gin.New()
	r.PUT("/v1/estimates/:id/line-items", h.ReplaceLineItems)

	uc.EXPECT().ReplaceLineItems(gomock.Any(), "est-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, items []costing.LineItem) (usecase.EstimateResult, error) {
			if len(items) != 1 || items[0].Kind != costing.ItemKindLabor || items[0].BundleName != "Carpentry" {
				t.Fatalf("unexpected items: %+v", items)
			}
			return sampleResult(entities.EstimateStatusDraft), nil
		})

	w := performRequest(r, http.MethodPut, "/v1/estimates/est-1/line-items", `{"items":[{"description":"Framing","kind":"labor","unit_cost":45,"quantity":8,"bundle_name":"Carpentry"}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestEstimateHandler_ReplaceAreas(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown category never reaches the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/:id/areas", h.ReplaceAreas)

		w := performRequest(r, http.MethodPut, "/v1/estimates/est-1/areas", `{"areas":[{"category":"Attic","square_footage":90}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "UNKNOWN_CATEGORY" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})

	t.Run("negative footage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/:id/areas", h.ReplaceAreas)

		uc.EXPECT().ReplaceAreas(gomock.Any(), "est-1", gomock.Any()).Return(usecase.EstimateResult{}, costing.ErrNegativeArea)

		w := performRequest(r, http.MethodPut, "/v1/estimates/est-1/areas", `{"areas":[{"category":"interior","square_footage":-5}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "NEGATIVE_QUANTITY_OR_COST" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/:id/areas", h.ReplaceAreas)

		uc.EXPECT().ReplaceAreas(gomock.Any(), "est-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, areas []costing.AreaRecord) (usecase.EstimateResult, error) {
				if len(areas) != 2 || areas[0].Room != "Garage" || areas[0].Category != costing.CategoryUtility || areas[1].Category != costing.CategoryExterior {
					t.Fatalf("unexpected areas: %+v", areas)
				}
				return sampleResult(entities.EstimateStatusDraft), nil
			})

		w := performRequest(r, http.MethodPut, "/v1/estimates/est-1/areas", `{"areas":[{"room":" Garage ","category":"Utility","square_footage":"240"},{"category":"exterior","square_footage":500}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_DeleteEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "deleted", status: http.StatusNoContent},
		{name: "not found", err: usecase.ErrEstimateNotFound, status: http.StatusNotFound, code: "ESTIMATE_NOT_FOUND"},
		{name: "finalized is kept", err: costing.ErrEstimateLocked, status: http.StatusConflict, code: "ESTIMATE_LOCKED"},
		{name: "version conflict", err: interfaces.ErrVersionConflict, status: http.StatusConflict, code: "VERSION_CONFLICT"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIEstimateUseCase(ctrl)
			h := NewEstimateHandler(uc)

			r := gin.New()
			r.DELETE("/v1/estimates/:id", h.DeleteEstimate)

			uc.EXPECT().Delete(gomock.Any(), "est-1").Return(tc.err)

			w := performRequest(r, http.MethodDelete, "/v1/estimates/est-1", "")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if tc.code == "" {
				if w.Body.Len() != 0 {
					t.Fatalf("expected empty body, got %q", w.Body.String())
				}
				return
			}
			if body := decodeError(t, w); body.Code != tc.code {
				t.Fatalf("unexpected code %q", body.Code)
			}
		})
	}
}

func TestEstimateHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		path   string
		expect func(uc *mocks.MockIEstimateUseCase)
		status int
		code   string
	}{
		{
			name: "recompute commits",
			path: "/v1/estimates/est-1/recompute",
			expect: func(uc *mocks.MockIEstimateUseCase) {
				uc.EXPECT().Recompute(gomock.Any(), "est-1").Return(sampleResult(entities.EstimateStatusPriced), nil)
			},
			status: http.StatusOK,
		},
		{
			name: "recompute version conflict",
			path: "/v1/estimates/est-1/recompute",
			expect: func(uc *mocks.MockIEstimateUseCase) {
				uc.EXPECT().Recompute(gomock.Any(), "est-1").Return(usecase.EstimateResult{}, interfaces.ErrVersionConflict)
			},
			status: http.StatusConflict,
			code:   "VERSION_CONFLICT",
		},
		{
			name: "finalize draft",
			path: "/v1/estimates/est-1/finalize",
			expect: func(uc *mocks.MockIEstimateUseCase) {
				uc.EXPECT().Finalize(gomock.Any(), "est-1").Return(usecase.EstimateResult{}, entities.ErrEstimateNotPriced)
			},
			status: http.StatusConflict,
			code:   "ESTIMATE_NOT_PRICED",
		},
		{
			name: "finalize superseded",
			path: "/v1/estimates/est-1/finalize",
			expect: func(uc *mocks.MockIEstimateUseCase) {
				uc.EXPECT().Finalize(gomock.Any(), "est-1").Return(usecase.EstimateResult{}, usecase.ErrEstimateSuperseded)
			},
			status: http.StatusConflict,
			code:   "ESTIMATE_SUPERSEDED",
		},
		{
			name: "duplicate",
			path: "/v1/estimates/est-1/duplicate",
			expect: func(uc *mocks.MockIEstimateUseCase) {
				uc.EXPECT().Duplicate(gomock.Any(), "est-1").Return(sampleResult(entities.EstimateStatusDraft), nil)
			},
			status: http.StatusCreated,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIEstimateUseCase(ctrl)
			h := NewEstimateHandler(uc)

			r := gin.New()
			r.POST("/v1/estimates/:id/recompute", h.Recompute)
			r.POST("/v1/estimates/:id/finalize", h.Finalize)
			r.POST("/v1/estimates/:id/duplicate", h.Duplicate)

			tc.expect(uc)
			w := performRequest(r, http.MethodPost, tc.path, "")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if tc.code != "" {
				if body := decodeError(t, w); body.Code != tc.code {
					t.Fatalf("unexpected code %q", body.Code)
				}
			}
		})
	}
}
