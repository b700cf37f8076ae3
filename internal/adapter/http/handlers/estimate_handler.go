package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "quickbuild_estimate/internal/adapter/http/dto/request"
	response "quickbuild_estimate/internal/adapter/http/dto/response"
	"quickbuild_estimate/internal/domain/costing"
	"quickbuild_estimate/internal/domain/entities"
	"quickbuild_estimate/internal/usecase"
	"quickbuild_estimate/internal/usecase/interfaces"
	"quickbuild_estimate/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for construction estimates.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate godoc
// @Summary      Create an estimate
// @Description  Creates an estimate from a structured takeoff, prices it and returns the committed totals.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        estimate  body      request.CreateEstimateRequest  true  "Estimate takeoff"
// @Success      201       {object}  response.EstimateResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEstimatePayload.WithDetail(err))
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	res, err := h.usecase.CreateEstimate(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimateResult(res))
}

// GetEstimate godoc
// @Summary  Get an estimate
// @Tags     estimates
// @Produce  json
// @Param    id   path      string  true  "Estimate ID"
// @Success  200  {object}  response.EstimateResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	res, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateResult(res))
}

// ListEstimates godoc
// @Summary  List estimates
// @Tags     estimates
// @Produce  json
// @Success  200  {array}  response.EstimateSummaryResponse
// @Router   /estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	out := make([]response.EstimateSummaryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, response.FromEstimateSummary(e))
	}
	c.JSON(http.StatusOK, out)
}

// GetBreakdown godoc
// @Summary  Detailed cost breakdown
// @Tags     estimates
// @Produce  json
// @Param    id   path      string  true  "Estimate ID"
// @Success  200  {object}  response.BreakdownResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /estimates/{id}/breakdown [get]
func (h *EstimateHandler) GetBreakdown(c *gin.Context) {
	b, err := h.usecase.Breakdown(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBreakdown(b))
}

// ToggleBundle godoc
// @Summary  Flip a bundle between included and excluded
// @Tags     bundles
// @Produce  json
// @Param    id      path      string  true  "Estimate ID"
// @Param    bundle  path      string  true  "Bundle name"
// @Success  200     {object}  response.EstimateResponse
// @Failure  404     {object}  pkg.HTTPError
// @Failure  409     {object}  pkg.HTTPError
// @Router   /estimates/{id}/bundles/{bundle}/toggle [post]
func (h *EstimateHandler) ToggleBundle(c *gin.Context) {
	res, err := h.usecase.ToggleBundle(c.Request.Context(), c.Param("id"), c.Param("bundle"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateResult(res))
}

// SetBundleInclusion godoc
// @Summary  Include or exclude a bundle
// @Tags     bundles
// @Accept   json
// @Produce  json
// @Param    id       path      string                          true  "Estimate ID"
// @Param    bundle   path      string                          true  "Bundle name"
// @Param    payload  body      request.BundleInclusionRequest  true  "Inclusion flag"
// @Success  200      {object}  response.EstimateResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  409      {object}  pkg.HTTPError
// @Router   /estimates/{id}/bundles/{bundle} [put]
func (h *EstimateHandler) SetBundleInclusion(c *gin.Context) {
	var payload request.BundleInclusionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEstimatePayload.WithDetail(err))
		return
	}
	res, err := h.usecase.SetBundleInclusion(c.Request.Context(), c.Param("id"), c.Param("bundle"), *payload.Included)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateResult(res))
}

// UpdateRates godoc
// @Summary  Set profit and contingency percentages
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    id       path      string                true  "Estimate ID"
// @Param    payload  body      request.RatesRequest  true  "Adjustment rates"
// @Success  200      {object}  response.EstimateResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  409      {object}  pkg.HTTPError
// @Router   /estimates/{id}/rates [put]
func (h *EstimateHandler) UpdateRates(c *gin.Context) {
	var payload request.RatesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEstimatePayload.WithDetail(err))
		return
	}
	res, err := h.usecase.UpdateRates(c.Request.Context(), c.Param("id"), payload.ToRates())
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateResult(res))
}

// UpdateRateTable godoc
// @Summary  Override price-per-square-foot rates
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    id       path      string                    true  "Estimate ID"
// @Param    payload  body      request.RateTableRequest  true  "Rates keyed by category"
// @Success  200      {object}  response.EstimateResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  409      {object}  pkg.HTTPError
// @Router   /estimates/{id}/rate-table [put]
func (h *EstimateHandler) UpdateRateTable(c *gin.Context) {
	var payload request.RateTableRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEstimatePayload.WithDetail(err))
		return
	}
	table, err := payload.ToRateTable()
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	res, err := h.usecase.UpdateRateTable(c.Request.Context(), c.Param("id"), table)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateResult(res))
}

// ReplaceLineItems godoc
// @Summary  Replace the estimate line items
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    id       path      string                    true  "Estimate ID"
// @Param    payload  body      request.LineItemsRequest  true  "Line items"
// @Success  200      {object}  response.EstimateResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  409      {object}  pkg.HTTPError
// @Router   /estimates/{id}/line-items [put]
func (h *EstimateHandler) ReplaceLineItems(c *gin.Context) {
	var payload request.LineItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEstimatePayload.WithDetail(err))
		return
	}
	res, err := h.usecase.ReplaceLineItems(c.Request.Context(), c.Param("id"), request.ToLineItems(payload.Items))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateResult(res))
}

// ReplaceAreas godoc
// @Summary  Replace the estimate takeoff areas
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    id       path      string                true  "Estimate ID"
// @Param    payload  body      request.AreasRequest  true  "Areas"
// @Success  200      {object}  response.EstimateResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  409      {object}  pkg.HTTPError
// @Router   /estimates/{id}/areas [put]
func (h *EstimateHandler) ReplaceAreas(c *gin.Context) {
	var payload request.AreasRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEstimatePayload.WithDetail(err))
		return
	}
	areas, err := payload.ToAreas()
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	res, err := h.usecase.ReplaceAreas(c.Request.Context(), c.Param("id"), areas)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateResult(res))
}

// Recompute godoc
// @Summary  Recompute and commit totals
// @Tags     estimates
// @Produce  json
// @Param    id   path      string  true  "Estimate ID"
// @Success  200  {object}  response.EstimateResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /estimates/{id}/recompute [post]
func (h *EstimateHandler) Recompute(c *gin.Context) {
	h.transition(c, h.usecase.Recompute)
}

// Finalize godoc
// @Summary  Lock a priced estimate
// @Tags     estimates
// @Produce  json
// @Param    id   path      string  true  "Estimate ID"
// @Success  200  {object}  response.EstimateResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /estimates/{id}/finalize [post]
func (h *EstimateHandler) Finalize(c *gin.Context) {
	h.transition(c, h.usecase.Finalize)
}

// Duplicate godoc
// @Summary  Copy an estimate into a new priced estimate
// @Tags     estimates
// @Produce  json
// @Param    id   path      string  true  "Estimate ID"
// @Success  201  {object}  response.EstimateResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /estimates/{id}/duplicate [post]
func (h *EstimateHandler) Duplicate(c *gin.Context) {
	res, err := h.usecase.Duplicate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimateResult(res))
}

// DeleteEstimate godoc
// @Summary  Delete a draft or priced estimate
// @Tags     estimates
// @Param    id   path  string  true  "Estimate ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /estimates/{id} [delete]
func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EstimateHandler) transition(
	c *gin.Context,
	step func(ctx context.Context, id string) (usecase.EstimateResult, error),
) {
	res, err := step(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateResult(res))
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[estimate][handler] %s %s failed err=%v", c.Request.Method, c.FullPath(), appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, costing.ErrUnknownCategory):
		return pkg.NewDomainError("UNKNOWN_CATEGORY", "Unknown area category", err, http.StatusBadRequest)
	case errors.Is(err, costing.ErrNegativeQuantityOrCost), errors.Is(err, costing.ErrNegativeArea):
		return pkg.NewDomainError("NEGATIVE_QUANTITY_OR_COST", "Quantities, costs and areas must not be negative", err, http.StatusBadRequest)
	case errors.Is(err, costing.ErrInvalidRate), errors.Is(err, costing.ErrInvalidRateTable):
		return pkg.NewDomainError("INVALID_RATE", "Invalid rate", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidEstimateName):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBundleNotFound):
		return pkg.NewDomainErrorSimple("BUNDLE_NOT_FOUND", "Bundle not found", http.StatusNotFound)
	case errors.Is(err, costing.ErrEstimateLocked):
		return pkg.NewDomainErrorSimple("ESTIMATE_LOCKED", "Estimate is finalized and can no longer change", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateSuperseded):
		return pkg.NewDomainErrorSimple("ESTIMATE_SUPERSEDED", "Estimate has expired", http.StatusConflict)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Estimate was modified concurrently, reload and retry", http.StatusConflict)
	case errors.Is(err, entities.ErrEstimateNotPriced):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_PRICED", "Estimate must be recomputed first", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotFinalized):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FINALIZED", "Estimate not finalized", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
