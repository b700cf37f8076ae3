package routes

import (
	"quickbuild_estimate/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathPayments  = "/payments"
)

func addEstimateRoutes(rg *gin.RouterGroup, h Handlers) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", h.Estimate.CreateEstimate)
		estimates.GET("", h.Estimate.ListEstimates)
		estimates.GET("/:id", h.Estimate.GetEstimate)
		estimates.DELETE("/:id", h.Estimate.DeleteEstimate)
		estimates.GET("/:id/breakdown", h.Estimate.GetBreakdown)

		estimates.POST("/:id/bundles/:bundle/toggle", h.Estimate.ToggleBundle)
		estimates.PUT("/:id/bundles/:bundle", h.Estimate.SetBundleInclusion)
		estimates.PUT("/:id/rates", h.Estimate.UpdateRates)
		estimates.PUT("/:id/rate-table", h.Estimate.UpdateRateTable)
		estimates.PUT("/:id/line-items", h.Estimate.ReplaceLineItems)
		estimates.PUT("/:id/areas", h.Estimate.ReplaceAreas)

		estimates.POST("/:id/recompute", h.Estimate.Recompute)
		estimates.POST("/:id/finalize", h.Estimate.Finalize)
		estimates.POST("/:id/duplicate", h.Estimate.Duplicate)

		estimates.POST("/:id/import", h.Import.ImportLineItems)
		estimates.GET("/:id/proposal", h.Proposal.GetProposal)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:estimate_id", h.CreateDeposit)
		payments.GET("/:estimate_id", h.GetLatestPayment)
	}
}
