package handlers

import (
	"fmt"
	"log"
	"net/http"

	"quickbuild_estimate/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProposalHandler serves the bank-facing PDF proposal.
type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// GetProposal godoc
// @Summary      Download the proposal PDF
// @Description  Renders the committed totals. Drafts must be recomputed first. X-Proposal-URL carries the archived copy when archiving is enabled.
// @Tags         estimates
// @Produce      application/pdf
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /estimates/{id}/proposal [get]
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	estimateID := c.Param("id")
	doc, err := h.usecase.Render(c.Request.Context(), estimateID)
	if err != nil {
		log.Printf("[proposal][handler] render failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if doc.URL != "" {
		c.Header("X-Proposal-URL", doc.URL)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.Data(http.StatusOK, "application/pdf", doc.PDF)
}
