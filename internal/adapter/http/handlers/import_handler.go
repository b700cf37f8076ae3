package handlers

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"

	response "quickbuild_estimate/internal/adapter/http/dto/response"
	"quickbuild_estimate/internal/adapter/importer"
	"quickbuild_estimate/internal/domain/costing"
	"quickbuild_estimate/internal/usecase"
	"quickbuild_estimate/pkg"

	"github.com/gin-gonic/gin"
)

// maxImportMemory bounds the multipart form held in memory; larger parts
// spill to temporary files.
const maxImportMemory = 8 << 20

var importParts = []struct {
	field string
	kind  costing.ItemKind
}{
	{field: "materials", kind: costing.ItemKindMaterial},
	{field: "labor", kind: costing.ItemKindLabor},
}

// ImportHandler attaches materials and labor sheets to an estimate.
type ImportHandler struct {
	usecase usecase.IImportUseCase
}

func NewImportHandler(uc usecase.IImportUseCase) *ImportHandler {
	return &ImportHandler{usecase: uc}
}

// ImportLineItems godoc
// @Summary      Import materials and labor sheets
// @Description  Accepts CSV or XLSX files. Each uploaded kind replaces the existing items of that kind.
// @Tags         estimates
// @Accept       multipart/form-data
// @Produce      json
// @Param        id         path      string  true   "Estimate ID"
// @Param        materials  formData  file    false  "Materials sheet"
// @Param        labor      formData  file    false  "Labor sheet"
// @Success      200        {object}  response.EstimateResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /estimates/{id}/import [post]
func (h *ImportHandler) ImportLineItems(c *gin.Context) {
	estimateID := c.Param("id")
	if err := c.Request.ParseMultipartForm(maxImportMemory); err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Expected a multipart form", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var files []usecase.ImportFile
	for _, part := range importParts {
		header, err := c.FormFile(part.field)
		if err != nil {
			continue
		}
		f, err := header.Open()
		if err != nil {
			appErr := pkg.NewDomainError("INVALID_REQUEST", "Unable to read upload", err, http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		defer func(f multipart.File) { _ = f.Close() }(f)
		files = append(files, usecase.ImportFile{Kind: part.kind, FileName: header.Filename, Reader: f})
	}
	log.Printf("[import][handler] start estimate_id=%s files=%d", estimateID, len(files))

	res, err := h.usecase.ImportLineItems(c.Request.Context(), estimateID, files)
	if err != nil {
		log.Printf("[import][handler] failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateResult(res))
}

func mapImportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoImportFiles):
		return pkg.NewDomainError("INVALID_REQUEST", "Upload a materials or labor file", err, http.StatusBadRequest)
	case errors.Is(err, importer.ErrUnsupportedFormat),
		errors.Is(err, importer.ErrEmptySheet),
		errors.Is(err, importer.ErrMissingColumn),
		errors.Is(err, importer.ErrInvalidNumber),
		errors.Is(err, importer.ErrUnreadableFile):
		return pkg.NewDomainError("INVALID_SHEET", "The uploaded sheet could not be imported", err, http.StatusBadRequest)
	default:
		return mapEstimateError(err)
	}
}
