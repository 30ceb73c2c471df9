package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mathspoint/mathspoint/internal/app/models/dto"
	"github.com/mathspoint/mathspoint/internal/app/services"
	"github.com/mathspoint/mathspoint/internal/middleware"
	"github.com/mathspoint/mathspoint/internal/pkg/apperrors"
)

// PDFController handles the study material library
type PDFController struct {
	pdfService services.PDFService
}

// NewPDFController creates a new PDFController
func NewPDFController(pdfService services.PDFService) *PDFController {
	return &PDFController{pdfService: pdfService}
}

// List returns the active library files
// @Summary List library files
// @Description Returns active files newest upload first. An optional category or search term narrows the listing.
// @Tags library
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Param search query string false "Match name, description or category"
// @Success 200 {object} dto.APIResponse{data=[]models.PDFFile} "Files"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /library [get]
func (c *PDFController) List(ctx *gin.Context) {
	var (
		files interface{}
		err   error
	)
	switch {
	case ctx.Query("search") != "":
		files, err = c.pdfService.Search(ctx, ctx.Query("search"))
	case ctx.Query("category") != "":
		files, err = c.pdfService.GetByCategory(ctx, ctx.Query("category"))
	default:
		files, err = c.pdfService.GetAll(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(files))
}

// Download returns a library file's metadata and bumps its download counter
// @Summary Record a library download
// @Tags library
// @Produce json
// @Security BearerAuth
// @Param id path int true "File ID"
// @Success 200 {object} dto.APIResponse{data=models.PDFFile} "File"
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Router /library/{id}/download [post]
func (c *PDFController) Download(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	file, err := c.pdfService.RecordDownload(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(file))
}

// Upload adds a PDF to the library
// @Summary Upload library file
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param category formData string true "Category"
// @Param description formData string false "Description"
// @Param customName formData string false "Display name (defaults to the file name)"
// @Param file formData file true "PDF file"
// @Success 201 {object} dto.APIResponse{data=models.PDFFile} "Uploaded"
// @Failure 400 {object} dto.ErrorResponse "Invalid form data or file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/pdfs [post]
func (c *PDFController) Upload(ctx *gin.Context) {
	var req dto.UploadPDFRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrFileMissing)
		return
	}

	uploadedBy := ctx.GetString(middleware.ContextEmail)

	pdfFile, err := c.pdfService.Upload(ctx, &req, file, uploadedBy)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(pdfFile))
}

// Update edits a library file's metadata
// @Summary Update library file
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "File ID"
// @Param request body dto.UpdatePDFRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.PDFFile} "Updated"
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Router /admin/pdfs/{id} [put]
func (c *PDFController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePDFRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	pdfFile, err := c.pdfService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(pdfFile))
}

// Delete soft-deletes a library file
// @Summary Delete library file
// @Description Hides the file from listings. The stored object stays in place so existing links keep resolving.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "File ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Router /admin/pdfs/{id} [delete]
func (c *PDFController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.pdfService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "File deleted"}))
}
