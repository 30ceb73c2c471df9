package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mathspoint/mathspoint/internal/app/models"
	"github.com/mathspoint/mathspoint/internal/app/models/dto"
	"github.com/mathspoint/mathspoint/internal/app/services"
	"github.com/mathspoint/mathspoint/internal/middleware"
)

// ContactController handles the public contact form and the admin inbox
type ContactController struct {
	contactService services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// Submit stores an inbound contact message
// @Summary Submit the contact form
// @Description Stores the message and notifies the centre by email. The stored message is the record of truth; a failed email does not fail the submission.
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactMessageRequest true "Contact form"
// @Success 201 {object} dto.APIResponse{data=dto.SuccessResponse} "Submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /contact [post]
func (c *ContactController) Submit(ctx *gin.Context) {
	var req dto.CreateContactMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if _, err := c.contactService.Submit(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Message sent"}))
}

// GetAll returns the admin contact inbox
// @Summary List contact messages
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.ContactMessage} "Messages"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/contact-messages [get]
func (c *ContactController) GetAll(ctx *gin.Context) {
	messages, err := c.contactService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(messages))
}

// UpdateStatus moves a contact message to a new handling status
// @Summary Update contact message status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Param request body dto.UpdateContactStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Updated"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Router /admin/contact-messages/{id}/status [put]
func (c *ContactController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateContactStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.contactService.UpdateStatus(ctx, id, models.ContactStatus(req.Status)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Message updated"}))
}
