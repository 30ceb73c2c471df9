package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mathspoint/mathspoint/internal/app/models/dto"
	"github.com/mathspoint/mathspoint/internal/app/services"
	"github.com/mathspoint/mathspoint/internal/middleware"
)

// PreferenceController handles login auto-fill preference storage. The
// payload is opaque JSON stored verbatim under a caller-chosen key.
type PreferenceController struct {
	preferenceService services.PreferenceService
}

// NewPreferenceController creates a new PreferenceController
func NewPreferenceController(preferenceService services.PreferenceService) *PreferenceController {
	return &PreferenceController{preferenceService: preferenceService}
}

// Save stores the remembered login form values for a user key
// @Summary Save login preferences
// @Tags preferences
// @Accept json
// @Produce json
// @Param userKey path string true "User key"
// @Param request body dto.SaveLoginPreferencesRequest true "Preferences payload"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /preferences/{userKey} [put]
func (c *PreferenceController) Save(ctx *gin.Context) {
	var req dto.SaveLoginPreferencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.preferenceService.Save(ctx, ctx.Param("userKey"), req.Preferences); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Preferences saved"}))
}

// Get returns the stored payload for a user key
// @Summary Get login preferences
// @Description Returns the stored payload, or null when nothing is remembered.
// @Tags preferences
// @Produce json
// @Param userKey path string true "User key"
// @Success 200 {object} dto.APIResponse{data=dto.LoginPreferencesResponse} "Preferences"
// @Router /preferences/{userKey} [get]
func (c *PreferenceController) Get(ctx *gin.Context) {
	prefs, err := c.preferenceService.Get(ctx, ctx.Param("userKey"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.LoginPreferencesResponse{Preferences: prefs}))
}

// Clear forgets the remembered values for a user key
// @Summary Clear login preferences
// @Tags preferences
// @Produce json
// @Param userKey path string true "User key"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Cleared"
// @Router /preferences/{userKey} [delete]
func (c *PreferenceController) Clear(ctx *gin.Context) {
	if err := c.preferenceService.Clear(ctx, ctx.Param("userKey")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Preferences cleared"}))
}
