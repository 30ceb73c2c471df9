package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mathspoint/mathspoint/internal/app/models/dto"
	"github.com/mathspoint/mathspoint/internal/app/services"
	"github.com/mathspoint/mathspoint/internal/middleware"
)

// PortalController handles portal login and student directory operations
type PortalController struct {
	portalService  services.PortalService
	sessionService services.SessionService
}

// NewPortalController creates a new PortalController
func NewPortalController(portalService services.PortalService, sessionService services.SessionService) *PortalController {
	return &PortalController{
		portalService:  portalService,
		sessionService: sessionService,
	}
}

// AdminLogin handles the admin portal gate
// @Summary Admin portal login
// @Description Checks the shared admin password and returns a portal token. The admin record for the email is created on first login.
// @Tags portal
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Login form"
// @Success 200 {object} dto.APIResponse{data=dto.AdminLoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Incorrect password"
// @Router /portal/admin/login [post]
func (c *PortalController) AdminLogin(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	response, err := c.portalService.AdminLogin(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// StudentLogin handles the student portal gate
// @Summary Student portal login
// @Description Checks the class passphrase and returns a portal token. The student record for the email is created on first login and a telemetry session is opened best-effort.
// @Tags portal
// @Accept json
// @Produce json
// @Param request body dto.StudentLoginRequest true "Login form"
// @Success 200 {object} dto.APIResponse{data=dto.StudentLoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or unknown class"
// @Failure 401 {object} dto.ErrorResponse "Incorrect password"
// @Router /portal/student/login [post]
func (c *PortalController) StudentLogin(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	client := services.ClientInfo{
		IPAddress:   ctx.ClientIP(),
		UserAgent:   ctx.GetHeader("User-Agent"),
		BrowserInfo: ctx.GetHeader("Sec-Ch-Ua"),
		DeviceType:  ctx.GetHeader("Sec-Ch-Ua-Platform"),
	}

	response, err := c.portalService.StudentLogin(ctx, &req, client)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// PasswordHint returns the hint text for a class login form
// @Summary Class password hint
// @Description Returns the hint shown next to the student login form for a class.
// @Tags portal
// @Produce json
// @Param class query string true "Class (9-12)"
// @Success 200 {object} dto.APIResponse{data=dto.PasswordHintResponse} "Hint"
// @Router /portal/password-hint [get]
func (c *PortalController) PasswordHint(ctx *gin.Context) {
	class := ctx.Query("class")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.portalService.PasswordHint(class)))
}

// StudentLogout closes the caller's telemetry session
// @Summary Student portal logout
// @Description Ends the telemetry session attached to the token, stamping logout time and duration. Logging out with no open session succeeds.
// @Tags portal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Logged out"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /portal/student/logout [post]
func (c *PortalController) StudentLogout(ctx *gin.Context) {
	sessionID := middleware.SessionIDFromContext(ctx)
	if sessionID != 0 {
		if err := c.sessionService.End(ctx, sessionID); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Logged out"}))
}

// ListStudents returns the student directory for the admin portal
// @Summary List students
// @Description Returns every student record, newest enrollment first.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/students [get]
func (c *PortalController) ListStudents(ctx *gin.Context) {
	students, err := c.portalService.ListStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students))
}
