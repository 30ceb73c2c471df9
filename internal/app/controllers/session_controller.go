package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mathspoint/mathspoint/internal/app/models/dto"
	"github.com/mathspoint/mathspoint/internal/app/services"
	"github.com/mathspoint/mathspoint/internal/middleware"
	"github.com/mathspoint/mathspoint/internal/pkg/helpers"
)

// SessionController handles login-session telemetry endpoints
type SessionController struct {
	sessionService services.SessionService
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService services.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// List returns sessions for the admin attendance views
// @Summary List login sessions
// @Description Returns sessions newest login first, optionally filtered by student name, email, class or active state.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param studentName query string false "Filter by student name"
// @Param studentEmail query string false "Filter by email"
// @Param studentClass query string false "Filter by class"
// @Param activeOnly query bool false "Only open sessions"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Sessions"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/sessions [get]
func (c *SessionController) List(ctx *gin.Context) {
	var filter dto.SessionFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)

	sessions, err := c.sessionService.List(ctx, &filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(sessions))
}

// GetByID returns a single session
// @Summary Get login session by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} dto.APIResponse{data=models.LoginSession} "Session"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /admin/sessions/{id} [get]
func (c *SessionController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	session, err := c.sessionService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(session))
}

// TrackFeature records that the caller's session used a portal feature
// @Summary Track feature use
// @Description Best-effort telemetry; always succeeds, even when the session cannot be updated.
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TrackFeatureRequest true "Feature name"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /student/session/features [post]
func (c *SessionController) TrackFeature(ctx *gin.Context) {
	var req dto.TrackFeatureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	c.sessionService.TrackFeature(ctx, middleware.SessionIDFromContext(ctx), req.Feature)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Recorded"}))
}

// Heartbeat refreshes the caller's session activity timestamp
// @Summary Session heartbeat
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Recorded"
// @Router /student/session/heartbeat [post]
func (c *SessionController) Heartbeat(ctx *gin.Context) {
	c.sessionService.Heartbeat(ctx, middleware.SessionIDFromContext(ctx))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Recorded"}))
}
