package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mathspoint/mathspoint/internal/app/models/dto"
	"github.com/mathspoint/mathspoint/internal/app/services"
	"github.com/mathspoint/mathspoint/internal/middleware"
)

// AssignmentController handles assignment operations for both portals
type AssignmentController struct {
	assignmentService services.AssignmentService
	sessionService    services.SessionService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService services.AssignmentService, sessionService services.SessionService) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
		sessionService:    sessionService,
	}
}

// GetAll returns every assignment for the admin portal
// @Summary List all assignments
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Assignment} "Assignments"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/assignments [get]
func (c *AssignmentController) GetAll(ctx *gin.Context) {
	assignments, err := c.assignmentService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignments))
}

// GetMine returns the caller's class assignments with their own submissions
// @Summary List my class assignments
// @Description Returns the assignments for the student's class, newest first, each with the caller's own submission attached when one exists.
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AssignmentResponse} "Assignments"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /student/assignments [get]
func (c *AssignmentController) GetMine(ctx *gin.Context) {
	class := ctx.GetString(middleware.ContextStudentClass)
	name := ctx.GetString(middleware.ContextStudentName)

	assignments, err := c.assignmentService.GetForStudent(ctx, class, name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.sessionService.TrackFeature(ctx, middleware.SessionIDFromContext(ctx), "assignments")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignments))
}

// GetByID returns a single assignment, recording the view on the session
// @Summary Get assignment by ID
// @Tags student
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=models.Assignment} "Assignment"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /student/assignments/{id} [get]
func (c *AssignmentController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	assignment, err := c.assignmentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.sessionService.TrackAssignmentView(ctx, middleware.SessionIDFromContext(ctx), strconv.FormatInt(assignment.ID, 10))

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignment))
}

// Create posts a new assignment with an optional attached PDF
// @Summary Create assignment
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param class formData string true "Class (9-12)"
// @Param dueDate formData string true "Due date (RFC 3339)"
// @Param file formData file false "Attached PDF"
// @Success 201 {object} dto.APIResponse{data=models.Assignment} "Created"
// @Failure 400 {object} dto.ErrorResponse "Invalid form data or file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/assignments [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	// The attachment is optional; only a present-but-broken part is an error.
	file, err := ctx.FormFile("file")
	if err != nil && err != http.ErrMissingFile {
		middleware.HandleValidationError(ctx, err)
		return
	}

	createdBy := ctx.GetString(middleware.ContextEmail)

	assignment, err := c.assignmentService.Create(ctx, &req, file, createdBy)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(assignment))
}

// Update edits an assignment
// @Summary Update assignment
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param request body dto.UpdateAssignmentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Assignment} "Updated"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /admin/assignments/{id} [put]
func (c *AssignmentController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	assignment, err := c.assignmentService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignment))
}

// Delete removes an assignment
// @Summary Delete assignment
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /admin/assignments/{id} [delete]
func (c *AssignmentController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.assignmentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Assignment deleted"}))
}
