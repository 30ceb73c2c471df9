package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mathspoint/mathspoint/internal/app/models"
	"github.com/mathspoint/mathspoint/internal/app/models/dto"
	"github.com/mathspoint/mathspoint/internal/app/services"
	"github.com/mathspoint/mathspoint/internal/middleware"
	"github.com/mathspoint/mathspoint/internal/pkg/apperrors"
)

// SubmissionController handles submission upload and grading operations
type SubmissionController struct {
	submissionService services.SubmissionService
	sessionService    services.SessionService
}

// NewSubmissionController creates a new SubmissionController
func NewSubmissionController(submissionService services.SubmissionService, sessionService services.SessionService) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
		sessionService:    sessionService,
	}
}

// Submit uploads an answer to an assignment
// @Summary Submit work for an assignment
// @Description Validates and stores the uploaded file and records the submission under the caller's student name. Submitting again creates another record.
// @Tags student
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param file formData file true "Answer file (PDF, Word, text or image)"
// @Success 201 {object} dto.APIResponse{data=models.Submission} "Submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid file"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /student/assignments/{id}/submissions [post]
func (c *SubmissionController) Submit(ctx *gin.Context) {
	assignmentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrFileMissing)
		return
	}

	name := ctx.GetString(middleware.ContextStudentName)
	class := ctx.GetString(middleware.ContextStudentClass)

	submission, err := c.submissionService.Submit(ctx, assignmentID, name, class, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.sessionService.TrackSubmission(ctx, middleware.SessionIDFromContext(ctx), strconv.FormatInt(submission.ID, 10))

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(submission))
}

// GetMine returns the caller's submissions
// @Summary List my submissions
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Submission} "Submissions"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /student/submissions [get]
func (c *SubmissionController) GetMine(ctx *gin.Context) {
	name := ctx.GetString(middleware.ContextStudentName)

	submissions, err := c.submissionService.GetByStudentName(ctx, name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(submissions))
}

// GetByAssignment returns all submissions for an assignment
// @Summary List submissions for an assignment
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Submission} "Submissions"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/assignments/{id}/submissions [get]
func (c *SubmissionController) GetByAssignment(ctx *gin.Context) {
	assignmentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	submissions, err := c.submissionService.GetByAssignment(ctx, assignmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(submissions))
}

// Grade records a grade and feedback on a submission
// @Summary Grade a submission
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Param request body dto.GradeSubmissionRequest true "Grade and feedback"
// @Success 200 {object} dto.APIResponse{data=models.Submission} "Graded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /admin/submissions/{id}/grade [put]
func (c *SubmissionController) Grade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.GradeSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	gradedBy := ctx.GetString(middleware.ContextEmail)

	submission, err := c.submissionService.Grade(ctx, id, &req, gradedBy)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(submission))
}

// UpdateStatus moves a submission to a new status
// @Summary Update submission status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Param request body dto.UpdateSubmissionStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Updated"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /admin/submissions/{id}/status [put]
func (c *SubmissionController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubmissionStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.submissionService.UpdateStatus(ctx, id, models.SubmissionStatus(req.Status)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Submission updated"}))
}
