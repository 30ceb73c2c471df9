package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/mathspoint/mathspoint/internal/app/models"
	"github.com/mathspoint/mathspoint/internal/app/models/dto"
	"github.com/mathspoint/mathspoint/internal/app/repositories"
	"github.com/mathspoint/mathspoint/internal/pkg/apperrors"
	"github.com/mathspoint/mathspoint/internal/pkg/filestorage"
	"github.com/mathspoint/mathspoint/internal/pkg/logger"
)

// AssignmentService defines the interface for assignment operations
type AssignmentService interface {
	GetAll(ctx context.Context) ([]*models.Assignment, error)
	GetForStudent(ctx context.Context, class, studentName string) ([]dto.AssignmentResponse, error)
	GetByID(ctx context.Context, id int64) (*models.Assignment, error)
	Create(ctx context.Context, req *dto.CreateAssignmentRequest, file *multipart.FileHeader, createdBy string) (*models.Assignment, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAssignmentRequest) (*models.Assignment, error)
	Delete(ctx context.Context, id int64) error
}

// assignmentServiceImpl implements AssignmentService
type assignmentServiceImpl struct {
	assignmentRepo *repositories.AssignmentRepository
	submissionRepo *repositories.SubmissionRepository
	storage        filestorage.FileStorage
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(
	assignmentRepo *repositories.AssignmentRepository,
	submissionRepo *repositories.SubmissionRepository,
	storage filestorage.FileStorage,
) AssignmentService {
	return &assignmentServiceImpl{
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
		storage:        storage,
	}
}

// GetAll retrieves every assignment across all classes, newest first
func (s *assignmentServiceImpl) GetAll(ctx context.Context) ([]*models.Assignment, error) {
	return s.assignmentRepo.GetAll(ctx)
}

// GetForStudent retrieves the assignments for a class, with the viewing
// student's own submission attached to each. Submissions are matched by the
// student name string.
func (s *assignmentServiceImpl) GetForStudent(ctx context.Context, class, studentName string) ([]dto.AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.GetByClass(ctx, class)
	if err != nil {
		return nil, fmt.Errorf("error getting assignments: %w", err)
	}

	submissions, err := s.submissionRepo.GetByStudentName(ctx, studentName)
	if err != nil {
		return nil, fmt.Errorf("error getting submissions: %w", err)
	}
	byAssignment := make(map[int64]*models.Submission, len(submissions))
	for _, sub := range submissions {
		if _, ok := byAssignment[sub.AssignmentID]; !ok {
			byAssignment[sub.AssignmentID] = sub
		}
	}

	responses := make([]dto.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, dto.AssignmentResponse{
			Assignment: *a,
			Submission: byAssignment[a.ID],
		})
	}
	return responses, nil
}

// GetByID retrieves an assignment by ID
func (s *assignmentServiceImpl) GetByID(ctx context.Context, id int64) (*models.Assignment, error) {
	return s.assignmentRepo.GetByID(ctx, id)
}

// Create creates a new assignment, storing the attached PDF if one was sent
func (s *assignmentServiceImpl) Create(ctx context.Context, req *dto.CreateAssignmentRequest, file *multipart.FileHeader, createdBy string) (*models.Assignment, error) {
	dueDate, err := dto.ParseDueDate(req.DueDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("invalid due date: %s", req.DueDate))
	}

	// Reject a bad attachment before any row exists.
	if file != nil {
		if err := filestorage.ValidatePDFFile(file); err != nil {
			return nil, err
		}
	}

	assignment := &models.Assignment{
		Title:       req.Title,
		Description: req.Description,
		Class:       req.Class,
		DueDate:     dueDate,
		CreatedBy:   createdBy,
	}

	id, err := s.assignmentRepo.Create(ctx, assignment)
	if err != nil {
		return nil, fmt.Errorf("error creating assignment: %w", err)
	}
	assignment.ID = id

	if file != nil {
		result, err := s.storage.SaveAssignmentPDF(file, id)
		if err != nil {
			// Roll back the row so a failed upload does not leave a
			// half-created assignment behind.
			if delErr := s.assignmentRepo.Delete(ctx, id); delErr != nil {
				logger.Error().Err(delErr).Int64("assignmentId", id).Msg("Failed to remove assignment after upload failure")
			}
			return nil, fmt.Errorf("error storing assignment file: %w", err)
		}
		assignment.PDFURL = &result.URL
		if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
			return nil, fmt.Errorf("error attaching assignment file: %w", err)
		}
	}

	return s.assignmentRepo.GetByID(ctx, id)
}

// Update applies the non-nil fields of req to an existing assignment
func (s *assignmentServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateAssignmentRequest) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		assignment.Title = *req.Title
	}
	if req.Description != nil {
		assignment.Description = *req.Description
	}
	if req.Class != nil {
		assignment.Class = *req.Class
	}
	if req.DueDate != nil {
		dueDate, err := dto.ParseDueDate(*req.DueDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("invalid due date: %s", *req.DueDate))
		}
		assignment.DueDate = dueDate
	}

	if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
		return nil, fmt.Errorf("error updating assignment: %w", err)
	}
	return s.assignmentRepo.GetByID(ctx, id)
}

// Delete removes an assignment. The stored attachment, if any, is left in
// place so already-issued links keep resolving.
func (s *assignmentServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.assignmentRepo.Delete(ctx, id)
}
