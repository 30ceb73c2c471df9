package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/mathspoint/mathspoint/internal/app/models"
	"github.com/mathspoint/mathspoint/internal/app/models/dto"
	"github.com/mathspoint/mathspoint/internal/app/repositories"
	"github.com/mathspoint/mathspoint/internal/pkg/filestorage"
	"github.com/mathspoint/mathspoint/internal/pkg/logger"
)

// SubmissionService defines the interface for submission operations
type SubmissionService interface {
	Submit(ctx context.Context, assignmentID int64, studentName, studentClass string, file *multipart.FileHeader) (*models.Submission, error)
	GetByAssignment(ctx context.Context, assignmentID int64) ([]*models.Submission, error)
	GetByStudentName(ctx context.Context, studentName string) ([]*models.Submission, error)
	GetByID(ctx context.Context, id int64) (*models.Submission, error)
	Grade(ctx context.Context, id int64, req *dto.GradeSubmissionRequest, gradedBy string) (*models.Submission, error)
	UpdateStatus(ctx context.Context, id int64, status models.SubmissionStatus) error
}

// submissionServiceImpl implements SubmissionService
type submissionServiceImpl struct {
	submissionRepo *repositories.SubmissionRepository
	assignmentRepo *repositories.AssignmentRepository
	storage        filestorage.FileStorage
}

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(
	submissionRepo *repositories.SubmissionRepository,
	assignmentRepo *repositories.AssignmentRepository,
	storage filestorage.FileStorage,
) SubmissionService {
	return &submissionServiceImpl{
		submissionRepo: submissionRepo,
		assignmentRepo: assignmentRepo,
		storage:        storage,
	}
}

// Submit validates and stores an uploaded answer, then records the
// submission. A student can submit to the same assignment more than once;
// each upload becomes its own record.
func (s *submissionServiceImpl) Submit(ctx context.Context, assignmentID int64, studentName, studentClass string, file *multipart.FileHeader) (*models.Submission, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	if err := filestorage.ValidateSubmissionFile(file); err != nil {
		return nil, err
	}

	result, err := s.storage.SaveSubmissionFile(file, assignment.ID, studentName)
	if err != nil {
		return nil, fmt.Errorf("error storing submission file: %w", err)
	}

	submission := &models.Submission{
		AssignmentID: assignment.ID,
		StudentName:  studentName,
		StudentClass: studentClass,
		FileName:     file.Filename,
		FileURL:      result.URL,
		FileSize:     result.Size,
		FileType:     file.Header.Get("Content-Type"),
		Status:       models.SubmissionSubmitted,
	}

	id, err := s.submissionRepo.Create(ctx, submission)
	if err != nil {
		if delErr := s.storage.DeleteFile(result.ObjectPath); delErr != nil {
			logger.Warn().Err(delErr).Str("path", result.ObjectPath).Msg("Failed to remove orphaned submission file")
		}
		return nil, fmt.Errorf("error creating submission: %w", err)
	}

	return s.submissionRepo.GetByID(ctx, id)
}

// GetByAssignment retrieves all submissions for an assignment, newest first
func (s *submissionServiceImpl) GetByAssignment(ctx context.Context, assignmentID int64) ([]*models.Submission, error) {
	return s.submissionRepo.GetByAssignment(ctx, assignmentID)
}

// GetByStudentName retrieves all submissions made under a student name
func (s *submissionServiceImpl) GetByStudentName(ctx context.Context, studentName string) ([]*models.Submission, error) {
	return s.submissionRepo.GetByStudentName(ctx, studentName)
}

// GetByID retrieves a submission by ID
func (s *submissionServiceImpl) GetByID(ctx context.Context, id int64) (*models.Submission, error) {
	return s.submissionRepo.GetByID(ctx, id)
}

// Grade records a grade and feedback on a submission and marks it graded
func (s *submissionServiceImpl) Grade(ctx context.Context, id int64, req *dto.GradeSubmissionRequest, gradedBy string) (*models.Submission, error) {
	if err := s.submissionRepo.Grade(ctx, id, req.Grade, req.Feedback, gradedBy); err != nil {
		return nil, err
	}
	return s.submissionRepo.GetByID(ctx, id)
}

// UpdateStatus moves a submission to a new status
func (s *submissionServiceImpl) UpdateStatus(ctx context.Context, id int64, status models.SubmissionStatus) error {
	return s.submissionRepo.UpdateStatus(ctx, id, status)
}
