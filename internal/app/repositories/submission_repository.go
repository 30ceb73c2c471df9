package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mathspoint/mathspoint/internal/app/models"
	"github.com/mathspoint/mathspoint/internal/pkg/apperrors"
	"github.com/mathspoint/mathspoint/internal/pkg/logger"
)

// SubmissionRepository handles database operations for Submission.
type SubmissionRepository struct {
	DB *pgxpool.Pool
}

// NewSubmissionRepository creates a new instance of SubmissionRepository.
func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) selectQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "assignment_id", "student_name", "student_class",
		"file_name", "file_url", "file_size", "file_type",
		"status", "grade", "feedback", "graded_by", "graded_at", "submitted_at",
	).From("submissions").
		PlaceholderFormat(squirrel.Dollar)
}

func scanSubmission(row pgx.Row) (*models.Submission, error) {
	var s models.Submission
	err := row.Scan(
		&s.ID, &s.AssignmentID, &s.StudentName, &s.StudentClass,
		&s.FileName, &s.FileURL, &s.FileSize, &s.FileType,
		&s.Status, &s.Grade, &s.Feedback, &s.GradedBy, &s.GradedAt, &s.SubmittedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSubmissionNotFound
		}
		logger.Error().Err(err).Msg("Error scanning submission")
		return nil, err
	}
	return &s, nil
}

// Create inserts a new submission and returns its id. There is deliberately
// no uniqueness constraint on (assignment_id, student_name): the original
// system allows duplicates and the UI just shows the newest match.
func (r *SubmissionRepository) Create(ctx context.Context, s *models.Submission) (int64, error) {
	sql, args, err := squirrel.Insert("submissions").
		Columns("assignment_id", "student_name", "student_class",
			"file_name", "file_url", "file_size", "file_type", "status").
		Values(s.AssignmentID, s.StudentName, s.StudentClass,
			s.FileName, s.FileURL, s.FileSize, s.FileType, s.Status).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create submission SQL")
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create submission query")
		return 0, err
	}
	return id, nil
}

// GetByAssignment returns all submissions for an assignment, newest first.
func (r *SubmissionRepository) GetByAssignment(ctx context.Context, assignmentID int64) ([]*models.Submission, error) {
	return r.list(ctx, r.selectQuery().
		Where(squirrel.Eq{"assignment_id": assignmentID}).
		OrderBy("submitted_at DESC"))
}

// GetByStudentName returns all submissions matched by student-name string
// equality, newest first.
func (r *SubmissionRepository) GetByStudentName(ctx context.Context, studentName string) ([]*models.Submission, error) {
	return r.list(ctx, r.selectQuery().
		Where(squirrel.Eq{"student_name": studentName}).
		OrderBy("submitted_at DESC"))
}

func (r *SubmissionRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Submission, error) {
	sqlStr, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list submissions SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list submissions query")
		return nil, err
	}
	defer rows.Close()

	submissions := make([]*models.Submission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating submission rows")
		return nil, err
	}
	return submissions, nil
}

// GetByID returns one submission.
func (r *SubmissionRepository) GetByID(ctx context.Context, id int64) (*models.Submission, error) {
	sqlStr, args, err := r.selectQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get submission by ID SQL")
		return nil, err
	}
	return scanSubmission(r.DB.QueryRow(ctx, sqlStr, args...))
}

// UpdateStatus sets a submission's status.
func (r *SubmissionRepository) UpdateStatus(ctx context.Context, id int64, status models.SubmissionStatus) error {
	sql, args, err := squirrel.Update("submissions").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update submission status SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update submission status query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubmissionNotFound
	}
	return nil
}

// Grade records a grade, feedback and grader, and moves the submission to
// graded.
func (r *SubmissionRepository) Grade(ctx context.Context, id int64, grade int, feedback, gradedBy string) error {
	sql, args, err := squirrel.Update("submissions").
		Set("grade", grade).
		Set("feedback", feedback).
		Set("graded_by", gradedBy).
		Set("graded_at", time.Now()).
		Set("status", models.SubmissionGraded).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building grade submission SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing grade submission query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubmissionNotFound
	}
	return nil
}
