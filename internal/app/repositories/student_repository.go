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

// StudentRepository handles database operations for Student.
type StudentRepository struct {
	DB *pgxpool.Pool
}

// NewStudentRepository creates a new instance of StudentRepository.
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) selectQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "student_id", "student_class", "email", "first_name", "last_name",
		"phone", "status", "enrollment_date", "last_login",
	).From("students").
		PlaceholderFormat(squirrel.Dollar)
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.StudentID, &s.StudentClass, &s.Email, &s.FirstName, &s.LastName,
		&s.Phone, &s.Status, &s.EnrollmentDate, &s.LastLogin,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new student record and returns its id.
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) (int64, error) {
	sql, args, err := squirrel.Insert("students").
		Columns("student_id", "student_class", "email", "status").
		Values(s.StudentID, s.StudentClass, s.Email, models.StudentActive).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, err
	}
	return id, nil
}

// GetByEmail is a best-effort single-row lookup: it returns (nil, nil) when
// no student matches, mirroring a maybe-single query.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	sqlStr, args, err := r.selectQuery().Where(squirrel.Eq{"email": email}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by email SQL")
		return nil, err
	}

	s, err := scanStudent(r.DB.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		logger.Error().Err(err).Msg("Error executing get student by email query")
		return nil, err
	}
	return s, nil
}

// GetAll returns every student, most recently enrolled first.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	sqlStr, args, err := r.selectQuery().OrderBy("enrollment_date DESC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all students SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all students query")
		return nil, err
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return nil, err
		}
		students = append(students, s)
	}
	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, err
	}
	return students, nil
}

// UpdateLastLogin stamps a student's last login time.
func (r *StudentRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Update("students").
		Set("last_login", time.Now()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student last login SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update student last login query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
