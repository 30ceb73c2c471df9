package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mathspoint/mathspoint/internal/app/models"
	"github.com/mathspoint/mathspoint/internal/pkg/apperrors"
	"github.com/mathspoint/mathspoint/internal/pkg/logger"
)

// AssignmentRepository handles database operations for Assignment.
type AssignmentRepository struct {
	DB *pgxpool.Pool
}

// NewAssignmentRepository creates a new instance of AssignmentRepository.
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) selectQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "title", "description", "class", "due_date", "created_by",
		"pdf_url", "created_at", "updated_at",
	).From("assignments").
		PlaceholderFormat(squirrel.Dollar)
}

func scanAssignment(row pgx.Row) (*models.Assignment, error) {
	var a models.Assignment
	err := row.Scan(
		&a.ID, &a.Title, &a.Description, &a.Class, &a.DueDate, &a.CreatedBy,
		&a.PDFURL, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAssignmentNotFound
		}
		logger.Error().Err(err).Msg("Error scanning assignment")
		return nil, err
	}
	return &a, nil
}

// Create inserts a new assignment and returns its id.
func (r *AssignmentRepository) Create(ctx context.Context, a *models.Assignment) (int64, error) {
	sql, args, err := squirrel.Insert("assignments").
		Columns("title", "description", "class", "due_date", "created_by", "pdf_url").
		Values(a.Title, a.Description, a.Class, a.DueDate, a.CreatedBy, a.PDFURL).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create assignment SQL")
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create assignment query")
		return 0, err
	}
	return id, nil
}

// GetAll returns every assignment, most recent first.
func (r *AssignmentRepository) GetAll(ctx context.Context) ([]*models.Assignment, error) {
	return r.list(ctx, r.selectQuery().OrderBy("created_at DESC"))
}

// GetByClass returns the assignments targeted at one class, most recent first.
func (r *AssignmentRepository) GetByClass(ctx context.Context, class string) ([]*models.Assignment, error) {
	return r.list(ctx, r.selectQuery().Where(squirrel.Eq{"class": class}).OrderBy("created_at DESC"))
}

func (r *AssignmentRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Assignment, error) {
	sqlStr, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list assignments SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list assignments query")
		return nil, err
	}
	defer rows.Close()

	assignments := make([]*models.Assignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating assignment rows")
		return nil, err
	}
	return assignments, nil
}

// GetByID returns one assignment.
func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*models.Assignment, error) {
	sqlStr, args, err := r.selectQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get assignment by ID SQL")
		return nil, err
	}
	return scanAssignment(r.DB.QueryRow(ctx, sqlStr, args...))
}

// Update rewrites an assignment's editable fields and bumps updated_at.
func (r *AssignmentRepository) Update(ctx context.Context, a *models.Assignment) error {
	sql, args, err := squirrel.Update("assignments").
		Set("title", a.Title).
		Set("description", a.Description).
		Set("class", a.Class).
		Set("due_date", a.DueDate).
		Set("pdf_url", a.PDFURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": a.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update assignment SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update assignment query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}
	return nil
}

// Delete removes an assignment by id.
func (r *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("assignments").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete assignment SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete assignment query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}
	return nil
}
