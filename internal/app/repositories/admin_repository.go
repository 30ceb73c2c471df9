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

// AdminRepository handles database operations for Admin.
type AdminRepository struct {
	DB *pgxpool.Pool
}

// NewAdminRepository creates a new instance of AdminRepository.
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) selectQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "email", "role", "first_name", "last_name", "permissions",
		"last_login", "created_at",
	).From("admins").
		PlaceholderFormat(squirrel.Dollar)
}

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	var a models.Admin
	err := row.Scan(
		&a.ID, &a.Email, &a.Role, &a.FirstName, &a.LastName, &a.Permissions,
		&a.LastLogin, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new admin record and returns its id.
func (r *AdminRepository) Create(ctx context.Context, a *models.Admin) (int64, error) {
	sql, args, err := squirrel.Insert("admins").
		Columns("email", "role", "first_name", "last_name", "permissions").
		Values(a.Email, a.Role, a.FirstName, a.LastName, a.Permissions).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create admin SQL")
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create admin query")
		return 0, err
	}
	return id, nil
}

// GetByEmail is a best-effort single-row lookup: it returns (nil, nil) when
// no admin matches.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	sqlStr, args, err := r.selectQuery().Where(squirrel.Eq{"email": email}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get admin by email SQL")
		return nil, err
	}

	a, err := scanAdmin(r.DB.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		logger.Error().Err(err).Msg("Error executing get admin by email query")
		return nil, err
	}
	return a, nil
}

// UpdateLastLogin stamps an admin's last login time.
func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Update("admins").
		Set("last_login", time.Now()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update admin last login SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update admin last login query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}
	return nil
}
