package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mathspoint/mathspoint/internal/app/models"
	"github.com/mathspoint/mathspoint/internal/pkg/logger"
)

// PreferenceRepository handles database operations for UserPreference.
type PreferenceRepository struct {
	DB *pgxpool.Pool
}

// NewPreferenceRepository creates a new instance of PreferenceRepository.
func NewPreferenceRepository(db *pgxpool.Pool) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

// Upsert stores the remembered login form values for a user key, replacing
// any previous payload.
func (r *PreferenceRepository) Upsert(ctx context.Context, userKey string, prefs []byte) error {
	sql, args, err := squirrel.Insert("user_preferences").
		Columns("user_key", "login_preferences", "updated_at").
		Values(userKey, prefs, time.Now()).
		Suffix("ON CONFLICT (user_key) DO UPDATE SET login_preferences = EXCLUDED.login_preferences, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building upsert preference SQL")
		return err
	}

	if _, err := r.DB.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing upsert preference query")
		return err
	}
	return nil
}

// Get returns the stored preference row for a user key, or (nil, nil) when
// nothing has been remembered yet.
func (r *PreferenceRepository) Get(ctx context.Context, userKey string) (*models.UserPreference, error) {
	sql, args, err := squirrel.Select("id", "user_key", "login_preferences", "updated_at").
		From("user_preferences").
		Where(squirrel.Eq{"user_key": userKey}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get preference SQL")
		return nil, err
	}

	var p models.UserPreference
	err = r.DB.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.UserKey, &p.LoginPreferences, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		logger.Error().Err(err).Msg("Error scanning user preference")
		return nil, err
	}
	return &p, nil
}

// Clear nulls out the remembered values without deleting the row. A missing
// row means there is nothing to clear and is not an error.
func (r *PreferenceRepository) Clear(ctx context.Context, userKey string) error {
	sql, args, err := squirrel.Update("user_preferences").
		Set("login_preferences", nil).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"user_key": userKey}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building clear preference SQL")
		return err
	}

	if _, err := r.DB.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing clear preference query")
		return err
	}
	return nil
}
