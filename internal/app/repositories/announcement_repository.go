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

// AnnouncementRepository handles database operations for Announcement.
type AnnouncementRepository struct {
	DB *pgxpool.Pool
}

// NewAnnouncementRepository creates a new instance of AnnouncementRepository.
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{DB: db}
}

func (r *AnnouncementRepository) selectQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "title", "content", "type", "author", "author_id",
		"is_pinned", "tags", "created_at", "updated_at",
	).From("announcements").
		PlaceholderFormat(squirrel.Dollar)
}

func scanAnnouncement(row pgx.Row) (*models.Announcement, error) {
	var a models.Announcement
	err := row.Scan(
		&a.ID, &a.Title, &a.Content, &a.Type, &a.Author, &a.AuthorID,
		&a.IsPinned, &a.Tags, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		logger.Error().Err(err).Msg("Error scanning announcement")
		return nil, err
	}
	return &a, nil
}

// Create inserts a new announcement and returns its id.
func (r *AnnouncementRepository) Create(ctx context.Context, a *models.Announcement) (int64, error) {
	sql, args, err := squirrel.Insert("announcements").
		Columns("title", "content", "type", "author", "author_id", "is_pinned", "tags").
		Values(a.Title, a.Content, a.Type, a.Author, a.AuthorID, a.IsPinned, a.Tags).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create announcement SQL")
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create announcement query")
		return 0, err
	}
	return id, nil
}

// GetAll returns every announcement, most recent first.
func (r *AnnouncementRepository) GetAll(ctx context.Context) ([]*models.Announcement, error) {
	sqlStr, args, err := r.selectQuery().OrderBy("created_at DESC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all announcements SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all announcements query")
		return nil, err
	}
	defer rows.Close()

	announcements := make([]*models.Announcement, 0)
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating announcement rows")
		return nil, err
	}
	return announcements, nil
}

// GetByID returns one announcement.
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	sqlStr, args, err := r.selectQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get announcement by ID SQL")
		return nil, err
	}
	return scanAnnouncement(r.DB.QueryRow(ctx, sqlStr, args...))
}

// Update rewrites an announcement's editable fields and bumps updated_at.
func (r *AnnouncementRepository) Update(ctx context.Context, a *models.Announcement) error {
	sql, args, err := squirrel.Update("announcements").
		Set("title", a.Title).
		Set("content", a.Content).
		Set("type", a.Type).
		Set("is_pinned", a.IsPinned).
		Set("tags", a.Tags).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": a.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update announcement SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update announcement query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}
	return nil
}

// SetPinned toggles only the pinned flag (plus updated_at); no other field
// is touched.
func (r *AnnouncementRepository) SetPinned(ctx context.Context, id int64, pinned bool) error {
	sql, args, err := squirrel.Update("announcements").
		Set("is_pinned", pinned).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building set pinned SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing set pinned query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}
	return nil
}

// Delete removes an announcement by id.
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("announcements").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete announcement SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete announcement query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}
	return nil
}
