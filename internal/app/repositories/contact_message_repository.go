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

// ContactMessageRepository handles database operations for ContactMessage.
type ContactMessageRepository struct {
	DB *pgxpool.Pool
}

// NewContactMessageRepository creates a new instance of ContactMessageRepository.
func NewContactMessageRepository(db *pgxpool.Pool) *ContactMessageRepository {
	return &ContactMessageRepository{DB: db}
}

func (r *ContactMessageRepository) selectQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "first_name", "last_name", "email", "phone", "class",
		"message", "status", "created_at",
	).From("contact_messages").
		PlaceholderFormat(squirrel.Dollar)
}

func scanContactMessage(row pgx.Row) (*models.ContactMessage, error) {
	var m models.ContactMessage
	err := row.Scan(
		&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.Class,
		&m.Message, &m.Status, &m.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrContactMessageNotFound
		}
		logger.Error().Err(err).Msg("Error scanning contact message")
		return nil, err
	}
	return &m, nil
}

// Create inserts a new contact message with status "new" and returns its id.
func (r *ContactMessageRepository) Create(ctx context.Context, m *models.ContactMessage) (int64, error) {
	sql, args, err := squirrel.Insert("contact_messages").
		Columns("first_name", "last_name", "email", "phone", "class", "message", "status").
		Values(m.FirstName, m.LastName, m.Email, m.Phone, m.Class, m.Message, models.ContactNew).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create contact message SQL")
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create contact message query")
		return 0, err
	}
	return id, nil
}

// GetAll returns every contact message, newest first.
func (r *ContactMessageRepository) GetAll(ctx context.Context) ([]*models.ContactMessage, error) {
	sqlStr, args, err := r.selectQuery().OrderBy("created_at DESC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all contact messages SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all contact messages query")
		return nil, err
	}
	defer rows.Close()

	messages := make([]*models.ContactMessage, 0)
	for rows.Next() {
		m, err := scanContactMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating contact message rows")
		return nil, err
	}
	return messages, nil
}

// UpdateStatus moves a message to a new handling status.
func (r *ContactMessageRepository) UpdateStatus(ctx context.Context, id int64, status models.ContactStatus) error {
	sql, args, err := squirrel.Update("contact_messages").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update contact status SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update contact status query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrContactMessageNotFound
	}
	return nil
}
