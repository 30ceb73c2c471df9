package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mathspoint/mathspoint/internal/app/models"
	"github.com/mathspoint/mathspoint/internal/pkg/apperrors"
	"github.com/mathspoint/mathspoint/internal/pkg/helpers"
	"github.com/mathspoint/mathspoint/internal/pkg/logger"
)

// SessionRepository handles database operations for LoginSession.
//
// The tracking methods (TrackFeature, TrackAssignmentView, TrackSubmission)
// read the current array, append only when the value is absent, then write
// back. Concurrent calls for the same session can lose an element; the
// arrays are informational telemetry and that trade keeps the queries
// simple.
type SessionRepository struct {
	DB *pgxpool.Pool
}

// NewSessionRepository creates a new instance of SessionRepository.
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) selectQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "public_id", "student_name", "student_class", "student_email",
		"login_time", "logout_time", "session_duration",
		"ip_address", "user_agent", "browser_info", "device_type", "is_active",
		"accessed_features", "assignments_viewed", "submissions_made",
		"total_time_spent", "last_activity",
	).From("login_sessions").
		PlaceholderFormat(squirrel.Dollar)
}

func scanSession(row pgx.Row) (*models.LoginSession, error) {
	var s models.LoginSession
	err := row.Scan(
		&s.ID, &s.PublicID, &s.StudentName, &s.StudentClass, &s.StudentEmail,
		&s.LoginTime, &s.LogoutTime, &s.SessionDuration,
		&s.IPAddress, &s.UserAgent, &s.BrowserInfo, &s.DeviceType, &s.IsActive,
		&s.AccessedFeatures, &s.AssignmentsViewed, &s.SubmissionsMade,
		&s.TotalTimeSpent, &s.LastActivity,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSessionNotFound
		}
		logger.Error().Err(err).Msg("Error scanning login session")
		return nil, err
	}
	return &s, nil
}

// Create opens a new active session and returns its id.
func (r *SessionRepository) Create(ctx context.Context, s *models.LoginSession) (int64, error) {
	now := time.Now()
	sql, args, err := squirrel.Insert("login_sessions").
		Columns(
			"public_id", "student_name", "student_class", "student_email",
			"login_time", "ip_address", "user_agent", "browser_info",
			"device_type", "is_active",
			"accessed_features", "assignments_viewed", "submissions_made",
			"last_activity",
		).
		Values(
			s.PublicID, s.StudentName, s.StudentClass, s.StudentEmail,
			now, s.IPAddress, s.UserAgent, s.BrowserInfo,
			s.DeviceType, true,
			[]string{}, []string{}, []string{},
			now,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create session SQL")
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create session query")
		return 0, err
	}
	return id, nil
}

// GetByID returns a single session.
func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*models.LoginSession, error) {
	sql, args, err := r.selectQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get session SQL")
		return nil, err
	}
	return scanSession(r.DB.QueryRow(ctx, sql, args...))
}

func (r *SessionRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.LoginSession, error) {
	sqlStr, args, err := builder.OrderBy("login_time DESC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list sessions SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list sessions query")
		return nil, err
	}
	defer rows.Close()

	sessions := make([]*models.LoginSession, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating session rows")
		return nil, err
	}
	return sessions, nil
}

// SessionFilter narrows session listings. The first set field wins; a zero
// filter matches everything.
type SessionFilter struct {
	StudentName  string
	StudentEmail string
	StudentClass string
	ActiveOnly   bool
}

func (f SessionFilter) where(builder squirrel.SelectBuilder) squirrel.SelectBuilder {
	switch {
	case f.StudentName != "":
		return builder.Where(squirrel.Eq{"student_name": f.StudentName})
	case f.StudentEmail != "":
		return builder.Where(squirrel.Eq{"student_email": f.StudentEmail})
	case f.StudentClass != "":
		return builder.Where(squirrel.Eq{"student_class": f.StudentClass})
	case f.ActiveOnly:
		return builder.Where(squirrel.Eq{"is_active": true})
	default:
		return builder
	}
}

// List returns one page of matching sessions, newest login first.
func (r *SessionRepository) List(ctx context.Context, filter SessionFilter, offset uint64, limit int) ([]*models.LoginSession, error) {
	builder := filter.where(r.selectQuery()).Offset(offset).Limit(uint64(limit))
	return r.list(ctx, builder)
}

// Count returns the number of sessions matching the filter.
func (r *SessionRepository) Count(ctx context.Context, filter SessionFilter) (int64, error) {
	builder := filter.where(
		squirrel.Select("COUNT(*)").From("login_sessions").PlaceholderFormat(squirrel.Dollar))
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count sessions SQL")
		return 0, err
	}

	var count int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error executing count sessions query")
		return 0, err
	}
	return count, nil
}

// UpdateActivity refreshes the last activity timestamp of a session.
func (r *SessionRepository) UpdateActivity(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Update("login_sessions").
		Set("last_activity", time.Now()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update activity SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update activity query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSessionNotFound
	}
	return nil
}

// TrackFeature records that a feature was used during the session.
func (r *SessionRepository) TrackFeature(ctx context.Context, id int64, feature string) error {
	return r.appendIfAbsent(ctx, id, "accessed_features", feature,
		func(s *models.LoginSession) []string { return s.AccessedFeatures })
}

// TrackAssignmentView records the id of an assignment the student looked at.
func (r *SessionRepository) TrackAssignmentView(ctx context.Context, id int64, assignmentID string) error {
	return r.appendIfAbsent(ctx, id, "assignments_viewed", assignmentID,
		func(s *models.LoginSession) []string { return s.AssignmentsViewed })
}

// TrackSubmission records the id of a submission the student created.
func (r *SessionRepository) TrackSubmission(ctx context.Context, id int64, submissionID string) error {
	return r.appendIfAbsent(ctx, id, "submissions_made", submissionID,
		func(s *models.LoginSession) []string { return s.SubmissionsMade })
}

// appendUnique returns current with value appended, or current unchanged when
// the value is already recorded.
func appendUnique(current []string, value string) ([]string, bool) {
	if helpers.Contains(current, value) {
		return current, false
	}
	return append(current, value), true
}

func (r *SessionRepository) appendIfAbsent(ctx context.Context, id int64, column, value string, get func(*models.LoginSession) []string) error {
	session, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	updated, changed := appendUnique(get(session), value)
	if !changed {
		// Already recorded, just bump the activity timestamp.
		return r.UpdateActivity(ctx, id)
	}

	sql, args, err := squirrel.Update("login_sessions").
		Set(column, updated).
		Set("last_activity", time.Now()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building track session SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing track session query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSessionNotFound
	}
	return nil
}

// End closes a session, stamping the logout time and computed duration.
func (r *SessionRepository) End(ctx context.Context, id int64) error {
	session, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now()
	duration := helpers.SessionDurationMinutes(session.LoginTime, now)

	sql, args, err := squirrel.Update("login_sessions").
		Set("logout_time", now).
		Set("session_duration", duration).
		Set("total_time_spent", duration).
		Set("is_active", false).
		Set("last_activity", now).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building end session SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing end session query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSessionNotFound
	}
	return nil
}
