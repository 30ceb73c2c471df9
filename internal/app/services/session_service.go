package services

import (
	"context"
	"fmt"

	"github.com/mathspoint/mathspoint/internal/app/models"
	"github.com/mathspoint/mathspoint/internal/app/models/dto"
	"github.com/mathspoint/mathspoint/internal/app/repositories"
	"github.com/mathspoint/mathspoint/internal/pkg/helpers"
	"github.com/mathspoint/mathspoint/internal/pkg/logger"
)

// SessionService defines the interface for login-session telemetry
// operations. Tracking calls are best-effort: the portal must keep working
// when bookkeeping fails, so Track* log failures instead of returning them.
type SessionService interface {
	List(ctx context.Context, filter *dto.SessionFilterRequest, page, size int) (*dto.PaginatedResponse, error)
	GetByID(ctx context.Context, id int64) (*models.LoginSession, error)
	TrackFeature(ctx context.Context, sessionID int64, feature string)
	TrackAssignmentView(ctx context.Context, sessionID int64, assignmentID string)
	TrackSubmission(ctx context.Context, sessionID int64, submissionID string)
	Heartbeat(ctx context.Context, sessionID int64)
	End(ctx context.Context, sessionID int64) error
}

// sessionServiceImpl implements SessionService
type sessionServiceImpl struct {
	sessionRepo *repositories.SessionRepository
}

// NewSessionService creates a new SessionService
func NewSessionService(sessionRepo *repositories.SessionRepository) SessionService {
	return &sessionServiceImpl{sessionRepo: sessionRepo}
}

// List returns one page of sessions for the admin views, newest login first.
// The first set filter field wins; with no filter set, all sessions match.
func (s *sessionServiceImpl) List(ctx context.Context, filter *dto.SessionFilterRequest, page, size int) (*dto.PaginatedResponse, error) {
	repoFilter := repositories.SessionFilter{}
	if filter != nil {
		repoFilter = repositories.SessionFilter{
			StudentName:  filter.StudentName,
			StudentEmail: filter.StudentEmail,
			StudentClass: filter.StudentClass,
			ActiveOnly:   filter.ActiveOnly,
		}
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)

	sessions, err := s.sessionRepo.List(ctx, repoFilter, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing sessions: %w", err)
	}

	total, err := s.sessionRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("error counting sessions: %w", err)
	}

	return &dto.PaginatedResponse{
		Items:      sessions,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// GetByID retrieves a session by ID
func (s *sessionServiceImpl) GetByID(ctx context.Context, id int64) (*models.LoginSession, error) {
	return s.sessionRepo.GetByID(ctx, id)
}

// TrackFeature records that the session used a named portal feature
func (s *sessionServiceImpl) TrackFeature(ctx context.Context, sessionID int64, feature string) {
	if sessionID == 0 {
		return
	}
	if err := s.sessionRepo.TrackFeature(ctx, sessionID, feature); err != nil {
		logger.Warn().Err(err).Int64("sessionId", sessionID).Str("feature", feature).Msg("Failed to track feature")
	}
}

// TrackAssignmentView records the id of an assignment the session opened
func (s *sessionServiceImpl) TrackAssignmentView(ctx context.Context, sessionID int64, assignmentID string) {
	if sessionID == 0 {
		return
	}
	if err := s.sessionRepo.TrackAssignmentView(ctx, sessionID, assignmentID); err != nil {
		logger.Warn().Err(err).Int64("sessionId", sessionID).Str("assignmentId", assignmentID).Msg("Failed to track assignment view")
	}
}

// TrackSubmission records the id of a submission the session created
func (s *sessionServiceImpl) TrackSubmission(ctx context.Context, sessionID int64, submissionID string) {
	if sessionID == 0 {
		return
	}
	if err := s.sessionRepo.TrackSubmission(ctx, sessionID, submissionID); err != nil {
		logger.Warn().Err(err).Int64("sessionId", sessionID).Str("submissionId", submissionID).Msg("Failed to track submission")
	}
}

// Heartbeat refreshes the session's last activity timestamp
func (s *sessionServiceImpl) Heartbeat(ctx context.Context, sessionID int64) {
	if sessionID == 0 {
		return
	}
	if err := s.sessionRepo.UpdateActivity(ctx, sessionID); err != nil {
		logger.Warn().Err(err).Int64("sessionId", sessionID).Msg("Failed to refresh session activity")
	}
}

// End closes the session, computing its duration from the login time
func (s *sessionServiceImpl) End(ctx context.Context, sessionID int64) error {
	return s.sessionRepo.End(ctx, sessionID)
}
