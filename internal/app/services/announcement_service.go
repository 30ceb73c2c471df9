package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mathspoint/mathspoint/internal/app/models"
	"github.com/mathspoint/mathspoint/internal/app/models/dto"
	"github.com/mathspoint/mathspoint/internal/app/repositories"
	"github.com/mathspoint/mathspoint/internal/pkg/apperrors"
	"github.com/mathspoint/mathspoint/internal/pkg/helpers"
	"github.com/mathspoint/mathspoint/internal/pkg/logger"
)

// boardMaxRetries is how many times the board fetch is retried before the
// fallback dataset is served.
const boardMaxRetries = 3

// AnnouncementService defines the interface for announcement operations
type AnnouncementService interface {
	GetBoard(ctx context.Context) *dto.AnnouncementBoardResponse
	GetByID(ctx context.Context, id int64) (*models.Announcement, error)
	Create(ctx context.Context, req *dto.CreateAnnouncementRequest, author string, authorID int64) (*models.Announcement, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAnnouncementRequest) (*models.Announcement, error)
	SetPinned(ctx context.Context, id int64, pinned bool) error
	Delete(ctx context.Context, id int64) error
}

// announcementServiceImpl implements AnnouncementService
type announcementServiceImpl struct {
	announcementRepo *repositories.AnnouncementRepository
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(announcementRepo *repositories.AnnouncementRepository) AnnouncementService {
	return &announcementServiceImpl{announcementRepo: announcementRepo}
}

// GetBoard returns the public board. When the store cannot be reached after
// retries, the built-in fallback dataset is served with Degraded set, so the
// homepage never renders empty.
func (s *announcementServiceImpl) GetBoard(ctx context.Context) *dto.AnnouncementBoardResponse {
	var lastErr error
	for attempt := 1; attempt <= boardMaxRetries; attempt++ {
		announcements, err := s.announcementRepo.GetAll(ctx)
		if err == nil {
			pinned, regular := PartitionAnnouncements(announcements)
			return &dto.AnnouncementBoardResponse{
				Pinned:  pinned,
				Regular: regular,
			}
		}
		lastErr = err
		logger.Warn().Err(err).Int("attempt", attempt).Msg("Announcement board fetch failed")
	}

	pinned, regular := PartitionAnnouncements(FallbackAnnouncements())
	return &dto.AnnouncementBoardResponse{
		Pinned:       pinned,
		Regular:      regular,
		Degraded:     true,
		ErrorMessage: CategorizeBoardError(lastErr),
		RetryCount:   boardMaxRetries,
	}
}

// GetByID retrieves an announcement by ID
func (s *announcementServiceImpl) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	return s.announcementRepo.GetByID(ctx, id)
}

// Create creates a new announcement authored by the logged-in admin
func (s *announcementServiceImpl) Create(ctx context.Context, req *dto.CreateAnnouncementRequest, author string, authorID int64) (*models.Announcement, error) {
	announcement := &models.Announcement{
		Title:    req.Title,
		Content:  req.Content,
		Type:     models.AnnouncementType(req.Type),
		Author:   author,
		AuthorID: authorID,
		IsPinned: req.IsPinned,
		Tags:     helpers.SplitTags(req.Tags),
	}
	if !models.ValidAnnouncementType(announcement.Type) {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("invalid announcement type: %s", req.Type))
	}

	id, err := s.announcementRepo.Create(ctx, announcement)
	if err != nil {
		return nil, fmt.Errorf("error creating announcement: %w", err)
	}

	return s.announcementRepo.GetByID(ctx, id)
}

// Update applies the non-nil fields of req to an existing announcement
func (s *announcementServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateAnnouncementRequest) (*models.Announcement, error) {
	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		announcement.Title = *req.Title
	}
	if req.Content != nil {
		announcement.Content = *req.Content
	}
	if req.Type != nil {
		t := models.AnnouncementType(*req.Type)
		if !models.ValidAnnouncementType(t) {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("invalid announcement type: %s", *req.Type))
		}
		announcement.Type = t
	}
	if req.IsPinned != nil {
		announcement.IsPinned = *req.IsPinned
	}
	if req.Tags != nil {
		announcement.Tags = helpers.SplitTags(*req.Tags)
	}

	if err := s.announcementRepo.Update(ctx, announcement); err != nil {
		return nil, fmt.Errorf("error updating announcement: %w", err)
	}
	return s.announcementRepo.GetByID(ctx, id)
}

// SetPinned toggles an announcement's pinned flag
func (s *announcementServiceImpl) SetPinned(ctx context.Context, id int64, pinned bool) error {
	return s.announcementRepo.SetPinned(ctx, id, pinned)
}

// Delete removes an announcement
func (s *announcementServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.announcementRepo.Delete(ctx, id)
}

// PartitionAnnouncements splits a newest-first listing into the pinned
// section and the regular feed, preserving order within each.
func PartitionAnnouncements(announcements []*models.Announcement) (pinned, regular []models.Announcement) {
	pinned = make([]models.Announcement, 0)
	regular = make([]models.Announcement, 0)
	for _, a := range announcements {
		if a.IsPinned {
			pinned = append(pinned, *a)
		} else {
			regular = append(regular, *a)
		}
	}
	return pinned, regular
}

// CategorizeBoardError turns a store failure into the message shown on the
// degraded board, matched by substrings of the underlying error.
func CategorizeBoardError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "503") || strings.Contains(msg, "upstream connect error"):
		return "Announcement service is temporarily unavailable"
	case strings.Contains(msg, "network") || strings.Contains(msg, "fetch"):
		return "Network error while loading announcements"
	case strings.Contains(msg, "timeout"):
		return "Announcement request timed out"
	default:
		return msg
	}
}

// FallbackAnnouncements is the static dataset served when the store is
// unreachable.
func FallbackAnnouncements() []*models.Announcement {
	now := time.Now()
	return []*models.Announcement{
		{
			ID:        -1,
			Title:     "Welcome to Maths Point Education Centre",
			Content:   "Expert math tutoring for classes 9 to 12. Check the notice board regularly for schedule changes and exam updates.",
			Type:      models.AnnouncementImportant,
			Author:    "Maths Point",
			IsPinned:  true,
			Tags:      []string{"welcome"},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        -2,
			Title:     "Weekly practice tests",
			Content:   "Practice tests are held every Saturday. Bring your own stationery and arrive ten minutes early.",
			Type:      models.AnnouncementInfo,
			Author:    "Maths Point",
			Tags:      []string{"schedule"},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        -3,
			Title:     "Doubt-clearing sessions",
			Content:   "One-on-one doubt-clearing sessions are available on request. Speak to your teacher to book a slot.",
			Type:      models.AnnouncementSuccess,
			Author:    "Maths Point",
			Tags:      []string{"sessions"},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
