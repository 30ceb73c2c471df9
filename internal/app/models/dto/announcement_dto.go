package dto

import (
	"github.com/mathspoint/mathspoint/internal/app/models"
)

// CreateAnnouncementRequest is the admin form payload for a new announcement.
// Tags arrive as free text, comma separated.
type CreateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=important urgent info success"`
	IsPinned bool   `json:"isPinned"`
	Tags     string `json:"tags"`
}

// UpdateAnnouncementRequest carries partial updates; nil fields are untouched.
type UpdateAnnouncementRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Type     *string `json:"type,omitempty" binding:"omitempty,oneof=important urgent info success"`
	IsPinned *bool   `json:"isPinned,omitempty"`
	Tags     *string `json:"tags,omitempty"`
}

// SetPinnedRequest toggles an announcement's pinned flag.
type SetPinnedRequest struct {
	IsPinned bool `json:"isPinned"`
}

// AnnouncementBoardResponse is the public board: newest first, split into the
// pinned section and the regular feed.
type AnnouncementBoardResponse struct {
	Pinned  []models.Announcement `json:"pinned"`
	Regular []models.Announcement `json:"regular"`
	// Degraded is true when the store was unreachable and the built-in
	// fallback dataset is being served instead.
	Degraded     bool   `json:"degraded"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	RetryCount   int    `json:"retryCount,omitempty"`
}
