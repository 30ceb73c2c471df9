package models

import "time"

// Announcement is a notice on the public board. Pinned announcements render
// in their own persistent section.
type Announcement struct {
	ID        int64            `json:"id" db:"id"`
	Title     string           `json:"title" db:"title"`
	Content   string           `json:"content" db:"content"`
	Type      AnnouncementType `json:"type" db:"type"`
	Author    string           `json:"author" db:"author"`
	AuthorID  int64            `json:"authorId" db:"author_id"`
	IsPinned  bool             `json:"isPinned" db:"is_pinned"`
	Tags      []string         `json:"tags" db:"tags"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time        `json:"updatedAt" db:"updated_at"`
}
