package dto

import (
	"time"

	"github.com/mathspoint/mathspoint/internal/app/models"
)

// CreateAssignmentRequest is the multipart form for a new assignment; the
// attached PDF (if any) rides alongside as the "file" form field.
type CreateAssignmentRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Class       string `form:"class" binding:"required"`
	DueDate     string `form:"dueDate" binding:"required"` // RFC 3339
}

// UpdateAssignmentRequest carries partial updates; nil fields are untouched.
type UpdateAssignmentRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Class       *string `json:"class,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"` // RFC 3339
}

// AssignmentResponse is an assignment as the student portal sees it, with the
// viewer's submission (matched by assignment id + student name) attached.
type AssignmentResponse struct {
	models.Assignment
	Submission *models.Submission `json:"submission,omitempty"`
}

// ParseDueDate parses the form's due-date string.
func ParseDueDate(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
