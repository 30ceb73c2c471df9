package models

import "time"

// Assignment is distributed to one class and optionally carries an attached
// PDF. Students see only assignments for their own class.
type Assignment struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Class       string    `json:"class" db:"class"`
	DueDate     time.Time `json:"dueDate" db:"due_date"`
	CreatedBy   string    `json:"createdBy" db:"created_by"`
	PDFURL      *string   `json:"pdfUrl,omitempty" db:"pdf_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
