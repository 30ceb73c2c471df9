package models

import "time"

// Submission records one uploaded answer to an assignment. Submissions are
// matched to students by name string, not by a stable student id: two
// students with the same name in the same class would collide. The original
// system behaves this way and it is preserved here.
type Submission struct {
	ID           int64            `json:"id" db:"id"`
	AssignmentID int64            `json:"assignmentId" db:"assignment_id"`
	StudentName  string           `json:"studentName" db:"student_name"`
	StudentClass string           `json:"studentClass" db:"student_class"`
	FileName     string           `json:"fileName" db:"file_name"`
	FileURL      string           `json:"fileUrl" db:"file_url"`
	FileSize     int64            `json:"fileSize" db:"file_size"`
	FileType     string           `json:"fileType" db:"file_type"`
	Status       SubmissionStatus `json:"status" db:"status"`
	Grade        *int             `json:"grade,omitempty" db:"grade"`
	Feedback     *string          `json:"feedback,omitempty" db:"feedback"`
	GradedBy     *string          `json:"gradedBy,omitempty" db:"graded_by"`
	GradedAt     *time.Time       `json:"gradedAt,omitempty" db:"graded_at"`
	SubmittedAt  time.Time        `json:"submittedAt" db:"submitted_at"`
}
