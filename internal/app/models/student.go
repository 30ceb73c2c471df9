package models

import "time"

// Student is an identity record keyed by email, created lazily on first
// portal login. There is no per-student credential; access is gated by the
// shared class password.
type Student struct {
	ID             int64         `json:"id" db:"id"`
	StudentID      string        `json:"studentId" db:"student_id"`
	StudentClass   string        `json:"studentClass" db:"student_class"`
	Email          string        `json:"email" db:"email"`
	FirstName      *string       `json:"firstName,omitempty" db:"first_name"`
	LastName       *string       `json:"lastName,omitempty" db:"last_name"`
	Phone          *string       `json:"phone,omitempty" db:"phone"`
	Status         StudentStatus `json:"status" db:"status"`
	EnrollmentDate time.Time     `json:"enrollmentDate" db:"enrollment_date"`
	LastLogin      *time.Time    `json:"lastLogin,omitempty" db:"last_login"`
}
