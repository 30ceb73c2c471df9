package models

// AnnouncementType classifies an announcement for display styling.
type AnnouncementType string

const (
	AnnouncementImportant AnnouncementType = "important"
	AnnouncementUrgent    AnnouncementType = "urgent"
	AnnouncementInfo      AnnouncementType = "info"
	AnnouncementSuccess   AnnouncementType = "success"
)

// ValidAnnouncementType reports whether t is one of the enumerated values.
func ValidAnnouncementType(t AnnouncementType) bool {
	switch t {
	case AnnouncementImportant, AnnouncementUrgent, AnnouncementInfo, AnnouncementSuccess:
		return true
	}
	return false
}

// SubmissionStatus tracks a submission through grading.
type SubmissionStatus string

const (
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionGraded    SubmissionStatus = "graded"
	SubmissionReturned  SubmissionStatus = "returned"
)

// ContactStatus tracks a contact message's handling state.
type ContactStatus string

const (
	ContactNew     ContactStatus = "new"
	ContactRead    ContactStatus = "read"
	ContactReplied ContactStatus = "replied"
)

// ValidContactStatus reports whether s is one of the enumerated values.
func ValidContactStatus(s ContactStatus) bool {
	switch s {
	case ContactNew, ContactRead, ContactReplied:
		return true
	}
	return false
}

// StudentStatus marks whether a student record is active.
type StudentStatus string

const (
	StudentActive   StudentStatus = "active"
	StudentInactive StudentStatus = "inactive"
)

// AdminRole distinguishes admin record roles.
type AdminRole string

const (
	AdminRoleAdmin   AdminRole = "admin"
	AdminRoleTeacher AdminRole = "teacher"
)
