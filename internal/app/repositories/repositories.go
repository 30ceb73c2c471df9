package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AnnouncementRepository   *AnnouncementRepository
	AssignmentRepository     *AssignmentRepository
	SubmissionRepository     *SubmissionRepository
	StudentRepository        *StudentRepository
	AdminRepository          *AdminRepository
	ContactMessageRepository *ContactMessageRepository
	SessionRepository        *SessionRepository
	PDFFileRepository        *PDFFileRepository
	PreferenceRepository     *PreferenceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AnnouncementRepository:   NewAnnouncementRepository(db),
		AssignmentRepository:     NewAssignmentRepository(db),
		SubmissionRepository:     NewSubmissionRepository(db),
		StudentRepository:        NewStudentRepository(db),
		AdminRepository:          NewAdminRepository(db),
		ContactMessageRepository: NewContactMessageRepository(db),
		SessionRepository:        NewSessionRepository(db),
		PDFFileRepository:        NewPDFFileRepository(db),
		PreferenceRepository:     NewPreferenceRepository(db),
	}
}
