package services

import (
	"github.com/mathspoint/mathspoint/internal/app/repositories"
	"github.com/mathspoint/mathspoint/internal/pkg/auth"
	"github.com/mathspoint/mathspoint/internal/pkg/email"
	"github.com/mathspoint/mathspoint/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AnnouncementService AnnouncementService
	AssignmentService   AssignmentService
	SubmissionService   SubmissionService
	PortalService       PortalService
	ContactService      ContactService
	SessionService      SessionService
	PDFService          PDFService
	PreferenceService   PreferenceService
}

// NewServices initializes all services
func NewServices(
	repos *repositories.Repositories,
	gate *auth.Gate,
	jwtService *auth.JWTService,
	storage filestorage.FileStorage,
	emailService email.EmailService,
) *Services {
	return &Services{
		AnnouncementService: NewAnnouncementService(repos.AnnouncementRepository),
		AssignmentService:   NewAssignmentService(repos.AssignmentRepository, repos.SubmissionRepository, storage),
		SubmissionService:   NewSubmissionService(repos.SubmissionRepository, repos.AssignmentRepository, storage),
		PortalService:       NewPortalService(repos.AdminRepository, repos.StudentRepository, repos.SessionRepository, gate, jwtService),
		ContactService:      NewContactService(repos.ContactMessageRepository, emailService),
		SessionService:      NewSessionService(repos.SessionRepository),
		PDFService:          NewPDFService(repos.PDFFileRepository, storage),
		PreferenceService:   NewPreferenceService(repos.PreferenceRepository),
	}
}
