package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mathspoint/mathspoint/internal/app/models"
	"github.com/mathspoint/mathspoint/internal/app/models/dto"
	"github.com/mathspoint/mathspoint/internal/app/repositories"
	"github.com/mathspoint/mathspoint/internal/pkg/apperrors"
	"github.com/mathspoint/mathspoint/internal/pkg/auth"
	"github.com/mathspoint/mathspoint/internal/pkg/dberrors"
	"github.com/mathspoint/mathspoint/internal/pkg/logger"
)

// ClientInfo carries the request metadata attached to a telemetry session.
type ClientInfo struct {
	IPAddress   string
	UserAgent   string
	BrowserInfo string
	DeviceType  string
}

// PortalService defines the interface for portal login operations. Both
// logins are shared-password gates: the admin portal has one global password
// and each class has one passphrase. Identity records are created lazily on
// the first login with a new email.
type PortalService interface {
	AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
	StudentLogin(ctx context.Context, req *dto.StudentLoginRequest, client ClientInfo) (*dto.StudentLoginResponse, error)
	PasswordHint(class string) *dto.PasswordHintResponse
	ListStudents(ctx context.Context) ([]*models.Student, error)
}

// portalServiceImpl implements PortalService
type portalServiceImpl struct {
	adminRepo   *repositories.AdminRepository
	studentRepo *repositories.StudentRepository
	sessionRepo *repositories.SessionRepository
	gate        *auth.Gate
	jwtService  *auth.JWTService
}

// NewPortalService creates a new PortalService
func NewPortalService(
	adminRepo *repositories.AdminRepository,
	studentRepo *repositories.StudentRepository,
	sessionRepo *repositories.SessionRepository,
	gate *auth.Gate,
	jwtService *auth.JWTService,
) PortalService {
	return &portalServiceImpl{
		adminRepo:   adminRepo,
		studentRepo: studentRepo,
		sessionRepo: sessionRepo,
		gate:        gate,
		jwtService:  jwtService,
	}
}

// AdminLogin checks the shared admin password and returns the admin record
// for the email, creating it on first login.
func (s *portalServiceImpl) AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if !s.gate.ValidateAdminPassword(req.Password) {
		return nil, apperrors.ErrIncorrectPassword
	}

	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error looking up admin: %w", err)
	}

	created := false
	if admin == nil {
		firstName := "Admin"
		lastName := "User"
		newAdmin := &models.Admin{
			Email:       req.Email,
			Role:        models.AdminRoleAdmin,
			FirstName:   &firstName,
			LastName:    &lastName,
			Permissions: models.DefaultAdminPermissions,
		}
		id, err := s.adminRepo.Create(ctx, newAdmin)
		switch {
		case err == nil:
			created = true
		case dberrors.IsUniqueViolation(err):
			// a concurrent first login won the insert; use its record
		default:
			return nil, fmt.Errorf("error creating admin record: %w", err)
		}
		admin, err = s.adminRepo.GetByEmail(ctx, req.Email)
		if err != nil || admin == nil {
			return nil, fmt.Errorf("error reading created admin %d: %w", id, err)
		}
	}

	if err := s.adminRepo.UpdateLastLogin(ctx, admin.ID); err != nil {
		logger.Warn().Err(err).Int64("adminId", admin.ID).Msg("Failed to update admin last login")
	}

	token, expiresIn, err := s.jwtService.GenerateToken(&auth.Claims{
		SubjectID: admin.ID,
		Email:     admin.Email,
		Role:      auth.RoleAdmin,
	})
	if err != nil {
		return nil, fmt.Errorf("error issuing portal token: %w", err)
	}

	return &dto.AdminLoginResponse{
		Admin:     admin,
		Token:     token,
		ExpiresIn: expiresIn,
		Created:   created,
	}, nil
}

// StudentLogin checks the class passphrase and returns the student record
// for the email, creating it on first login. A telemetry session is opened
// best-effort; if session bookkeeping fails the login still succeeds and
// SessionID stays nil.
func (s *portalServiceImpl) StudentLogin(ctx context.Context, req *dto.StudentLoginRequest, client ClientInfo) (*dto.StudentLoginResponse, error) {
	if !s.gate.KnownClass(req.StudentClass) {
		return nil, apperrors.ErrUnknownClass
	}
	if !s.gate.ValidateClassPassword(req.StudentClass, req.Password) {
		return nil, apperrors.ErrIncorrectPassword
	}

	student, err := s.studentRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error looking up student: %w", err)
	}

	created := false
	if student == nil {
		newStudent := &models.Student{
			StudentID:    req.StudentName,
			StudentClass: req.StudentClass,
			Email:        req.Email,
			Status:       models.StudentActive,
		}
		id, err := s.studentRepo.Create(ctx, newStudent)
		switch {
		case err == nil:
			created = true
		case dberrors.IsUniqueViolation(err):
			// a concurrent first login won the insert; use its record
		default:
			return nil, fmt.Errorf("error creating student record: %w", err)
		}
		student, err = s.studentRepo.GetByEmail(ctx, req.Email)
		if err != nil || student == nil {
			return nil, fmt.Errorf("error reading created student %d: %w", id, err)
		}
	}

	if err := s.studentRepo.UpdateLastLogin(ctx, student.ID); err != nil {
		logger.Warn().Err(err).Int64("studentId", student.ID).Msg("Failed to update student last login")
	}

	var sessionID *int64
	session := &models.LoginSession{
		PublicID:     uuid.New().String(),
		StudentName:  req.StudentName,
		StudentClass: req.StudentClass,
		StudentEmail: req.Email,
		IPAddress:    client.IPAddress,
		UserAgent:    client.UserAgent,
		BrowserInfo:  client.BrowserInfo,
		DeviceType:   client.DeviceType,
	}
	if id, err := s.sessionRepo.Create(ctx, session); err != nil {
		logger.Warn().Err(err).Str("email", req.Email).Msg("Failed to open login session")
	} else {
		sessionID = &id
	}

	claims := &auth.Claims{
		SubjectID:    student.ID,
		Email:        student.Email,
		Role:         auth.RoleStudent,
		StudentName:  req.StudentName,
		StudentClass: req.StudentClass,
	}
	if sessionID != nil {
		claims.SessionID = *sessionID
	}
	token, expiresIn, err := s.jwtService.GenerateToken(claims)
	if err != nil {
		return nil, fmt.Errorf("error issuing portal token: %w", err)
	}

	return &dto.StudentLoginResponse{
		Student:   student,
		SessionID: sessionID,
		Token:     token,
		ExpiresIn: expiresIn,
		Created:   created,
	}, nil
}

// PasswordHint returns the hint text for a class login form.
func (s *portalServiceImpl) PasswordHint(class string) *dto.PasswordHintResponse {
	return &dto.PasswordHintResponse{
		Class: class,
		Hint:  s.gate.PasswordHint(class),
	}
}

// ListStudents returns every student record, newest enrollment first.
func (s *portalServiceImpl) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}
