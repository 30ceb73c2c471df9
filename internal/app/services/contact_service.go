package services

import (
	"context"
	"fmt"

	"github.com/mathspoint/mathspoint/internal/app/models"
	"github.com/mathspoint/mathspoint/internal/app/models/dto"
	"github.com/mathspoint/mathspoint/internal/app/repositories"
	"github.com/mathspoint/mathspoint/internal/pkg/email"
	"github.com/mathspoint/mathspoint/internal/pkg/logger"
)

// ContactService defines the interface for contact form operations
type ContactService interface {
	Submit(ctx context.Context, req *dto.CreateContactMessageRequest) (int64, error)
	GetAll(ctx context.Context) ([]*models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id int64, status models.ContactStatus) error
}

// contactServiceImpl implements ContactService
type contactServiceImpl struct {
	contactRepo  *repositories.ContactMessageRepository
	emailService email.EmailService
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo *repositories.ContactMessageRepository, emailService email.EmailService) ContactService {
	return &contactServiceImpl{
		contactRepo:  contactRepo,
		emailService: emailService,
	}
}

// Submit stores an inbound contact message and sends the notification email.
// The message is the record of truth; a failed email is logged and does not
// fail the submission.
func (s *contactServiceImpl) Submit(ctx context.Context, req *dto.CreateContactMessageRequest) (int64, error) {
	message := &models.ContactMessage{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
	}
	if req.Class != "" {
		class := req.Class
		message.Class = &class
	}

	id, err := s.contactRepo.Create(ctx, message)
	if err != nil {
		return 0, fmt.Errorf("error saving contact message: %w", err)
	}

	if err := s.emailService.SendContactNotification(email.ContactNotification{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Class:     req.Class,
		Message:   req.Message,
	}); err != nil {
		logger.Warn().Err(err).Int64("messageId", id).Msg("Failed to send contact notification email")
	}

	return id, nil
}

// GetAll retrieves every contact message, newest first
func (s *contactServiceImpl) GetAll(ctx context.Context) ([]*models.ContactMessage, error) {
	return s.contactRepo.GetAll(ctx)
}

// UpdateStatus moves a contact message to a new handling status
func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id int64, status models.ContactStatus) error {
	if !models.ValidContactStatus(status) {
		return fmt.Errorf("invalid contact status: %s", status)
	}
	return s.contactRepo.UpdateStatus(ctx, id, status)
}
