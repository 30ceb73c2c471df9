package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendContactNotification(msg ContactNotification) error
}

// ContactNotification carries the fields of an inbound contact message.
type ContactNotification struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Class     string
	Message   string
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	// ToEmail is the center's inbox that receives contact notifications
	ToEmail string
}

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

// SendContactNotification emails the contact-form message to the configured
// inbox. Without SMTP credentials the message is logged instead so local
// setups keep working.
func (s *EmailServiceImpl) SendContactNotification(msg ContactNotification) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("fromEmail", msg.Email).
			Str("name", msg.FirstName+" "+msg.LastName).
			Msg("SMTP credentials not configured - contact notification not sent")
		return nil
	}

	subject := fmt.Sprintf("New Contact Message from %s %s - Maths Point", msg.FirstName, msg.LastName)

	class := msg.Class
	if class == "" {
		class = "Not specified"
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">New Contact Message</h2>
				<p><strong>Name:</strong> %s %s</p>
				<p><strong>Email:</strong> %s</p>
				<p><strong>Phone:</strong> %s</p>
				<p><strong>Class:</strong> %s</p>
				<h3>Message</h3>
				<p>%s</p>
				<p>Reply directly to this email to answer.</p>
			</div>
		</body>
		</html>
	`, msg.FirstName, msg.LastName, msg.Email, msg.Phone, class, msg.Message)

	return s.sendHTMLEmail(s.config.ToEmail, msg.Email, subject, body)
}

// sendHTMLEmail sends an HTML email over plain SMTP auth.
func (s *EmailServiceImpl) sendHTMLEmail(toEmail, replyTo, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	headers := []string{
		fmt.Sprintf("From: %s <%s>", s.config.FromName, s.config.FromEmail),
		fmt.Sprintf("To: %s", toEmail),
		fmt.Sprintf("Reply-To: %s", replyTo),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
	}

	message := strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{toEmail}, []byte(message)); err != nil {
		s.logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info().Str("toEmail", toEmail).Str("subject", subject).Msg("Email sent")
	return nil
}
