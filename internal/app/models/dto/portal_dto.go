package dto

import "github.com/mathspoint/mathspoint/internal/app/models"

// AdminLoginRequest is the admin portal gate form: any email plus the one
// shared admin password.
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse returns the admin record (created lazily on first login)
// and a portal token for subsequent calls.
type AdminLoginResponse struct {
	Admin     *models.Admin `json:"admin"`
	Token     string        `json:"token"`
	ExpiresIn int           `json:"expiresIn"`
	Created   bool          `json:"created"`
}

// StudentLoginRequest is the student portal gate form; the password is the
// shared per-class passphrase.
type StudentLoginRequest struct {
	StudentName  string `json:"studentName" binding:"required"`
	StudentClass string `json:"studentClass" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
}

// StudentLoginResponse returns the student record, the opened telemetry
// session (nil when session bookkeeping failed, login still succeeds), and a
// portal token.
type StudentLoginResponse struct {
	Student   *models.Student `json:"student"`
	SessionID *int64          `json:"sessionId,omitempty"`
	Token     string          `json:"token"`
	ExpiresIn int             `json:"expiresIn"`
	Created   bool            `json:"created"`
}

// PasswordHintResponse carries the hint text for a class login form.
type PasswordHintResponse struct {
	Class string `json:"class"`
	Hint  string `json:"hint"`
}
