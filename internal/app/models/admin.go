package models

import "time"

// Admin is an identity record keyed by email, created lazily on the first
// login with that email. All admins share the one portal password.
type Admin struct {
	ID          int64      `json:"id" db:"id"`
	Email       string     `json:"email" db:"email"`
	Role        AdminRole  `json:"role" db:"role"`
	FirstName   *string    `json:"firstName,omitempty" db:"first_name"`
	LastName    *string    `json:"lastName,omitempty" db:"last_name"`
	Permissions []string   `json:"permissions" db:"permissions"`
	LastLogin   *time.Time `json:"lastLogin,omitempty" db:"last_login"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}

// DefaultAdminPermissions are granted to lazily created admin records.
var DefaultAdminPermissions = []string{"read", "write", "delete", "manage_users"}
