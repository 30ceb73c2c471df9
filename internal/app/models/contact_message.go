package models

import "time"

// ContactMessage is an inbound record from the public contact form.
type ContactMessage struct {
	ID        int64         `json:"id" db:"id"`
	FirstName string        `json:"firstName" db:"first_name"`
	LastName  string        `json:"lastName" db:"last_name"`
	Email     string        `json:"email" db:"email"`
	Phone     string        `json:"phone" db:"phone"`
	Class     *string       `json:"class,omitempty" db:"class"`
	Message   string        `json:"message" db:"message"`
	Status    ContactStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
}
