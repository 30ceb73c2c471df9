package dto

// CreateContactMessageRequest is the public contact form payload.
type CreateContactMessageRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Class     string `json:"class"`
	Message   string `json:"message" binding:"required"`
}

// UpdateContactStatusRequest moves a message through new -> read -> replied.
type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new read replied"`
}
