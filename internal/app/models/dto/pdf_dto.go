package dto

// UploadPDFRequest is the multipart form for a library PDF; the file itself
// arrives in the "file" form field.
type UploadPDFRequest struct {
	Category    string `form:"category" binding:"required"`
	Description string `form:"description"`
	CustomName  string `form:"customName"`
}

// UpdatePDFRequest carries partial metadata updates; nil fields are untouched.
type UpdatePDFRequest struct {
	Name        *string `json:"name,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
}
