package models

import "time"

// PDFFile is a library document managed from the admin portal. Deletion is a
// soft delete via IsActive so download links keep resolving.
type PDFFile struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	OriginalName  string    `json:"originalName" db:"original_name"`
	FilePath      string    `json:"filePath" db:"file_path"`
	FileURL       string    `json:"fileUrl" db:"file_url"`
	FileSize      int64     `json:"fileSize" db:"file_size"`
	Category      string    `json:"category" db:"category"`
	Description   *string   `json:"description,omitempty" db:"description"`
	UploadedBy    string    `json:"uploadedBy" db:"uploaded_by"`
	IsActive      bool      `json:"isActive" db:"is_active"`
	DownloadCount int       `json:"downloadCount" db:"download_count"`
	Tags          []string  `json:"tags" db:"tags"`
	UploadedAt    time.Time `json:"uploadedAt" db:"uploaded_at"`
}
