package filestorage

import (
	"mime/multipart"
	"time"
)

// UploadResult describes a stored file.
type UploadResult struct {
	URL        string    `json:"url"`
	ObjectPath string    `json:"objectPath"`
	FileName   string    `json:"fileName"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// FileStorage defines the interface for file storage operations.
type FileStorage interface {
	// SaveAssignmentPDF validates and stores an assignment attachment under
	// assignments/{assignmentID}/ and returns its public URL.
	SaveAssignmentPDF(fileHeader *multipart.FileHeader, assignmentID int64) (*UploadResult, error)

	// SaveSubmissionFile validates and stores a student submission under
	// submissions/{assignmentID}/ and returns its public URL.
	SaveSubmissionFile(fileHeader *multipart.FileHeader, assignmentID int64, studentName string) (*UploadResult, error)

	// SaveAdminPDF validates and stores a library PDF under admin-uploads/.
	SaveAdminPDF(fileHeader *multipart.FileHeader) (*UploadResult, error)

	// DeleteFile removes a stored file. Deleting a missing file is not an error.
	DeleteFile(filePath string) error
}
