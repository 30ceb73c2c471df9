package filestorage

import (
	"mime/multipart"
	"regexp"
	"strings"

	"github.com/mathspoint/mathspoint/internal/pkg/apperrors"
)

// File size bounds shared by all upload paths.
const (
	MaxFileSize = 10 * 1024 * 1024 // 10MB
	MinFileSize = 1024             // 1KB
	MaxNameLen  = 100
)

// submissionTypes is the widened allow-list for student submissions.
var submissionTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
	"image/jpeg": true,
	"image/png":  true,
	"image/jpg":  true,
}

// ValidatePDFFile checks an assignment upload: PDF only, size and name bounds.
// It returns a descriptive error naming the violated constraint, or nil.
func ValidatePDFFile(fileHeader *multipart.FileHeader) error {
	if fileHeader == nil {
		return apperrors.ErrFileMissing
	}
	if contentType(fileHeader) != "application/pdf" {
		return apperrors.NewCustomError(apperrors.ErrFileType, "only PDF files are allowed")
	}
	return validateCommon(fileHeader)
}

// ValidateSubmissionFile checks a student submission upload against the
// widened allow-list (PDF, Word, plain text, JPG, PNG) and the shared bounds.
func ValidateSubmissionFile(fileHeader *multipart.FileHeader) error {
	if fileHeader == nil {
		return apperrors.ErrFileMissing
	}
	if !submissionTypes[contentType(fileHeader)] {
		return apperrors.NewCustomError(apperrors.ErrFileType,
			"only PDF, Word documents, text files, and images (JPG, PNG) are allowed")
	}
	return validateCommon(fileHeader)
}

func validateCommon(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxFileSize {
		return apperrors.ErrFileTooLarge
	}
	if fileHeader.Size < MinFileSize {
		return apperrors.ErrFileTooSmall
	}
	if len(fileHeader.Filename) > MaxNameLen {
		return apperrors.ErrFileNameTooLong
	}
	if strings.TrimSpace(fileHeader.Filename) == "" {
		return apperrors.ErrFileNameEmpty
	}
	return nil
}

func contentType(fileHeader *multipart.FileHeader) string {
	return fileHeader.Header.Get("Content-Type")
}

var (
	unsafeChars    = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
	underscoreRuns = regexp.MustCompile(`_{2,}`)
)

// SanitizeFileName makes a name safe for a storage path: everything outside
// [a-zA-Z0-9.-] becomes an underscore, runs of underscores collapse to one,
// leading and trailing underscores are trimmed.
func SanitizeFileName(name string) string {
	s := unsafeChars.ReplaceAllString(name, "_")
	s = underscoreRuns.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
