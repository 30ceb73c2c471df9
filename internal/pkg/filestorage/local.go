package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/mathspoint/mathspoint/internal/pkg/logger"
)

// LocalStorage saves uploads to the local filesystem and hands out URLs under
// a configured public base URL. It stands in for the hosted "pdfs" bucket the
// original deployment used: same path convention, same public-URL contract.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a LocalStorage rooted at basePath. Stored files are
// addressed as baseURL + "/" + objectPath.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// SaveAssignmentPDF stores an assignment attachment under
// assignments/{assignmentID}/{timestamp}_{sanitizedName}.
func (ls *LocalStorage) SaveAssignmentPDF(fileHeader *multipart.FileHeader, assignmentID int64) (*UploadResult, error) {
	if err := ValidatePDFFile(fileHeader); err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), SanitizeFileName(fileHeader.Filename))
	objectPath := path.Join("assignments", fmt.Sprintf("%d", assignmentID), objectName)

	return ls.store(fileHeader, objectPath)
}

// SaveSubmissionFile stores a student submission under
// submissions/{assignmentID}/{timestamp}_{sanitizedStudent}_{sanitizedName}.
func (ls *LocalStorage) SaveSubmissionFile(fileHeader *multipart.FileHeader, assignmentID int64, studentName string) (*UploadResult, error) {
	if err := ValidateSubmissionFile(fileHeader); err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("%d_%s_%s",
		time.Now().UnixMilli(),
		SanitizeFileName(studentName),
		SanitizeFileName(fileHeader.Filename))
	objectPath := path.Join("submissions", fmt.Sprintf("%d", assignmentID), objectName)

	return ls.store(fileHeader, objectPath)
}

// SaveAdminPDF stores a library PDF under admin-uploads/.
func (ls *LocalStorage) SaveAdminPDF(fileHeader *multipart.FileHeader) (*UploadResult, error) {
	if err := ValidatePDFFile(fileHeader); err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), SanitizeFileName(fileHeader.Filename))
	objectPath := path.Join("admin-uploads", objectName)

	return ls.store(fileHeader, objectPath)
}

// store copies the upload to basePath/objectPath in one pass. A failed copy
// removes the partial file; the caller retries the whole upload.
func (ls *LocalStorage) store(fileHeader *multipart.FileHeader, objectPath string) (*UploadResult, error) {
	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dstPath := filepath.Join(ls.basePath, filepath.FromSlash(objectPath))
	if err := os.MkdirAll(filepath.Dir(dstPath), os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create storage subdirectory")
		return nil, fmt.Errorf("failed to create storage subdirectory: %w", err)
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	result := &UploadResult{
		URL:        ls.baseURL + "/" + objectPath,
		ObjectPath: objectPath,
		FileName:   fileHeader.Filename,
		Size:       fileHeader.Size,
		UploadedAt: time.Now(),
	}

	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("objectPath", objectPath).
		Int64("size", fileHeader.Size).
		Msg("File saved successfully")
	return result, nil
}

// DeleteFile removes a stored file by its object path or public URL.
// Deleting a missing file succeeds.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" {
		return nil
	}

	objectPath := strings.TrimPrefix(filePath, ls.baseURL+"/")
	physicalPath := filepath.Join(ls.basePath, filepath.FromSlash(objectPath))

	// Refuse anything that escapes the storage root.
	if rel, err := filepath.Rel(ls.basePath, physicalPath); err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// FormatFileSize renders a byte count for display.
func FormatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d Bytes", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %s", float64(bytes)/float64(div), []string{"KB", "MB", "GB"}[exp])
}
