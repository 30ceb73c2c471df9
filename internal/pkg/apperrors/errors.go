package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Portal gate errors
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrUnknownClass      = errors.New("unknown class")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Entity errors
var (
	ErrAnnouncementNotFound   = errors.New("announcement not found")
	ErrAssignmentNotFound     = errors.New("assignment not found")
	ErrSubmissionNotFound     = errors.New("submission not found")
	ErrStudentNotFound        = errors.New("student not found")
	ErrAdminNotFound          = errors.New("admin not found")
	ErrContactMessageNotFound = errors.New("contact message not found")
	ErrSessionNotFound        = errors.New("login session not found")
	ErrPDFFileNotFound        = errors.New("pdf file not found")
)

// File upload errors
var (
	ErrFileMissing     = errors.New("no file selected")
	ErrFileType        = errors.New("file type not allowed")
	ErrFileTooLarge    = errors.New("file size must be less than 10MB")
	ErrFileTooSmall    = errors.New("file is too small (minimum 1KB)")
	ErrFileNameTooLong = errors.New("file name is too long (maximum 100 characters)")
	ErrFileNameEmpty   = errors.New("file name cannot be empty")
)

// NewResourceNotFoundError creates a custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is reports whether err matches target or any error in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
