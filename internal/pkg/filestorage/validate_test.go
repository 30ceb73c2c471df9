package filestorage

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mathspoint/mathspoint/internal/pkg/apperrors"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestValidatePDFFile(t *testing.T) {
	tests := []struct {
		name    string
		file    *multipart.FileHeader
		wantErr error
	}{
		{
			name: "valid pdf",
			file: fileHeader("worksheet.pdf", "application/pdf", 2048),
		},
		{
			name: "exactly max size allowed",
			file: fileHeader("big.pdf", "application/pdf", MaxFileSize),
		},
		{
			name: "exactly min size allowed",
			file: fileHeader("small.pdf", "application/pdf", MinFileSize),
		},
		{
			name:    "missing file",
			file:    nil,
			wantErr: apperrors.ErrFileMissing,
		},
		{
			name:    "wrong content type",
			file:    fileHeader("notes.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", 2048),
			wantErr: apperrors.ErrFileType,
		},
		{
			name:    "too large",
			file:    fileHeader("huge.pdf", "application/pdf", MaxFileSize+1),
			wantErr: apperrors.ErrFileTooLarge,
		},
		{
			name:    "too small",
			file:    fileHeader("tiny.pdf", "application/pdf", MinFileSize-1),
			wantErr: apperrors.ErrFileTooSmall,
		},
		{
			name:    "name too long",
			file:    fileHeader(strings.Repeat("a", MaxNameLen+1), "application/pdf", 2048),
			wantErr: apperrors.ErrFileNameTooLong,
		},
		{
			name:    "blank name",
			file:    fileHeader("   ", "application/pdf", 2048),
			wantErr: apperrors.ErrFileNameEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePDFFile(tt.file)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSubmissionFile(t *testing.T) {
	allowed := []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"text/plain",
		"image/jpeg",
		"image/png",
		"image/jpg",
	}
	for _, contentType := range allowed {
		t.Run(contentType, func(t *testing.T) {
			err := ValidateSubmissionFile(fileHeader("answer", contentType, 2048))
			assert.NoError(t, err)
		})
	}

	t.Run("disallowed type", func(t *testing.T) {
		err := ValidateSubmissionFile(fileHeader("movie.mp4", "video/mp4", 2048))
		assert.True(t, errors.Is(err, apperrors.ErrFileType))
	})

	t.Run("missing file", func(t *testing.T) {
		err := ValidateSubmissionFile(nil)
		assert.True(t, errors.Is(err, apperrors.ErrFileMissing))
	})

	t.Run("shared size bounds apply", func(t *testing.T) {
		err := ValidateSubmissionFile(fileHeader("answer.png", "image/png", MaxFileSize+1))
		assert.True(t, errors.Is(err, apperrors.ErrFileTooLarge))
	})
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"worksheet.pdf", "worksheet.pdf"},
		{"my homework (1).pdf", "my_homework_1_.pdf"},
		{"algebra/notes.pdf", "algebra_notes.pdf"},
		{"___leading.pdf", "leading.pdf"},
		{"trailing.pdf___", "trailing.pdf"},
		{"a  b   c.txt", "a_b_c.txt"},
		{"ünïcödé.pdf", "n_c_d_.pdf"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.in))
		})
	}
}
