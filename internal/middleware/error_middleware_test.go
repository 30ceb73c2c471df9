package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathspoint/mathspoint/internal/app/models/dto"
	"github.com/mathspoint/mathspoint/internal/pkg/apperrors"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"announcement not found", apperrors.ErrAnnouncementNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"wrapped not found", errors.Join(errors.New("lookup"), apperrors.ErrSubmissionNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"incorrect password", apperrors.ErrIncorrectPassword, http.StatusUnauthorized, dto.ErrorCodeIncorrectPassword},
		{"unknown class", apperrors.ErrUnknownClass, http.StatusBadRequest, dto.ErrorCodeUnknownClass},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"file too large", apperrors.ErrFileTooLarge, http.StatusBadRequest, dto.ErrorCodeInvalidFile},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"conflict", apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"unrecognized error", errors.New("pool exhausted"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp struct {
				Error *dto.ErrorDetail `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleValidationError(t *testing.T) {
	c, w := newTestContext(t)

	HandleValidationError(c, errors.New("Field validation for 'Title' failed"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error *dto.ErrorDetail `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
	assert.Equal(t, "Field validation for 'Title' failed", resp.Error.Details)
}
