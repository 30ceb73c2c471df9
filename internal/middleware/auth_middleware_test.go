package middleware

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathspoint/mathspoint/internal/app/models/dto"
	"github.com/mathspoint/mathspoint/internal/pkg/auth"
)

func testJWTService(expiry time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: expiry,
		TokenIssuer: "mathspoint-test",
	})
}

func errorCodeFromBody(t *testing.T, body []byte) dto.ErrorCode {
	t.Helper()
	var resp struct {
		Error *dto.ErrorDetail `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotNil(t, resp.Error)
	return resp.Error.Code
}

func TestRequireRole(t *testing.T) {
	jwtService := testJWTService(time.Hour)
	m := NewAuthMiddleware(jwtService)

	studentToken, _, err := jwtService.GenerateToken(&auth.Claims{
		SubjectID:    42,
		Email:        "ravi@example.com",
		Role:         auth.RoleStudent,
		StudentName:  "Ravi",
		StudentClass: "10",
		SessionID:    7,
	})
	require.NoError(t, err)

	expiredToken, _, err := testJWTService(-time.Minute).GenerateToken(&auth.Claims{
		SubjectID: 42,
		Role:      auth.RoleStudent,
	})
	require.NoError(t, err)

	t.Run("valid token populates context", func(t *testing.T) {
		c, w := newTestContext(t)
		c.Request.Header.Set("Authorization", "Bearer "+studentToken)

		m.StudentOnly()(c)

		assert.False(t, c.IsAborted())
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Ravi", c.GetString(ContextStudentName))
		assert.Equal(t, "10", c.GetString(ContextStudentClass))
		assert.Equal(t, int64(7), SessionIDFromContext(c))
	})

	t.Run("missing header", func(t *testing.T) {
		c, w := newTestContext(t)

		m.StudentOnly()(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrorCodeUnauthorized, errorCodeFromBody(t, w.Body.Bytes()))
	})

	t.Run("expired token", func(t *testing.T) {
		c, w := newTestContext(t)
		c.Request.Header.Set("Authorization", "Bearer "+expiredToken)

		m.StudentOnly()(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrorCodeExpiredToken, errorCodeFromBody(t, w.Body.Bytes()))
	})

	t.Run("garbage token", func(t *testing.T) {
		c, w := newTestContext(t)
		c.Request.Header.Set("Authorization", "Bearer not.a.token")

		m.StudentOnly()(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrorCodeInvalidToken, errorCodeFromBody(t, w.Body.Bytes()))
	})

	t.Run("student token rejected on admin route", func(t *testing.T) {
		c, w := newTestContext(t)
		c.Request.Header.Set("Authorization", "Bearer "+studentToken)

		m.AdminOnly()(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, dto.ErrorCodeForbidden, errorCodeFromBody(t, w.Body.Bytes()))
	})
}

func TestSessionIDFromContextWithoutSession(t *testing.T) {
	c, _ := newTestContext(t)
	assert.Equal(t, int64(0), SessionIDFromContext(c))
}
