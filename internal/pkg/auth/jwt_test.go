package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := testJWTService()

	claims := &Claims{
		SubjectID:    42,
		Email:        "student@example.com",
		Role:         RoleStudent,
		StudentName:  "Asha",
		StudentClass: "10",
		SessionID:    7,
	}

	token, expiresIn, err := svc.GenerateToken(claims)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int(time.Hour.Seconds()), expiresIn)

	parsed, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.SubjectID)
	assert.Equal(t, "student@example.com", parsed.Email)
	assert.Equal(t, RoleStudent, parsed.Role)
	assert.Equal(t, "Asha", parsed.StudentName)
	assert.Equal(t, "10", parsed.StudentClass)
	assert.Equal(t, int64(7), parsed.SessionID)
	assert.Equal(t, "test", parsed.Issuer)
	assert.NotEmpty(t, parsed.ID)
}

func TestJWTService_ValidateToken_Errors(t *testing.T) {
	svc := testJWTService()

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(JWTConfig{SecretKey: "other-secret", TokenExpiry: time.Hour})
		token, _, err := other.GenerateToken(&Claims{SubjectID: 1, Role: RoleAdmin})
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewJWTService(JWTConfig{SecretKey: "test-secret", TokenExpiry: -time.Minute})
		token, _, err := expired.GenerateToken(&Claims{SubjectID: 1, Role: RoleAdmin})
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"raw token tolerated", "abc.def.ghi", "abc.def.ghi", nil},
		{"empty header", "", "", ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
