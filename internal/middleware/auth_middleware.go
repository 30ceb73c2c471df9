package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mathspoint/mathspoint/internal/app/models/dto"
	"github.com/mathspoint/mathspoint/internal/pkg/auth"
)

// Context keys set by the auth middleware.
const (
	ContextSubjectID    = "subjectID"
	ContextEmail        = "email"
	ContextRole         = "role"
	ContextStudentName  = "studentName"
	ContextStudentClass = "studentClass"
	ContextSessionID    = "sessionID"
)

// AuthMiddleware validates portal tokens. The token only proves the caller
// passed the shared-password gate; it carries no per-user secret.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// RequireRole validates the bearer token and checks its role claim, putting
// the claims into the request context on success.
func (m *AuthMiddleware) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			details := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				details = "Token has expired"
			}
			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed").
				WithDetails(details).
				WithSeverity(dto.ErrorSeverityError)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		if claims.Role != role {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Insufficient permissions")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextSubjectID, claims.SubjectID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		if claims.StudentName != "" {
			c.Set(ContextStudentName, claims.StudentName)
		}
		if claims.StudentClass != "" {
			c.Set(ContextStudentClass, claims.StudentClass)
		}
		if claims.SessionID != 0 {
			c.Set(ContextSessionID, claims.SessionID)
		}

		c.Next()
	}
}

// AdminOnly requires a token issued by the admin gate.
func (m *AuthMiddleware) AdminOnly() gin.HandlerFunc {
	return m.RequireRole(auth.RoleAdmin)
}

// StudentOnly requires a token issued by the student gate.
func (m *AuthMiddleware) StudentOnly() gin.HandlerFunc {
	return m.RequireRole(auth.RoleStudent)
}

// SessionIDFromContext returns the telemetry session id attached to the
// request, or 0 when login opened no session.
func SessionIDFromContext(c *gin.Context) int64 {
	if v, ok := c.Get(ContextSessionID); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
