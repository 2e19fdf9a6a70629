package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/pkg/auth"
	"github.com/impactlink/impactlink/internal/pkg/logger"
)

// ContextSession is the gin context key of the caller's Session
const ContextSession = "session"

// Session is the authenticated caller of one request
type Session struct {
	UserID uuid.UUID
	Email  string
}

// AdminChecker answers the admin role check
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	authz      AdminChecker
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, authz AdminChecker) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		authz:      authz,
	}
}

// tokenFromRequest reads the bearer token from the Authorization header and
// falls back to the access_token query parameter, which browsers need for
// websocket upgrades.
func tokenFromRequest(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		authHeader = c.Query("access_token")
	}
	if authHeader == "" {
		return "", auth.ErrInvalidFormat
	}
	return auth.ExtractBearerToken(strings.Trim(authHeader, "\"'"))
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, details string) {
	errorDetail := dto.NewErrorDetail(code, "Authentication required").WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := tokenFromRequest(c)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authorization header missing")
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token has expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		c.Set(ContextSession, &Session{UserID: claims.UserID, Email: claims.Email})
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and lets
// anonymous requests through otherwise. A bad token is treated as anonymous.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := tokenFromRequest(c)
		if err == nil {
			if claims, err := m.jwtService.ValidateAndExtractClaims(tokenString); err == nil {
				c.Set(ContextSession, &Session{UserID: claims.UserID, Email: claims.Email})
			}
		}
		c.Next()
	}
}

// AdminRequired must run after JWTAuth
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserIDFrom(c)
		if !ok {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "User information not found")
			return
		}

		isAdmin, err := m.authz.IsAdmin(c.Request.Context(), userID)
		if err != nil {
			logger.Error().Err(err).Str("userID", userID.String()).Msg("Admin check failed")
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
			return
		}
		if !isAdmin {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
				WithDetails("Admin role required")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}

// SessionFrom returns the session set by JWTAuth or OptionalAuth
func SessionFrom(c *gin.Context) (*Session, bool) {
	v, exists := c.Get(ContextSession)
	if !exists {
		return nil, false
	}
	session, ok := v.(*Session)
	if !ok || session.UserID == uuid.Nil {
		return nil, false
	}
	return session, true
}

// UserIDFrom returns the authenticated user, if any
func UserIDFrom(c *gin.Context) (uuid.UUID, bool) {
	session, ok := SessionFrom(c)
	if !ok {
		return uuid.Nil, false
	}
	return session.UserID, true
}

// ViewerID returns the authenticated user or uuid.Nil for anonymous callers
func ViewerID(c *gin.Context) uuid.UUID {
	id, _ := UserIDFrom(c)
	return id
}
