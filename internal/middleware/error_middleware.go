package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/logger"
)

type errorMapping struct {
	target error
	status int
	code   dto.ErrorCode
	// message overrides the error text when set
	message string
}

// errorMappings is checked in order, so specific errors come before the
// generic ones they may wrap.
var errorMappings = []errorMapping{
	// auth
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"},
	{apperrors.ErrTokenRevoked, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Token revoked"},
	{apperrors.ErrTokenNotFound, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required"},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, ""},

	// profiles and collaboration
	{apperrors.ErrProfileAlreadyExists, http.StatusConflict, dto.ErrorCodeProfileExists, ""},
	{apperrors.ErrProfileRequired, http.StatusBadRequest, dto.ErrorCodeProfileRequired, ""},
	{apperrors.ErrProfileTypeImmutable, http.StatusBadRequest, dto.ErrorCodeValidationFailed, ""},
	{apperrors.ErrSelfCollaboration, http.StatusBadRequest, dto.ErrorCodeBadRequest, ""},
	{apperrors.ErrDuplicateRequest, http.StatusConflict, dto.ErrorCodeDuplicateRequest, ""},
	{apperrors.ErrAlreadyResolved, http.StatusConflict, dto.ErrorCodeAlreadyResolved, ""},

	// events
	{apperrors.ErrRegistrationClosed, http.StatusBadRequest, dto.ErrorCodeRegistrationClosed, ""},
	{apperrors.ErrEventFull, http.StatusBadRequest, dto.ErrorCodeEventFull, ""},
	{apperrors.ErrAlreadyRegistered, http.StatusConflict, dto.ErrorCodeConflict, ""},
	{apperrors.ErrEventAlreadyStarted, http.StatusBadRequest, dto.ErrorCodeBadRequest, ""},

	// submissions and admin
	{apperrors.ErrSubmissionReviewed, http.StatusConflict, dto.ErrorCodeConflict, ""},
	{apperrors.ErrFileRequired, http.StatusBadRequest, dto.ErrorCodeValidationFailed, ""},
	{apperrors.ErrConfirmRequired, http.StatusBadRequest, dto.ErrorCodeConfirmationRequired, "Confirmation required: repeat the request with confirm=true"},

	// not found
	{apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, ""},
	{apperrors.ErrProfileNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, ""},
	{apperrors.ErrCollaborationNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, ""},
	{apperrors.ErrTopicNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, ""},
	{apperrors.ErrPostNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, ""},
	{apperrors.ErrReplyNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, ""},
	{apperrors.ErrResearchQuestionNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, ""},
	{apperrors.ErrEventNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, ""},
	{apperrors.ErrNotRegistered, http.StatusNotFound, dto.ErrorCodeResourceNotFound, ""},
	{apperrors.ErrLearningResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, ""},
	{apperrors.ErrBookmarkNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, ""},
	{apperrors.ErrSubmissionNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, ""},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, ""},

	// generic
	{apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists"},
	{apperrors.ErrResourceAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, ""},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeConflict, ""},
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, ""},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeBadRequest, ""},
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("Unhandled error")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// errorDetailFor maps err onto a status and error body. CustomError details
// are passed through to the client.
func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		message := m.message
		if message == "" {
			message = err.Error()
		}
		detail := dto.NewErrorDetail(m.code, message)

		var custom *apperrors.CustomError
		if errors.As(err, &custom) && len(custom.Details) > 0 {
			detail = detail.WithDetails(custom.Details)
		}
		return m.status, detail
	}
	return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
}
