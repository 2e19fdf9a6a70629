package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrUnauthorized       = errors.New("authentication required")

	ErrPermissionDenied = errors.New("permission denied")

	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
	ErrConfirmRequired  = errors.New("confirmation required")

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Profile errors
var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("you already have a profile")
	ErrProfileRequired      = errors.New("complete your profile first")
	ErrProfileTypeImmutable = errors.New("profile type cannot be changed")
)

// Collaboration errors
var (
	ErrCollaborationNotFound = errors.New("collaboration not found")
	ErrSelfCollaboration     = errors.New("you cannot connect with yourself")
	ErrDuplicateRequest      = errors.New("You have already sent a connection request to this profile")
	ErrAlreadyResolved       = errors.New("collaboration request has already been resolved")
)

// Forum and research question errors
var (
	ErrTopicNotFound            = errors.New("forum topic not found")
	ErrPostNotFound             = errors.New("forum post not found")
	ErrReplyNotFound            = errors.New("forum reply not found")
	ErrResearchQuestionNotFound = errors.New("research question not found")
)

// Event errors
var (
	ErrEventNotFound        = errors.New("event not found")
	ErrRegistrationClosed   = errors.New("Registration Closed")
	ErrEventFull            = errors.New("Event is full")
	ErrAlreadyRegistered    = errors.New("already registered for this event")
	ErrNotRegistered        = errors.New("not registered for this event")
	ErrEventAlreadyStarted  = errors.New("event has already started")
	ErrInvalidEventSchedule = errors.New("event must end after it starts and registration must close before it starts")
)

// Resource and submission errors
var (
	ErrLearningResourceNotFound = errors.New("learning resource not found")
	ErrBookmarkNotFound         = errors.New("bookmark not found")
	ErrSubmissionNotFound       = errors.New("submission not found")
	ErrSubmissionReviewed       = errors.New("submission has already been reviewed")
	ErrFileRequired             = errors.New("a file is required")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is reports whether err matches target or any of errList.
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

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
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
