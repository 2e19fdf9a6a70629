// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/middleware"
	"github.com/impactlink/impactlink/internal/pkg/helpers"
)

// currentUserID returns the authenticated caller or writes a 401 and reports false
func currentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.UserIDFrom(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses a UUID path parameter or writes a 400 and reports false
func pathID(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := helpers.ParseUUIDParam(ctx, name)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Invalid ID format").
			WithField(name).
			WithDetails(err.Error())
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return uuid.Nil, false
	}
	return id, true
}

func badRequest(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}
