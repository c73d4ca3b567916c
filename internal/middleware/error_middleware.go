package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzkose/resourcehub/internal/app/models/dto"
	"github.com/oguzkose/resourcehub/internal/pkg/apperrors"
	"github.com/oguzkose/resourcehub/internal/pkg/logger"
)

// HandleAPIError maps an application error to its HTTP status and writes
// the error envelope
func HandleAPIError(c *gin.Context, err error) {
	status, code := classify(err)
	severity := dto.SeverityError
	if status < http.StatusInternalServerError && status != http.StatusConflict {
		severity = dto.SeverityWarning
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		message = "An unexpected error occurred"
	}

	c.JSON(status, dto.NewErrorResponse(code, message, severity))
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidEmail),
		errors.Is(err, apperrors.ErrInvalidPassword),
		errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS"
	case errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusConflict, "EMAIL_EXISTS"
	case errors.Is(err, apperrors.ErrStorageFull):
		return http.StatusInsufficientStorage, "STORAGE_FULL"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}
