package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/wallace-museum/nft-importer/internal/api/shared/errors"
	"github.com/wallace-museum/nft-importer/internal/logger"
)

// errorResponse wraps an APIError in the response body
type errorResponse struct {
	Error *apierrors.APIError `json:"error"`
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: apierrors.NewBadRequestError(message, details...)})
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: apierrors.NewValidationError(message)})
}

// respondError maps an executor error onto its HTTP status
func respondError(c *gin.Context, err error, fields ...zap.Field) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		apiErr = apierrors.NewInternalError("Internal server error")
	}

	status := http.StatusInternalServerError
	switch apiErr.Code {
	case apierrors.ErrCodeBadRequest, apierrors.ErrCodeValidationFailed:
		status = http.StatusBadRequest
	case apierrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case apierrors.ErrCodeConflict:
		status = http.StatusConflict
	case apierrors.ErrCodeServiceError:
		status = http.StatusBadGateway
	}

	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err, fields...)
	}
	c.JSON(status, errorResponse{Error: apiErr})
}
