package handlers

import (
	"net/http"

	apperrors "property-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorBody carries the error taxonomy exposed to API callers
type ErrorBody struct {
	Kind    apperrors.Kind `json:"kind"`
	Message string         `json:"message"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// SuccessResponse wraps a successful payload
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

var kindStatus = map[apperrors.Kind]int{
	apperrors.KindNotFound:   http.StatusNotFound,
	apperrors.KindValidation: http.StatusBadRequest,
	apperrors.KindPermission: http.StatusForbidden,
	apperrors.KindConflict:   http.StatusConflict,
	apperrors.KindStorage:    http.StatusInternalServerError,
}

// respondError maps a service error onto the HTTP taxonomy. Storage failures
// are reported without the underlying error text.
func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	message := err.Error()
	if kind == apperrors.KindStorage {
		message = "internal error"
	}
	c.JSON(status, ErrorResponse{
		Success: false,
		Error:   ErrorBody{Kind: kind, Message: message},
	})
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: data})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   ErrorBody{Kind: apperrors.KindValidation, Message: message},
	})
}
