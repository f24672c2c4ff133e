package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse standard API response structure
type APIResponse struct {
	Data  interface{} `json:"data"`
	Meta  *Meta       `json:"meta,omitempty"`
	Error *ErrorInfo  `json:"error,omitempty"`
}

// Meta pagination and additional metadata
type Meta struct {
	Page  int   `json:"page,omitempty"`
	Limit int   `json:"limit,omitempty"`
	Total int64 `json:"total,omitempty"`
}

// ErrorInfo error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse returns a successful JSON response
func SuccessResponse(c *gin.Context, data interface{}, meta *Meta) {
	c.JSON(http.StatusOK, APIResponse{
		Data: data,
		Meta: meta,
	})
}

// CreatedResponse returns a 201 JSON response
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Data: data})
}

// ErrorResponse returns an error JSON response
func ErrorResponse(c *gin.Context, status int, message string, err error) {
	errInfo := &ErrorInfo{
		Code:    getErrorCode(status),
		Message: message,
	}

	c.JSON(status, gin.H{
		"error": errInfo,
	})
}

// HandleServiceError maps sentinel service errors to HTTP responses.
// Unknown errors are reported as a store failure rather than an empty result.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidToken), errors.Is(err, ErrExpiredToken):
		ErrorResponse(c, http.StatusUnauthorized, "authentication required", err)
	case errors.Is(err, ErrForbidden):
		ErrorResponse(c, http.StatusForbidden, "permission denied", err)
	case errors.Is(err, ErrPostNotFound), errors.Is(err, ErrNotFound), errors.Is(err, ErrProfileNotFound):
		ErrorResponse(c, http.StatusNotFound, "resource not found", err)
	case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrInvalidInput):
		ErrorResponse(c, http.StatusBadRequest, err.Error(), err)
	default:
		ErrorResponse(c, http.StatusInternalServerError, "store unavailable", err)
	}
}

// getErrorCode generates error code from HTTP status
func getErrorCode(status int) string {
	switch status {
	case 400:
		return "BAD_REQUEST"
	case 401:
		return "UNAUTHORIZED"
	case 403:
		return "FORBIDDEN"
	case 404:
		return "NOT_FOUND"
	case 409:
		return "CONFLICT"
	case 500:
		return "INTERNAL_SERVER_ERROR"
	default:
		return "ERROR"
	}
}
