// File: /utils/response.go
package utils

import (
	"errors"
	"net/http"

	"automanager-api/models"
	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
	Code    int    `json:"code,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SendError(c *gin.Context, status int, err string) {
	c.JSON(status, ErrorResponse{
		Error: err,
		Code:  status,
	})
}

func SendValidationError(c *gin.Context, err string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "Validation failed",
		Message: err,
		Code:    http.StatusBadRequest,
	})
}

// SendDomainError maps typed domain errors to HTTP responses. Every error
// carries a human-readable message and, where applicable, the offending field.
func SendDomainError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var duplicateErr *models.DuplicateKeyError
	var notFoundErr *models.NotFoundError
	var transitionErr *models.InvalidTransitionError
	var amountErr *models.InvalidAmountError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Message: validationErr.Message,
			Field:   validationErr.Field,
			Code:    http.StatusBadRequest,
		})
	case errors.As(err, &amountErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid amount",
			Message: amountErr.Message,
			Field:   amountErr.Field,
			Code:    http.StatusBadRequest,
		})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid status transition",
			Message: transitionErr.Message,
			Code:    http.StatusBadRequest,
		})
	case errors.As(err, &duplicateErr):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "Duplicate record",
			Message: duplicateErr.Message,
			Field:   duplicateErr.Field,
			Code:    http.StatusConflict,
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: notFoundErr.Error(),
			Code:  http.StatusNotFound,
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal server error",
			Message: "An unexpected error occurred",
			Code:    http.StatusInternalServerError,
		})
	}
}

func SendSuccess(c *gin.Context, message string, data interface{}) {
	response := SuccessResponse{
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(http.StatusOK, response)
}

func SendCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{
		Message: message,
		Data:    data,
	})
}
