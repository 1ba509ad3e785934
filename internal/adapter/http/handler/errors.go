package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/toxicity-api/internal/usecase"
)

// Client-facing error messages
const (
	MessageNoTextProvided     = "No text provided"
	MessageInvalidRequestBody = "Invalid request body"
	MessageClassifierFailure  = "Classification failed"
	MessageClassifierTimeout  = "Classification timed out"
	MessageInternalError      = "Internal server error"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP error responses.
func MapUsecaseError(err error) ErrorResponse {
	switch {
	case errors.Is(err, usecase.ErrNoTextProvided):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Message:    MessageNoTextProvided,
		}
	case errors.Is(err, usecase.ErrClassifierTimeout):
		return ErrorResponse{
			StatusCode: http.StatusGatewayTimeout,
			Message:    MessageClassifierTimeout,
		}
	case errors.Is(err, usecase.ErrClassifierFailure):
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Message:    MessageClassifierFailure,
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Message:    MessageInternalError,
		}
	}
}

// HandleUsecaseError handles a usecase error by sending an appropriate HTTP response.
func HandleUsecaseError(c *gin.Context, err error) {
	errResp := MapUsecaseError(err)
	_ = c.Error(err)
	respondError(c, errResp.StatusCode, errResp.Message)
}

// HandleInvalidBody handles a request body that is not a JSON object of the expected shape.
func HandleInvalidBody(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	respondError(c, http.StatusBadRequest, MessageInvalidRequestBody)
}
