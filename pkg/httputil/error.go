package httputil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bahtledger/backend/pkg/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Error is the body of all error responses.
type Error struct {
	Message string `json:"error" example:"there is no account matching your query"`
}

// New returns the error response body for an error.
func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

// Status returns the HTTP status code for an error.
func Status(err error) int {
	switch {
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrConstraint):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessage returns the message to send to the client for err.
//
// Errors the client cannot fix are logged with the request ID and
// replaced by a generic message referencing that ID.
func ErrorMessage(c *gin.Context, err error) string {
	if Status(err) != http.StatusInternalServerError {
		return err.Error()
	}

	requestID := requestid.Get(c)
	log.Error().Str("request-id", requestID).Msgf("%T: %v", err, err.Error())

	return fmt.Errorf("%w. The request id is '%v', send this to your server administrator to help them finding the problem", models.ErrGeneral, requestID).Error()
}

// ErrorHandler aborts the request with the error response for err.
func ErrorHandler(c *gin.Context, err error) {
	c.AbortWithStatusJSON(Status(err), Error{Message: ErrorMessage(c, err)})
}
