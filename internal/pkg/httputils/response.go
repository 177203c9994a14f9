// Package httputils provides HTTP utility functions.
package httputils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Afzalshaikh78/ImageGenerator/pkg/errors"
)

// ErrorResponse is the uniform failure envelope. Every failure, from the
// origin gate to business logic, is shaped like this; token and user
// fields are never present alongside success=false.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WriteResponse writes the response to the client.
// On error it surfaces the errno's HTTP status with the uniform failure
// envelope; otherwise it writes data with status 200.
func WriteResponse(c *gin.Context, err error, data interface{}) {
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// WriteError writes the uniform failure envelope for the given error.
// Non-errno errors are coerced to ErrInternal so internal details never
// reach the client.
func WriteError(c *gin.Context, err error) {
	errno := errors.FromError(err)
	c.JSON(errno.HTTP, ErrorResponse{Success: false, Message: errno.Message})
}

// AbortWithError writes the failure envelope and aborts the handler chain.
// Used by middleware so route handlers never run after a rejection.
func AbortWithError(c *gin.Context, err error) {
	errno := errors.FromError(err)
	c.AbortWithStatusJSON(errno.HTTP, ErrorResponse{Success: false, Message: errno.Message})
}
