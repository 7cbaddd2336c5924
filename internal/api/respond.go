package api

import (
	"bungeoppang/internal/apperror" // Error taxonomy
	"errors"                        // Error inspection
	"io"                            // EOF detection
	"net/http"                      // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// bindJSON decodes the request body into dest, answering 400 on failure
func bindJSON(c *gin.Context, dest any) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		if errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no data provided"}) // Empty body
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"}) // Malformed JSON or wrong types
		return false
	}
	return true
}

// respondError writes err with the status of its kind and logs server-side failures
func respondError(c *gin.Context, err error, fields logrus.Fields, action string) {
	kind := apperror.KindOf(err) // Untyped errors count as internal
	message := "internal server error"
	if typed := apperror.As(err); typed != nil {
		message = typed.Message
		// Internal failures carry the underlying cause
		if kind == apperror.KindInternal && typed.Err != nil {
			message += ": " + typed.Err.Error()
		}
	}
	entry := logrus.WithFields(fields).WithField("error", err.Error())
	switch kind {
	case apperror.KindInternal, apperror.KindCapacity:
		entry.Error(action + " failed") // Server-side failure
	default:
		entry.Info(action + " rejected") // Client-side failure
	}
	c.JSON(kind.HTTPStatus(), gin.H{"error": message})
}
