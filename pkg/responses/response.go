package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error body for every failure status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries field-level details for binding failures.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// BadRequest sends a 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request payload or parameters"
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// ValidationError sends a 400 with per-field binding errors.
func ValidationError(c *gin.Context, message string, fields map[string]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorResponse{
		Error:  message,
		Fields: fields,
	})
}

// NotFound sends a 404 for a missing resource.
func NotFound(c *gin.Context, resource string) {
	c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// Conflict sends a 409 with the given message.
func Conflict(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusConflict, ErrorResponse{Error: message})
}

// InternalError sends a 500. The underlying error is not exposed to
// clients; callers are expected to log it.
func InternalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}
