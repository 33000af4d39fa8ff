package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the header the request ID is read from and
	// echoed back on.
	RequestIDHeader = "X-Request-ID"

	// ContextRequestIDKey is the gin context key holding the request ID.
	ContextRequestIDKey = "request_id"
)

// RequestID assigns every request an ID, reusing the caller's when one
// is supplied. The ID is echoed in the response headers so client-side
// reports can be correlated with server logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
