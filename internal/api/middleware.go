package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Constants for request correlation
const (
	RequestIDHeader     = "X-Request-ID"
	ContextRequestIDKey = "requestID"
)

// RequestID tags every request with an identifier for log correlation.
// An identifier supplied by the caller is kept; otherwise a fresh UUID is
// assigned. The identifier is echoed back in the response headers.
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

// Helper to return the standard JSON error envelope and abort the request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{
		"error":   message,
		"success": false,
	})
}

// Helper function to get the request identifier from context (used by
// handlers when logging server-side failures)
func requestIDFromContext(c *gin.Context) string {
	idRaw, exists := c.Get(ContextRequestIDKey)
	if !exists {
		return ""
	}
	id, ok := idRaw.(string)
	if !ok {
		return ""
	}
	return id
}
