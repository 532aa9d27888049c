package middleware

import (
	"time" // Request latency

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Request ID generation
	"github.com/sirupsen/logrus" // Logging library
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key of the request ID
const RequestIDKey = "requestID"

// MaxRequestIDLength caps client supplied request IDs
const MaxRequestIDLength = 128

// RequestID reuses the incoming X-Request-ID or generates one, stores it in the
// context and echoes it in the response
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader) // Get client supplied ID
		if !validRequestID(id) {
			id = uuid.NewString() // Missing or unusable, generate one
		}
		c.Set(RequestIDKey, id)       // Store ID in context
		c.Header(RequestIDHeader, id) // Echo ID to the client
		c.Next()                      // Proceed to the next handler
	}
}

// validRequestID accepts non-empty printable ASCII up to MaxRequestIDLength
func validRequestID(id string) bool {
	if id == "" || len(id) > MaxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false // Outside printable ASCII
		}
	}
	return true
}

// AccessLog logs every request with logrus once it has been handled
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now() // Start time
		c.Next()            // Handle request
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),        // Request ID
			"method":     c.Request.Method,                 // HTTP method
			"path":       c.FullPath(),                     // Route pattern
			"status":     c.Writer.Status(),                // Response status
			"latency_ms": time.Since(start).Milliseconds(), // Latency
		}).Info("Request handled")
	}
}
