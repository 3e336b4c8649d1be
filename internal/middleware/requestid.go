package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

// requestIDHeader is the wire name of the request identifier, both for
// reading a client-supplied ID and for echoing the final one back.
const requestIDHeader = "X-Request-ID"

// RequestID is a Gin middleware that tags each incoming HTTP request
// with a unique identifier.
//
// Behavior:
//   - Reuses the client-supplied X-Request-ID header when present, so an
//     upstream gateway or a retrying client keeps one ID across hops.
//   - Generates a new UUID (v4) otherwise.
//   - Stores it in the Gin context under the key "request_id".
//   - Adds it to the response headers as "X-Request-ID".
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID())
//
// Example log usage:
//
//	rid, _ := c.Get(middleware.RequestIDKey)
//	log.Printf("request_id=%s some log message", rid)
//
// Returns:
//   - gin.HandlerFunc: the middleware function.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		// Store in context for downstream usage
		c.Set(RequestIDKey, id)

		// Expose in response headers for clients
		c.Writer.Header().Set(requestIDHeader, id)

		// Continue with the next handlers
		c.Next()
	}
}
