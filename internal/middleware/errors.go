package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cryptopulse/internal/domain/dto"
	"github.com/guttosm/cryptopulse/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors collected on the
// context into a standardized JSON error response.
//
// Behavior:
//   - Runs the rest of the chain first (c.Next()).
//   - If no errors were recorded, does nothing.
//   - If the handler already wrote a response, does nothing (the handler
//     owns the status and body in that case).
//   - Otherwise responds 500 with dto.ErrorResponse built from the last error.
//
// Handlers that know the proper status code should use AbortWithError
// instead of c.Error; this middleware is the catch-all for the rest.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}
	if c.Writer.Written() {
		return
	}

	last := c.Errors.Last()
	logger.L().Error().Err(last.Err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", last.Err))
}

// AbortWithError aborts the request with the given status and a
// standardized dto.ErrorResponse body.
//
// Parameters:
//   - c:       current Gin context.
//   - status:  HTTP status code to respond with.
//   - message: human-readable error message for the response body.
//   - err:     underlying error; included as detail when non-nil.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
