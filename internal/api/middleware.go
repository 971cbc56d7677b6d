package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mindease/mindease/internal"
)

// RequestIDMiddleware tags every request with a correlation ID: the caller's
// X-Request-ID when present, a minted one otherwise. Minted IDs are logged at
// debug level so a journal write can be traced without the client's help.
func RequestIDMiddleware(logger internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
			logger.Debugf("%s %s assigned request_id %s", c.Request.Method, c.Request.URL.Path, reqID)
		}
		c.Set("request_id", reqID)
		c.Writer.Header().Set("X-Request-ID", reqID)
		c.Next()
	}
}
