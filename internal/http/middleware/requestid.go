package middleware

import (
	"github.com/gin-gonic/gin"

	"refbase.app/api-server/common/id"
	"refbase.app/api-server/common/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestID assigns a snowflake correlation id to each request unless the
// client already sent one, echoes it in the response header, and threads it
// through the logging context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = id.NewString()
		}

		c.Writer.Header().Set(requestIDHeader, requestID)

		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{RequestID: logger.Ptr(requestID)})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
