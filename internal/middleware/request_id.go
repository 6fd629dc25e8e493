package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key (and log field) holding the request id.
const RequestIDKey = "request_id"

const headerRequestID = "X-Request-ID"

// RequestID reuses a client-supplied X-Request-ID when it parses as a UUID
// and otherwise generates a new one. The id is echoed back in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}
