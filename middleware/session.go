package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware assigns a session id when the client did not send one,
// and echoes it back so the frontend can keep agent conversations sticky.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set("sessionID", sessionID)
		c.Writer.Header().Set("X-Session-ID", sessionID)

		c.Next()
	}
}
