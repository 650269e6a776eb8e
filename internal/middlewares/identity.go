package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aliskhannn/task-notifier/internal/api/respond"
)

// UserIDHeader carries the authenticated user id set by the gateway.
const UserIDHeader = "X-User-ID"

const userIDKey = "user_id"

// Identity requires a caller id. Browsers cannot set headers on WebSocket
// handshakes, so the user_id query parameter is accepted as well.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			userID = c.Query(userIDKey)
		}

		if userID == "" {
			respond.Fail(c.Writer, http.StatusUnauthorized, errors.New("missing user id"))
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the caller id stored by Identity.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
