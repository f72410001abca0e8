package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Context key for caller identity.
const UserIDKey = "user_id"

// UserIDHeader carries the caller identity. Authentication proper happens
// upstream of this service; a request with no header is attributed to a
// local stand-in user.
const (
	UserIDHeader  = "X-User-ID"
	DefaultUserID = "local-user"
)

// Identity resolves the caller identity for the request and stores it in the
// gin context. It never rejects a request.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			userID = DefaultUserID
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// GetUserID retrieves the caller identity from gin context.
func GetUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return "", false
	}
	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
