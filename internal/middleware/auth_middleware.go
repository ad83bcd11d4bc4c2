package middleware

import (
	"net/http"

	"inkwell-api/internal/jwt"

	"github.com/gin-gonic/gin"
)

// Context key for the authenticated account id
const userIDKey = "userID"

// Messages returned on authentication failure. Invalid and expired tokens
// share one message so the caller cannot tell them apart.
const (
	msgNotLoggedIn  = "Not authorized. Please log in."
	msgInvalidToken = "Session expired or invalid token."
)

// SessionAuth creates a middleware that authenticates requests from the
// session cookie. On success the account id is attached to the request
// context; everything else is rejected with 401.
func SessionAuth(tokens *jwt.Service, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": msgNotLoggedIn,
			})
			c.Abort()
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": msgInvalidToken,
			})
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated account id set by SessionAuth
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
