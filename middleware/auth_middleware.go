package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taskboard-simple/services"
)

// AuthMiddleware creates a middleware that authenticates requests.
// The session token is taken from the Authorization header (Bearer scheme)
// or, failing that, from the access_token cookie set at login. Valid claims
// are stored in the context for handlers and the admin middleware.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		} else if cookie, err := c.Cookie("access_token"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Login required",
			})
			c.Abort()
			return
		}

		claims, err := services.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired session",
			})
			c.Abort()
			return
		}

		// Session state for downstream handlers
		c.Set("userId", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// SessionUserID returns the authenticated user's ID from the context.
// The second return value is false when AuthMiddleware did not run.
func SessionUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("userId")
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}
